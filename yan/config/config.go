// Package config loads and saves Yancode bitmask configurations.
//
// A configuration file names the configuration, and maps the symbols of
// each symbolic argument kind to their codes:
//
//	name = "custom"
//
//	[register]
//	a = 0x02
//	NONE = 0x00
//	...
//
// TOML (.toml) and YAML (.yaml, .yml) files are supported.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/yancode/translate"
	"github.com/ezrec/yancode/yan"
)

var f = translate.From

var (
	ErrFormatUnknown = errors.New(f("config format unknown"))
)

// Format is a configuration file format.
type Format string

const (
	FORMAT_TOML = Format("toml")
	FORMAT_YAML = Format("yaml")
)

// FormatOf returns the format of a file, by extension.
func FormatOf(path string) (format Format, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FORMAT_TOML
	case ".yaml", ".yml":
		format = FORMAT_YAML
	default:
		err = fmt.Errorf("%w: %v", ErrFormatUnknown, path)
	}
	return
}

// File is the on-disk shape of a configuration.
type File struct {
	Name      string          `toml:"name" yaml:"name"`
	Register  map[string]byte `toml:"register" yaml:"register"`
	Syscall   map[string]byte `toml:"syscall" yaml:"syscall"`
	Condition map[string]byte `toml:"condition" yaml:"condition"`
}

// FileOf returns the on-disk shape of a configuration.
func FileOf(cfg *yan.Config) (file *File) {
	file = &File{
		Name:      cfg.Name,
		Register:  maps.Collect(cfg.Symbols(yan.KIND_REGISTER)),
		Syscall:   maps.Collect(cfg.Symbols(yan.KIND_SYSCALL)),
		Condition: maps.Collect(cfg.Symbols(yan.KIND_CONDITION)),
	}
	return
}

// Config builds the configuration the file describes.
func (file *File) Config() (cfg *yan.Config, err error) {
	cfg, err = yan.NewConfig(file.Name, file.Register, file.Syscall, file.Condition)
	return
}

// Decode reads a configuration in the given format.
func Decode(input io.Reader, format Format) (cfg *yan.Config, err error) {
	file := &File{}

	switch format {
	case FORMAT_TOML:
		_, err = toml.NewDecoder(input).Decode(file)
	case FORMAT_YAML:
		err = yaml.NewDecoder(input).Decode(file)
	default:
		err = fmt.Errorf("%w: %v", ErrFormatUnknown, format)
	}
	if err != nil {
		return
	}

	cfg, err = file.Config()
	return
}

// Encode writes a configuration in the given format.
func Encode(output io.Writer, format Format, cfg *yan.Config) (err error) {
	file := FileOf(cfg)

	switch format {
	case FORMAT_TOML:
		err = toml.NewEncoder(output).Encode(file)
	case FORMAT_YAML:
		enc := yaml.NewEncoder(output)
		err = enc.Encode(file)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("%w: %v", ErrFormatUnknown, format)
	}

	return
}

// Load reads a configuration file. A file without a name is named after
// the file.
func Load(path string) (cfg *yan.Config, err error) {
	format, err := FormatOf(path)
	if err != nil {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg, err = Decode(bytes.NewReader(data), format)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	if len(cfg.Name) == 0 {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return
}

// Select returns the configuration of a file if path is set, otherwise
// the built-in variant of that name.
func Select(variant string, path string) (cfg *yan.Config, err error) {
	if len(path) != 0 {
		return Load(path)
	}

	return yan.LookupVariant(variant)
}
