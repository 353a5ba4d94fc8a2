package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/yancode/yan"
)

const customToml = `
name = "custom"

[register]
a = 0x80
b = 0x40
i = 0x01
NONE = 0x00

[syscall]
exit = 0x01
write = 0x02

[condition]
"*" = 0x00
E = 0x01
`

const customYaml = `
register:
  a: 0x80
  b: 0x40
  i: 0x01
  NONE: 0x00
syscall:
  exit: 0x01
  write: 0x02
condition:
  "*": 0x00
  E: 0x01
`

func TestFormatOf(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		path   string
		format Format
	}){
		{"x.toml", FORMAT_TOML},
		{"dir/X.TOML", FORMAT_TOML},
		{"x.yaml", FORMAT_YAML},
		{"x.yml", FORMAT_YAML},
	}

	for _, entry := range table {
		format, err := FormatOf(entry.path)
		assert.NoError(err, entry.path)
		assert.Equal(entry.format, format, entry.path)
	}

	_, err := FormatOf("x.json")
	assert.ErrorIs(err, ErrFormatUnknown)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	for format, text := range map[Format]string{FORMAT_TOML: customToml, FORMAT_YAML: customYaml} {
		cfg, err := Decode(strings.NewReader(text), format)
		require.NoError(t, err, format)

		code, ok := cfg.Code(yan.KIND_REGISTER, "a")
		assert.True(ok, format)
		assert.Equal(byte(0x80), code, format)

		name, ok := cfg.Symbol(yan.KIND_SYSCALL, 0x2)
		assert.True(ok, format)
		assert.Equal("write", name, format)

		inst, err := yan.DefaultRegistry.Assemble(cfg, "IMM a = 0x5")
		assert.NoError(err, format)
		assert.Equal([yan.INSTRUCTION_SIZE]byte{0x05, 0x04, 0x80}, inst.Encode(), format)
	}

	_, err := Decode(strings.NewReader(customToml), Format("ini"))
	assert.ErrorIs(err, ErrFormatUnknown)
}

func TestDecodeInvalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		format Format
		text   string
	}){
		{"missing NONE", FORMAT_TOML, strings.ReplaceAll(customToml, "NONE = 0x00", "")},
		{"shared code", FORMAT_TOML, strings.ReplaceAll(customToml, "b = 0x40", "b = 0x80")},
		{"missing wildcard", FORMAT_YAML, strings.ReplaceAll(customYaml, `"*": 0x00`, "")},
	}

	for _, entry := range table {
		_, err := Decode(strings.NewReader(entry.text), entry.format)
		assert.ErrorIs(err, yan.ErrConfigInvalid, entry.name)
	}

	_, err := Decode(strings.NewReader("[register]\na = 0x100\n"), FORMAT_TOML)
	assert.Error(err)

	_, err = Decode(strings.NewReader("register: [1, 2]\n"), FORMAT_YAML)
	assert.Error(err)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	for _, format := range []Format{FORMAT_TOML, FORMAT_YAML} {
		for _, cfg := range yan.Variants() {
			var buff bytes.Buffer
			err := Encode(&buff, format, cfg)
			require.NoError(t, err)

			back, err := Decode(&buff, format)
			require.NoError(t, err)

			assert.Equal(FileOf(cfg), FileOf(back), "%v %v", format, cfg.Name)
		}
	}

	err := Encode(&bytes.Buffer{}, Format("ini"), yan.VariantA)
	assert.ErrorIs(err, ErrFormatUnknown)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	path := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customYaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal("mine", cfg.Name)

	path = filepath.Join(dir, "named.toml")
	require.NoError(t, os.WriteFile(path, []byte(customToml), 0o644))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal("custom", cfg.Name)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "mine.txt"))
	assert.ErrorIs(err, ErrFormatUnknown)
}

func TestSelect(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Select("b", "")
	assert.NoError(err)
	assert.Same(yan.VariantB, cfg)

	_, err = Select("z", "")
	assert.ErrorIs(err, yan.ErrVariantUnknown)

	path := filepath.Join(t.TempDir(), "x.toml")
	require.NoError(t, os.WriteFile(path, []byte(customToml), 0o644))

	cfg, err = Select("b", path)
	assert.NoError(err)
	assert.Equal("custom", cfg.Name)
}
