package yan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDisassemble(f *testing.F) {
	for s := range DefaultRegistry.Schemas() {
		f.Add(byte(0), s.Opcode, byte(0), false)
		f.Add(byte(0xff), s.Opcode, byte(0x1), true)
	}

	f.Fuzz(func(t *testing.T, arg2 byte, opcode byte, arg1 byte, variant bool) {
		assert := assert.New(t)

		cfg := VariantA
		if variant {
			cfg = VariantB
		}

		code := []byte{arg2, opcode, arg1}

		inst, err := DefaultRegistry.Disassemble(cfg, code)
		if err != nil {
			assert.True(errors.Is(err, ErrUnknownOpcode) || errors.Is(err, ErrInvalidCode), err)
			return
		}

		encoded := inst.Encode()
		assert.Equal(code, encoded[:])

		asm, err := DefaultRegistry.Assemble(cfg, inst.String())
		assert.NoError(err)
		assert.Equal(inst, asm)
	})
}
