package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrement(t *testing.T) {
	c := NewCPU()
	for v := 0; v < 256; v++ {
		for _, carry := range []bool{false, true} {
			c.SetCF(carry)
			result := c.increment(uint8(v))

			assert.Equal(t, uint8(v+1), result)
			assert.Equal(t, result == 0, c.ZF())
			assert.False(t, c.NF())
			assert.Equal(t, v&0xF == 0xF, c.HF(), "%02X", v)
			assert.Equal(t, carry, c.CF())

			assert.Equal(t, uint8(v), c.decrement(result))
			assert.True(t, c.NF())
			assert.Equal(t, carry, c.CF())
		}
	}
}

func TestDecrement(t *testing.T) {
	c := NewCPU()
	for v := 0; v < 256; v++ {
		result := c.decrement(uint8(v))

		assert.Equal(t, uint8(v-1), result)
		assert.Equal(t, result == 0, c.ZF())
		assert.True(t, c.NF())
		assert.Equal(t, v&0xF == 0, c.HF(), "%02X", v)
	}
}

func TestCompare(t *testing.T) {
	c := NewCPU()
	for a := 0; a < 256; a++ {
		for n := 0; n < 256; n++ {
			c.A = uint8(a)
			c.compare(uint8(n))

			if c.A != uint8(a) {
				t.Fatalf("CP %02X modified A: %02X", n, c.A)
			}
			if c.ZF() != (a == n) || !c.NF() || c.CF() != (n > a) || c.HF() != (n&0xF > a&0xF) {
				t.Fatalf("CP %02X with A=%02X: unexpected flags %08b", n, a, c.F)
			}
		}
	}
}

func TestALU(t *testing.T) {
	tests := []struct {
		name  string
		op    aluOp
		a, n  uint8
		carry bool
		want  uint8
		flags uint8
	}{
		{"ADD zero", aluAdd, 0x3A, 0xC6, false, 0x00, 0xB0},
		{"ADD half", aluAdd, 0x3C, 0x12, false, 0x4E, 0x00},
		{"ADD half carry", aluAdd, 0x0F, 0x01, false, 0x10, 0x20},
		{"ADC", aluAdc, 0xE1, 0x0F, true, 0xF1, 0x20},
		{"ADC carry", aluAdc, 0xE1, 0x3B, true, 0x1D, 0x10},
		{"ADC ignores carry flag when clear", aluAdc, 0x01, 0x01, false, 0x02, 0x00},
		{"SUB zero", aluSub, 0x3E, 0x3E, false, 0x00, 0xC0},
		{"SUB half borrow", aluSub, 0x3E, 0x0F, false, 0x2F, 0x60},
		{"SUB borrow", aluSub, 0x3E, 0x40, false, 0xFE, 0x50},
		{"SBC", aluSbc, 0x3B, 0x2A, true, 0x10, 0x40},
		{"SBC borrow", aluSbc, 0x3B, 0x4F, true, 0xEB, 0x70},
		{"AND", aluAnd, 0x5A, 0x3F, false, 0x1A, 0x20},
		{"AND zero", aluAnd, 0x5A, 0x00, true, 0x00, 0xA0},
		{"XOR", aluXor, 0xFF, 0x0F, true, 0xF0, 0x00},
		{"XOR self", aluXor, 0xFF, 0xFF, false, 0x00, 0x80},
		{"OR", aluOr, 0x5A, 0x03, true, 0x5B, 0x00},
		{"CP", aluCp, 0x3C, 0x40, false, 0x3C, 0x50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCPU()
			c.A = tt.a
			c.SetCF(tt.carry)

			assert.Equal(t, Ready, c.alu(nil, tt.op, RegB.withValue(c, tt.n)))
			assert.Equal(t, tt.want, c.A)
			assert.Equal(t, tt.flags, c.F, "flags %08b", c.F)
		})
	}
}

// withValue loads v into r, returning r.
func (r Reg8) withValue(c *CPU, v uint8) Reg8 {
	*r.ptr(c) = v
	return r
}

func TestInstruction_IncHL(t *testing.T) {
	// 0x34 - INC (HL)
	m := newTestMachine(t, 0x34)
	m.mmu.Write(0xC800, 0x0F)
	m.cpu.SetHL(0xC800)
	m.cpu.SetCF(true)
	m.tick(1)

	assert.Equal(t, 3, m.step())
	assert.Equal(t, uint8(0x10), m.mmu.Read(0xC800))
	assert.True(t, m.cpu.HF())
	assert.True(t, m.cpu.CF())

	writes := m.rec.Writes()
	if assert.Len(t, writes, 1) {
		assert.Equal(t, uint64(2), writes[0].Cycle)
	}
}

func TestInstruction_Inc16(t *testing.T) {
	// 0x03 - INC BC, 0x3B - DEC SP
	m := newTestMachine(t, 0x03, 0x3B)
	m.cpu.SetBC(0xFFFF)
	m.cpu.F = 0xF0
	m.tick(1)

	assert.Equal(t, 2, m.step())
	assert.Equal(t, 2, m.step())
	assert.Equal(t, uint16(0x0000), m.cpu.BC())
	assert.Equal(t, uint16(0xFFFD), m.cpu.SP)
	assert.Equal(t, uint8(0xF0), m.cpu.F, "16-bit increments leave the flags alone")
}
