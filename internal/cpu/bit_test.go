package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestBit(t *testing.T) {
	c := NewCPU()
	for v := 0; v < 256; v++ {
		for b := uint8(0); b < 8; b++ {
			for _, carry := range []bool{false, true} {
				c.SetCF(carry)
				c.testBit(uint8(v), b)

				assert.Equal(t, v>>b&1 == 0, c.ZF())
				assert.False(t, c.NF())
				assert.True(t, c.HF())
				assert.Equal(t, carry, c.CF())
			}
		}
	}
}

func TestInstruction_Bit(t *testing.T) {
	// CB 0x7E - BIT 7, (HL)
	m := newTestMachine(t, 0xCB, 0x7E)
	m.mmu.Write(0xC800, 0x7F)
	m.cpu.SetHL(0xC800)
	m.tick(1)

	assert.Equal(t, 3, m.step())
	assert.True(t, m.cpu.ZF())
	assert.Equal(t, uint8(0x7F), m.mmu.Read(0xC800))
	assert.Empty(t, m.rec.Writes())
}
