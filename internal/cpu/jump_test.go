package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_JR(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		zero    bool
		cycles  int
		next    uint16
	}{
		{"NZ taken backwards", []uint8{0x20, 0xFE}, false, 3, testOrigin},
		{"NZ not taken", []uint8{0x20, 0xFE}, true, 2, testOrigin + 2},
		{"Z taken forwards", []uint8{0x28, 0x10}, true, 3, testOrigin + 0x12},
		{"always", []uint8{0x18, 0x80}, true, 3, testOrigin + 2 - 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.program...)
			m.cpu.SetZF(tt.zero)
			m.tick(1)

			assert.Equal(t, tt.cycles, m.step())
			assert.Equal(t, tt.next, m.cpu.ctx.pc)
		})
	}
}

func TestInstruction_JP(t *testing.T) {
	t.Run("a16", func(t *testing.T) {
		m := newTestMachine(t, 0xC3, 0x34, 0xC2)
		m.tick(1)

		assert.Equal(t, 4, m.step())
		assert.Equal(t, uint16(0xC234), m.cpu.ctx.pc)
	})
	t.Run("C not taken", func(t *testing.T) {
		m := newTestMachine(t, 0xDA, 0x34, 0xC2)
		m.tick(1)

		assert.Equal(t, 3, m.step())
		assert.Equal(t, uint16(testOrigin+3), m.cpu.ctx.pc)
	})
	t.Run("HL", func(t *testing.T) {
		m := newTestMachine(t, 0xE9)
		m.cpu.SetHL(0xC800)
		m.tick(1)

		assert.Equal(t, 1, m.step())
		assert.Equal(t, uint16(0xC800), m.cpu.ctx.pc)
	})
}

func TestInstruction_RetCond(t *testing.T) {
	// 0xD8 - RET C
	for _, carry := range []bool{false, true} {
		m := newTestMachine(t, 0xD8)
		m.cpu.SP = 0xFFF0
		m.mmu.Write(0xFFF0, 0x00)
		m.mmu.Write(0xFFF1, 0xC8)
		m.cpu.SetCF(carry)
		m.tick(1)

		if carry {
			assert.Equal(t, 5, m.step())
			assert.Equal(t, uint16(0xC800), m.cpu.ctx.pc)
			assert.Equal(t, uint16(0xFFF2), m.cpu.SP)
		} else {
			assert.Equal(t, 2, m.step())
			assert.Equal(t, uint16(testOrigin+1), m.cpu.ctx.pc)
			assert.Equal(t, uint16(0xFFF0), m.cpu.SP)
		}
	}
}

func TestCond(t *testing.T) {
	c := NewCPU()
	for _, flags := range []uint8{0x00, 0x80, 0x10, 0x90} {
		c.F = flags
		assert.Equal(t, !c.ZF(), c.cond(CondNZ))
		assert.Equal(t, c.ZF(), c.cond(CondZ))
		assert.Equal(t, !c.CF(), c.cond(CondNC))
		assert.Equal(t, c.CF(), c.cond(CondC))
		assert.True(t, c.cond(CondAlways))
	}
}
