package mmu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

func newBootROM(t *testing.T, fill byte) *boot.ROM {
	t.Helper()
	rom, err := boot.Load(bytes.Repeat([]byte{fill}, boot.Size))
	require.NoError(t, err)
	return rom
}

func TestMMU_WRAM(t *testing.T) {
	m := NewMMU()
	m.Write(0xC000, 42)
	assert.Equal(t, uint8(42), m.Read(0xC000))

	m.Write(0xDFFF, 0x11)
	assert.Equal(t, uint8(0x11), m.Read(0xDFFF))

	t.Run("echo", func(t *testing.T) {
		m.Write(0xC100, 0x5A)
		assert.Equal(t, uint8(0x5A), m.Read(0xE100))
		m.Write(0xFDFF, 0xA5)
		assert.Equal(t, uint8(0xA5), m.Read(0xDDFF))
	})
}

func TestMMU_HRAM(t *testing.T) {
	m := NewMMU()
	m.Write(0xFF80, 84)
	assert.Equal(t, uint8(84), m.Read(0xFF80))
	m.Write(0xFFFE, 0x12)
	assert.Equal(t, uint8(0x12), m.Read(0xFFFE))
	// HRAM does not extend into IE
	m.Write(0xFFFF, 0x34)
	assert.Equal(t, types.OpenBus, m.Read(0xFFFF))
}

func TestMMU_Unmapped(t *testing.T) {
	m := NewMMU()
	for _, addr := range []uint16{0x0100, 0x4000, 0x8000, 0xA000, 0xFE00, 0xFF00, 0xFF44, 0xFF50, 0xFFFF} {
		m.Write(addr, 0x00)
		assert.Equal(t, types.OpenBus, m.Read(addr), "address %04X", addr)
	}
}

func TestMMU_BootROM(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		m := NewMMU()
		assert.False(t, m.BootROMActive())
		assert.Equal(t, types.OpenBus, m.Read(0x0000))
	})
	t.Run("active", func(t *testing.T) {
		m := NewMMU(WithBootROM(newBootROM(t, 0x31)))
		assert.True(t, m.BootROMActive())
		assert.Equal(t, uint8(0x31), m.Read(0x0000))
		assert.Equal(t, uint8(0x31), m.Read(0x00FF))
		assert.Equal(t, types.OpenBus, m.Read(0x0100))

		// read-only
		m.Write(0x0010, 0x00)
		assert.Equal(t, uint8(0x31), m.Read(0x0010))
	})
	t.Run("zero write keeps it mapped", func(t *testing.T) {
		m := NewMMU(WithBootROM(newBootROM(t, 0x31)))
		m.Write(types.BDIS, 0)
		assert.True(t, m.BootROMActive())
	})
	t.Run("disable", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewMMU(WithBootROM(newBootROM(t, 0x31)), WithLogger(log.NewWithWriter(&buf)))
		m.Write(types.BDIS, 1)
		assert.False(t, m.BootROMActive())
		assert.Equal(t, types.OpenBus, m.Read(0x0000))
		assert.Contains(t, buf.String(), "boot ROM disabled")

		// the latch cannot be re-armed
		m.Write(types.BDIS, 0)
		assert.False(t, m.BootROMActive())
	})
	t.Run("register is write-only", func(t *testing.T) {
		m := NewMMU(WithBootROM(newBootROM(t, 0x31)))
		assert.Equal(t, types.OpenBus, m.Read(types.BDIS))
	})
}

func TestMMU_Load(t *testing.T) {
	m := NewMMU()
	m.Load(0xC000, []byte{0x01, 0x34, 0x12})
	assert.Equal(t, uint8(0x01), m.Read(0xC000))
	assert.Equal(t, uint8(0x34), m.Read(0xC001))
	assert.Equal(t, uint8(0x12), m.Read(0xC002))
}

func TestMMU_Independent(t *testing.T) {
	a, b := NewMMU(WithBootROM(newBootROM(t, 1))), NewMMU(WithBootROM(newBootROM(t, 2)))
	a.Write(types.BDIS, 1)
	assert.False(t, a.BootROMActive())
	assert.True(t, b.BootROMActive())
}
