package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHardwareRegisters(t *testing.T) {
	var h HardwareRegisters
	var written uint8
	h.RegisterHardware(0xFF42, func(v uint8) { written = v }, func() uint8 { return 0x24 })
	h.RegisterHardware(BDIS, func(v uint8) { written = v }, nil)
	h.RegisterHardware(0xFF44, nil, func() uint8 { return 0x90 })

	h.Write(0xFF42, 0x11)
	assert.Equal(t, uint8(0x11), written)
	assert.Equal(t, uint8(0x24), h.Read(0xFF42))

	// write-only
	h.Write(BDIS, 0x01)
	assert.Equal(t, uint8(0x01), written)
	assert.Equal(t, OpenBus, h.Read(BDIS))

	// read-only
	h.Write(0xFF44, 0x22)
	assert.Equal(t, uint8(0x01), written)
	assert.Equal(t, uint8(0x90), h.Read(0xFF44))

	// unregistered
	h.Write(0xFF00, 0x33)
	assert.Equal(t, OpenBus, h.Read(0xFF00))

	assert.Equal(t, HardwareAddress(0xFF42), h[0x42].Address())
}

func TestHardwareRegisters_Invalid(t *testing.T) {
	var h HardwareRegisters
	assert.Panics(t, func() { h.RegisterHardware(0xFF80, nil, nil) })

	h.RegisterHardware(BDIS, nil, nil)
	assert.Panics(t, func() { h.RegisterHardware(BDIS, nil, nil) })
}

func TestStringToModel(t *testing.T) {
	assert.Equal(t, DMGABC, StringToModel("dmg"))
	assert.Equal(t, CGBABC, StringToModel("CGB"))
	assert.Equal(t, Unset, StringToModel("gba"))
	assert.Equal(t, "SGB2", SGB2.String())

	for m := range ModelNames {
		_, ok := ModelRegisters[m]
		assert.True(t, ok, "no registers for %s", m)
	}
}
