// Package mmu provides the memory bus the CPU core is attached to. The
// MMU decodes the 16-bit address space into the boot ROM overlay, work
// RAM, the hardware register page and high RAM; everything else is
// open bus.
package mmu

import (
	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the
// devices mapped into it, and that it presents to the CPU.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit. It handles all memory reads
// and writes to the 64kB address space.
type MMU struct {
	// 64kB address space
	raw [0x10000]*types.Address

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM     *boot.ROM
	bootROMDone bool

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *ram.RAM

	// 0xFF00 - 0xFF7F - I/O Registers
	registers types.HardwareRegisters

	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM *ram.RAM

	Log log.Logger
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithBootROM maps the given boot ROM over 0x0000 - 0x00FF until
// it is disabled through types.BDIS.
func WithBootROM(rom *boot.ROM) Opt {
	return func(m *MMU) {
		m.bootROM = rom
	}
}

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// NewMMU returns a new MMU.
func NewMMU(opts ...Opt) *MMU {
	m := &MMU{
		wRAM: ram.NewRAM(types.WRAMSize),
		hRAM: ram.NewRAM(types.HRAMSize),
		Log:  log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.init()

	return m
}

func (m *MMU) init() {
	// setup registers
	m.registers.RegisterHardware(
		types.BDIS,
		func(v uint8) {
			// writing zero leaves the boot ROM mapped
			if v != 0 && !m.bootROMDone {
				m.bootROMDone = true
				m.Log.Debugf("boot ROM disabled (%s)", m.bootROM.Model())
			}
		}, nil)

	// setup raw memory
	addresses := []types.Address{
		{Read: m.readBoot, Write: noWrite},
		{Read: m.wRAM.Read, Write: m.wRAM.Write},
		{Read: m.registers.Read, Write: m.registers.Write},
		{Read: m.hRAM.Read, Write: m.hRAM.Write},
		{Read: openBus, Write: noWrite},
	}

	for i := range m.raw {
		m.raw[i] = &addresses[4]
	}

	// 0x0000 - 0x00FF - boot ROM (256B)
	for i := int(types.BootROMStart); i <= int(types.BootROMEnd); i++ {
		m.raw[i] = &addresses[0]
	}

	// 0xC000 - 0xFDFF - work RAM & echo (15.5kB)
	for i := int(types.WRAMStart); i <= int(types.WRAMEnd); i++ {
		m.raw[i] = &addresses[1]
	}

	// 0xFF00 - 0xFF7F - I/O (128B)
	for i := int(types.IOStart); i <= int(types.IOEnd); i++ {
		m.raw[i] = &addresses[2]
	}

	// 0xFF80 - 0xFFFE - high RAM (127B)
	for i := int(types.HRAMStart); i <= int(types.HRAMEnd); i++ {
		m.raw[i] = &addresses[3]
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

// BootROMActive returns true while the boot ROM is mapped.
func (m *MMU) BootROMActive() bool {
	return m.bootROM != nil && !m.bootROMDone
}

// Load copies data into memory starting at address, going through
// the same decoding as CPU writes.
func (m *MMU) Load(address uint16, data []byte) {
	for i, b := range data {
		m.Write(address+uint16(i), b)
	}
}

func (m *MMU) readBoot(address uint16) uint8 {
	if m.BootROMActive() {
		return m.bootROM.Read(address)
	}
	return types.OpenBus
}

func openBus(uint16) uint8 {
	return types.OpenBus
}

func noWrite(uint16, uint8) {}
