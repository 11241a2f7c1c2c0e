package types

// Address represents a memory address in the address space, which
// can be read from or written to. Devices register an Address for
// each location they decode.
type Address struct {
	// Read is called when the CPU reads from the address.
	Read func(address uint16) uint8
	// Write is called when the CPU writes to the address.
	Write func(address uint16, value uint8)
}

// HardwareAddress represents the address of a hardware register
// mapped into the I/O page (0xFF00 - 0xFF7F).
type HardwareAddress = uint16

const (
	// BDIS is the address of the BDIS hardware register. The BDIS
	// hardware register is used only to disable the boot ROM. It is
	// write-only, and reads back as 0xFF.
	//
	// The register is set as follows:
	//  Bit 0-7 - Disable boot ROM (0=Keep, non-zero=Disable)
	BDIS HardwareAddress = 0xFF50
)

// The memory map, as seen by the CPU. Ranges are inclusive.
const (
	// BootROMStart and BootROMEnd bound the boot ROM overlay, which
	// is only visible until BDIS is written.
	BootROMStart uint16 = 0x0000
	BootROMEnd   uint16 = 0x00FF

	// WRAMStart and WRAMEnd bound work RAM, including the echo
	// region at 0xE000 - 0xFDFF which mirrors 0xC000 - 0xDDFF.
	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xFDFF
	// WRAMSize is the size of the physical work RAM.
	WRAMSize = 0x2000

	// IOStart and IOEnd bound the hardware register page.
	IOStart uint16 = 0xFF00
	IOEnd   uint16 = 0xFF7F

	// HRAMStart and HRAMEnd bound high RAM.
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
	// HRAMSize is the size of high RAM.
	HRAMSize = 0x7F
)

// OpenBus is the value returned when reading from an address
// that no device responds to.
const OpenBus uint8 = 0xFF
