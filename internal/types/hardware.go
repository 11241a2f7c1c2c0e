package types

import "fmt"

// HardwareRegisters is a table of hardware registers, indexed by the
// address of the hardware register ANDed with 0x007F. Unlike a global
// registry, each bus owns its own table so that several emulated
// machines can exist side by side.
type HardwareRegisters [0x80]*HardwareRegister

// RegisterHardware adds a hardware register with the given address and
// read/write functions to the table. Either function may be nil, in
// which case the register is write-only or read-only, respectively.
func (h *HardwareRegisters) RegisterHardware(address HardwareAddress, write func(v uint8), read func() uint8) {
	if address < IOStart || address > IOEnd {
		panic(fmt.Sprintf("hardware: address 0x%04X is outside of the I/O page", address))
	}
	if h[address&0x007F] != nil {
		panic(fmt.Sprintf("hardware: address 0x%04X has already been registered", address))
	}
	h[address&0x007F] = &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
}

// Read returns the value of the hardware register for the given
// address. If the hardware register does not exist, or is not
// readable, it returns OpenBus.
func (h *HardwareRegisters) Read(address uint16) uint8 {
	if r := h[address&0x007F]; r != nil {
		return r.Read()
	}
	return OpenBus
}

// Write writes the given value to the hardware register for the
// given address. If the hardware register does not exist, or is
// not writable, it does nothing.
func (h *HardwareRegisters) Write(address uint16, value uint8) {
	if r := h[address&0x007F]; r != nil {
		r.Write(value)
	}
}

// HardwareRegister represents a single memory-mapped hardware register.
type HardwareRegister struct {
	address HardwareAddress
	write   func(v uint8)
	read    func() uint8
}

// Address returns the address the register is mapped to.
func (h *HardwareRegister) Address() HardwareAddress {
	return h.address
}

// Read returns the value of the register, or OpenBus if the
// register is write-only.
func (h *HardwareRegister) Read() uint8 {
	if h.read == nil {
		return OpenBus
	}
	return h.read()
}

// Write writes value to the register. Writes to read-only
// registers are dropped.
func (h *HardwareRegister) Write(value uint8) {
	if h.write != nil {
		h.write(value)
	}
}
