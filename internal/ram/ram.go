// Package ram provides a basic RAM implementation.
package ram

// RAM represents a block of RAM. Addresses are masked to the size
// of the block, so a RAM may be mapped at any offset, and regions
// that mirror it need no extra handling.
type RAM struct {
	data []uint8
	mask uint16
}

// NewRAM returns a new RAM of the given size, rounded up to
// the next power of two for address masking.
func NewRAM(size uint32) *RAM {
	n := uint32(1)
	for n < size {
		n <<= 1
	}
	return &RAM{
		data: make([]uint8, n),
		mask: uint16(n - 1),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address&r.mask]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address&r.mask] = value
}

// Size returns the number of addressable bytes.
func (r *RAM) Size() int {
	return len(r.data)
}
