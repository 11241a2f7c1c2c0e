package cpu

import "github.com/thelolagemann/sm83/internal/types"

// bit tests bit b of src.
//
//	BIT b, src
//	b = 0-7
//	src = B, C, D, E, H, L, (HL), A
func (c *CPU) bit(bus Bus, b uint8, src Operand8) Status {
	v, s := c.read8(bus, src)
	if s == Pending {
		return Pending
	}
	c.testBit(v, b)
	return Ready
}

// testBit tests the bit at the given position in the given value.
//
// Flags affected:
//
//	Z - Set if bit b of value is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, b uint8) {
	c.setFlags(value&types.Bits[b] == 0, false, true, c.CF())
}
