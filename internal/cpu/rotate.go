package cpu

import "github.com/thelolagemann/sm83/internal/types"

// rl rotates dst left through the carry flag.
//
//	RL dst
//	dst = B, C, D, E, H, L, (HL), A
func (c *CPU) rl(bus Bus, dst Operand8) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read8(bus, dst)
		if s == Pending {
			return Pending
		}
		c.ctx.val8 = c.rotateLeftThroughCarry(v)
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.write8(bus, dst, c.ctx.val8) == Pending {
			return Pending
		}
	}
	return Ready
}

// rla rotates A left through the carry flag. Unlike RL A, the zero
// flag is always reset.
//
//	RLA
func (c *CPU) rla(Bus) Status {
	c.A = c.rotateLeftThroughCarry(c.A)
	c.SetZF(false)
	return Ready
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is
// copied to the least significant bit, and the most significant bit
// is copied to the carry flag.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n << 1
	if c.CF() {
		computed |= types.Bit0
	}
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}
