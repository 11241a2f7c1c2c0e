package cpu

// ld loads src into dst.
//
//	LD dst, src
//	dst, src = B, C, D, E, H, L, A, (BC), (DE), (HL), (HL+), (HL-),
//	           (C), (a8), (a16), d8
//
// Flags affected: none.
func (c *CPU) ld(bus Bus, dst, src Operand8) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read8(bus, src)
		if s == Pending {
			return Pending
		}
		c.ctx.val8 = v
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.write8(bus, dst, c.ctx.val8) == Pending {
			return Pending
		}
	}
	return Ready
}

// ld16 loads the 16-bit src into dst.
//
//	LD dst, src
//	dst = BC, DE, HL, SP, (a16)
//	src = d16, SP
//
// Flags affected: none.
func (c *CPU) ld16(bus Bus, dst, src Operand16) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read16(bus, src)
		if s == Pending {
			return Pending
		}
		c.ctx.val16 = v
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.write16(bus, dst, c.ctx.val16) == Pending {
			return Pending
		}
	}
	return Ready
}

// ldSPHL copies HL into SP, spending an extra cycle on the transfer.
//
//	LD SP, HL
func (c *CPU) ldSPHL(bus Bus) Status {
	if c.ctx.stage == 0 {
		c.write16(bus, RegSP, c.HL())
		c.ctx.stage = 1
	}
	return c.idle()
}
