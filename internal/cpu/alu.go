package cpu

type aluOp uint8

const (
	aluAdd aluOp = iota
	aluAdc
	aluSub
	aluSbc
	aluAnd
	aluXor
	aluOr
	aluCp
)

func (o aluOp) String() string {
	return [...]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}[o]
}

// alu applies an 8-bit arithmetic or logic operation to A and src.
func (c *CPU) alu(bus Bus, op aluOp, src Operand8) Status {
	n, s := c.read8(bus, src)
	if s == Pending {
		return Pending
	}

	switch op {
	case aluAdd:
		c.add(n, false)
	case aluAdc:
		c.add(n, true)
	case aluSub:
		c.sub(n, false)
	case aluSbc:
		c.sub(n, true)
	case aluAnd:
		c.and(n)
	case aluXor:
		c.xor(n)
	case aluOr:
		c.or(n)
	case aluCp:
		c.compare(n)
	}
	return Ready
}

// cp compares src to A, without storing the result.
//
//	CP src
func (c *CPU) cp(bus Bus, src Operand8) Status {
	return c.alu(bus, aluCp, src)
}

// inc increments dst by 1.
//
//	INC dst
//	dst = B, C, D, E, H, L, (HL), A
func (c *CPU) inc(bus Bus, dst Operand8) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read8(bus, dst)
		if s == Pending {
			return Pending
		}
		c.ctx.val8 = c.increment(v)
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.write8(bus, dst, c.ctx.val8) == Pending {
			return Pending
		}
	}
	return Ready
}

// dec decrements dst by 1.
//
//	DEC dst
//	dst = B, C, D, E, H, L, (HL), A
func (c *CPU) dec(bus Bus, dst Operand8) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read8(bus, dst)
		if s == Pending {
			return Pending
		}
		c.ctx.val8 = c.decrement(v)
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.write8(bus, dst, c.ctx.val8) == Pending {
			return Pending
		}
	}
	return Ready
}

// inc16 increments a register pair by 1. The 16-bit incrementer
// occupies an extra cycle.
//
//	INC nn
//	nn = BC, DE, HL, SP
//
// Flags affected: none.
func (c *CPU) inc16(bus Bus, dst Operand16) Status {
	return c.step16(bus, dst, 1)
}

// dec16 decrements a register pair by 1.
//
//	DEC nn
//	nn = BC, DE, HL, SP
//
// Flags affected: none.
func (c *CPU) dec16(bus Bus, dst Operand16) Status {
	return c.step16(bus, dst, 0xFFFF)
}

func (c *CPU) step16(bus Bus, dst Operand16, delta uint16) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read16(bus, dst)
		if s == Pending {
			return Pending
		}
		c.ctx.val16 = v + delta
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.write16(bus, dst, c.ctx.val16) == Pending {
			return Pending
		}
		c.ctx.stage = 2
		fallthrough
	case 2:
		if c.idle() == Pending {
			return Pending
		}
	}
	return Ready
}

// add adds n (and the carry flag, if carry is true) to A.
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, carry bool) {
	var cy uint8
	if carry && c.CF() {
		cy = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(cy)
	c.setFlags(uint8(sum) == 0, false, c.A&0xF+n&0xF+cy > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (and the carry flag, if carry is true) from A.
//
//	SUB n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, carry bool) {
	var cy int
	if carry && c.CF() {
		cy = 1
	}
	diff := int(c.A) - int(n) - cy
	c.setFlags(uint8(diff) == 0, true, int(c.A&0xF)-int(n&0xF)-cy < 0, diff < 0)
	c.A = uint8(diff)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register. A is not modified.
//
//	CP n
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0x0F > c.A&0x0F, n > c.A)
}

// increment n by 1 and set the flags accordingly.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.CF())
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0xF == 0, c.CF())
	return decremented
}
