package cpu

// push pushes a register pair onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) push(bus Bus, src Operand16) Status {
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
		if c.push16(bus, c.ctx.val16) == Pending {
			return Pending
		}
	}
	return Ready
}

// pop pops a word off the stack into a register pair. Popping into
// AF discards the lower nibble of F.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) pop(bus Bus, dst Operand16) Status {
	v, s := c.pop16(bus)
	if s == Pending {
		return Pending
	}
	c.write16(bus, dst, v)
	return Ready
}

// push16 pushes value onto the stack over three cycles: one internal
// cycle, then the high byte and the low byte, each written after
// decrementing SP.
func (c *CPU) push16(bus Bus, value uint16) Status {
	p := &c.ctx.operand
	if p.step == 0 {
		if c.idle() == Pending {
			return Pending
		}
		p.step = 1
	}
	if p.step == 1 {
		if c.busy() {
			return Pending
		}
		c.SP--
		c.write(bus, c.SP, uint8(value>>8))
		p.step = 2
	}
	if c.busy() {
		return Pending
	}
	c.SP--
	c.write(bus, c.SP, uint8(value))
	p.reset()
	return Ready
}

// pop16 pops a word off the stack over two cycles, low byte first.
func (c *CPU) pop16(bus Bus) (uint16, Status) {
	p := &c.ctx.operand
	if p.step == 0 {
		if c.busy() {
			return 0, Pending
		}
		p.lo = c.read(bus, c.SP)
		c.SP++
		p.step = 1
	}
	if c.busy() {
		return 0, Pending
	}
	hi := c.read(bus, c.SP)
	c.SP++
	v := uint16(hi)<<8 | uint16(p.lo)
	p.reset()
	return v, Ready
}
