package cpu

// decode dispatches the latched opcode to its handler. An opcode
// without a handler faults the CPU.
func (c *CPU) decode() error {
	table := &InstructionSet
	if c.ctx.cb {
		table = &InstructionSetCB
	}

	instruction := &table[c.ctx.opcode]
	if instruction.fn == nil {
		c.fault = &UnimplementedOpcodeError{
			Opcode: c.ctx.opcode,
			CB:     c.ctx.cb,
			PC:     c.ctx.pc,
		}
		c.Log.Errorf("%v (%s)", c.fault, c.Registers)
		return c.fault
	}

	if c.Debug {
		c.Log.Debugf("%04X: %s", c.ctx.pc, instruction.name)
	}

	c.ctx.instruction = instruction
	c.ctx.stage = 0
	c.ctx.val8, c.ctx.val16 = 0, 0
	c.ctx.operand.reset()
	c.ctx.state = stateExecute
	return nil
}

// prefixCB reads the opcode following 0xCB, and continues straight
// into its handler within the same tick.
func (c *CPU) prefixCB(bus Bus) Status {
	opcode, s := c.read8(bus, Imm8{})
	if s == Pending {
		return Pending
	}
	c.ctx.opcode = opcode
	c.ctx.cb = true
	if c.decode() != nil {
		return Pending
	}
	return c.ctx.instruction.fn(c, bus)
}
