package cpu

import "fmt"

// Cond is the condition a conditional jump, call or return tests.
type Cond uint8

const (
	CondNZ Cond = iota
	CondZ
	CondNC
	CondC
	// CondAlways is used by the unconditional forms.
	CondAlways
)

func (cc Cond) String() string {
	return [...]string{"NZ", "Z", "NC", "C", ""}[cc]
}

// cond returns true if the condition holds for the current flags.
func (c *CPU) cond(cc Cond) bool {
	switch cc {
	case CondNZ:
		return !c.ZF()
	case CondZ:
		return c.ZF()
	case CondNC:
		return !c.CF()
	case CondC:
		return c.CF()
	case CondAlways:
		return true
	}
	panic(fmt.Sprintf("cpu: invalid condition: %d", cc))
}

// jr adds the signed immediate to PC, if the condition holds. The
// offset is always consumed; applying it costs one more cycle.
//
//	JR cc, e
//	JR e
func (c *CPU) jr(bus Bus, cc Cond) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read8(bus, Imm8{})
		if s == Pending {
			return Pending
		}
		if !c.cond(cc) {
			return Ready
		}
		c.ctx.val8 = v
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.idle() == Pending {
			return Pending
		}
		c.PC += uint16(int8(c.ctx.val8))
	}
	return Ready
}

// jp jumps to the immediate address, if the condition holds.
//
//	JP cc, nn
//	JP nn
func (c *CPU) jp(bus Bus, cc Cond) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read16(bus, Imm16{})
		if s == Pending {
			return Pending
		}
		if !c.cond(cc) {
			return Ready
		}
		c.ctx.val16 = v
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.idle() == Pending {
			return Pending
		}
		c.PC = c.ctx.val16
	}
	return Ready
}

// jpHL jumps to the address in HL.
//
//	JP HL
func (c *CPU) jpHL(Bus) Status {
	c.PC = c.HL()
	return Ready
}

// call pushes the address of the next instruction and jumps to the
// immediate address, if the condition holds.
//
//	CALL cc, nn
//	CALL nn
func (c *CPU) call(bus Bus, cc Cond) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.read16(bus, Imm16{})
		if s == Pending {
			return Pending
		}
		if !c.cond(cc) {
			return Ready
		}
		c.ctx.val16 = v
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.push16(bus, c.PC) == Pending {
			return Pending
		}
		c.PC = c.ctx.val16
	}
	return Ready
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret(bus Bus) Status {
	switch c.ctx.stage {
	case 0:
		v, s := c.pop16(bus)
		if s == Pending {
			return Pending
		}
		c.ctx.val16 = v
		c.ctx.stage = 1
		fallthrough
	case 1:
		if c.idle() == Pending {
			return Pending
		}
		c.PC = c.ctx.val16
	}
	return Ready
}

// retCond returns if the condition holds. Evaluating the condition
// costs a cycle of its own.
//
//	RET cc
func (c *CPU) retCond(bus Bus, cc Cond) Status {
	switch c.ctx.stage {
	case 0:
		if c.idle() == Pending {
			return Pending
		}
		if !c.cond(cc) {
			return Ready
		}
		c.ctx.stage = 1
		fallthrough
	case 1:
		v, s := c.pop16(bus)
		if s == Pending {
			return Pending
		}
		c.ctx.val16 = v
		c.ctx.stage = 2
		fallthrough
	case 2:
		if c.idle() == Pending {
			return Pending
		}
		c.PC = c.ctx.val16
	}
	return Ready
}

// rst pushes the address of the next instruction and jumps to one
// of the fixed vectors in the first page.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) rst(bus Bus, vector uint16) Status {
	if c.push16(bus, c.PC) == Pending {
		return Pending
	}
	c.PC = vector
	return Ready
}
