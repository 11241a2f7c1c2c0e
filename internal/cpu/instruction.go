package cpu

import "fmt"

// Instruction is an entry in an instruction table: a mnemonic and
// the handler stepping it. The handler is called once per tick, and
// returns Ready on the tick the instruction completes.
type Instruction struct {
	name string
	fn   func(c *CPU, bus Bus) Status
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Defined returns true if the instruction has a handler.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

var (
	// InstructionSet is the table of unprefixed opcodes.
	InstructionSet [256]Instruction
	// InstructionSetCB is the table of opcodes following 0xCB.
	InstructionSetCB [256]Instruction
)

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU, Bus) Status) {
	if InstructionSet[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: opcode %02X already defined as %s", opcode, InstructionSet[opcode].name))
	}
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB,
// with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU, Bus) Status) {
	if InstructionSetCB[opcode].fn != nil {
		panic(fmt.Sprintf("cpu: opcode CB %02X already defined as %s", opcode, InstructionSetCB[opcode].name))
	}
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// operands in opcode order, as encoded in the low 3 bits (or bits
// 3-5) of most instructions
var (
	reg8  = [8]Operand8{RegB, RegC, RegD, RegE, RegH, RegL, IndHL, RegA}
	pairs = [4]Reg16{RegBC, RegDE, RegHL, RegSP}
	stack = [4]Reg16{RegBC, RegDE, RegHL, RegAF}
	conds = [4]Cond{CondNZ, CondZ, CondNC, CondC}
)

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, bus Bus) Status { return Ready })

	// 0x01 - 0x3B 16-bit loads, increments and decrements
	for i, rr := range pairs {
		rr, op := rr, uint8(i)<<4
		DefineInstruction(0x01|op, fmt.Sprintf("LD %s, d16", rr), func(c *CPU, bus Bus) Status {
			return c.ld16(bus, rr, Imm16{})
		})
		DefineInstruction(0x03|op, fmt.Sprintf("INC %s", rr), func(c *CPU, bus Bus) Status {
			return c.inc16(bus, rr)
		})
		DefineInstruction(0x0B|op, fmt.Sprintf("DEC %s", rr), func(c *CPU, bus Bus) Status {
			return c.dec16(bus, rr)
		})
	}

	// 0x02 - 0x3A indirect loads to and from A
	for i, ind := range [4]Indirect{IndBC, IndDE, IndHLI, IndHLD} {
		ind, op := ind, uint8(i)<<4
		DefineInstruction(0x02|op, fmt.Sprintf("LD %s, A", ind), func(c *CPU, bus Bus) Status {
			return c.ld(bus, ind, RegA)
		})
		DefineInstruction(0x0A|op, fmt.Sprintf("LD A, %s", ind), func(c *CPU, bus Bus) Status {
			return c.ld(bus, RegA, ind)
		})
	}

	// 0x04 - 0x3E 8-bit increments, decrements and immediate loads
	for i, r := range reg8 {
		r, op := r, uint8(i)<<3
		DefineInstruction(0x04|op, fmt.Sprintf("INC %s", r), func(c *CPU, bus Bus) Status {
			return c.inc(bus, r)
		})
		DefineInstruction(0x05|op, fmt.Sprintf("DEC %s", r), func(c *CPU, bus Bus) Status {
			return c.dec(bus, r)
		})
		DefineInstruction(0x06|op, fmt.Sprintf("LD %s, d8", r), func(c *CPU, bus Bus) Status {
			return c.ld(bus, r, Imm8{})
		})
	}

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, bus Bus) Status {
		return c.ld16(bus, Direct16{}, RegSP)
	})
	DefineInstruction(0x17, "RLA", func(c *CPU, bus Bus) Status {
		return c.rla(bus)
	})

	// 0x18 - 0x38 relative jumps
	DefineInstruction(0x18, "JR e", func(c *CPU, bus Bus) Status {
		return c.jr(bus, CondAlways)
	})
	for i, cc := range conds {
		cc, op := cc, uint8(i)<<3
		DefineInstruction(0x20|op, fmt.Sprintf("JR %s, e", cc), func(c *CPU, bus Bus) Status {
			return c.jr(bus, cc)
		})
	}

	// 0x40 - 0x7F register to register loads
	for d, dst := range reg8 {
		for s, src := range reg8 {
			if dst == IndHL && src == IndHL {
				continue // 0x76 - HALT
			}
			dst, src := dst, src
			DefineInstruction(0x40|uint8(d)<<3|uint8(s), fmt.Sprintf("LD %s, %s", dst, src), func(c *CPU, bus Bus) Status {
				return c.ld(bus, dst, src)
			})
		}
	}

	// 0x80 - 0xBF & 0xC6 - 0xFE 8-bit arithmetic and logic
	for o := aluAdd; o <= aluCp; o++ {
		o := o
		for s, src := range reg8 {
			src := src
			DefineInstruction(0x80|uint8(o)<<3|uint8(s), fmt.Sprintf("%s %s", o, src), func(c *CPU, bus Bus) Status {
				if o == aluCp {
					return c.cp(bus, src)
				}
				return c.alu(bus, o, src)
			})
		}
		DefineInstruction(0xC6|uint8(o)<<3, fmt.Sprintf("%s d8", o), func(c *CPU, bus Bus) Status {
			return c.alu(bus, o, Imm8{})
		})
	}

	// 0xC0 - 0xFF control flow and stack
	for i, cc := range conds {
		cc, op := cc, uint8(i)<<3
		DefineInstruction(0xC0|op, fmt.Sprintf("RET %s", cc), func(c *CPU, bus Bus) Status {
			return c.retCond(bus, cc)
		})
		DefineInstruction(0xC2|op, fmt.Sprintf("JP %s, a16", cc), func(c *CPU, bus Bus) Status {
			return c.jp(bus, cc)
		})
		DefineInstruction(0xC4|op, fmt.Sprintf("CALL %s, a16", cc), func(c *CPU, bus Bus) Status {
			return c.call(bus, cc)
		})
	}
	for i, rr := range stack {
		rr, op := rr, uint8(i)<<4
		DefineInstruction(0xC1|op, fmt.Sprintf("POP %s", rr), func(c *CPU, bus Bus) Status {
			return c.pop(bus, rr)
		})
		DefineInstruction(0xC5|op, fmt.Sprintf("PUSH %s", rr), func(c *CPU, bus Bus) Status {
			return c.push(bus, rr)
		})
	}
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) << 3
		DefineInstruction(0xC7|uint8(vector), fmt.Sprintf("RST %02XH", vector), func(c *CPU, bus Bus) Status {
			return c.rst(bus, vector)
		})
	}
	DefineInstruction(0xC3, "JP a16", func(c *CPU, bus Bus) Status {
		return c.jp(bus, CondAlways)
	})
	DefineInstruction(0xC9, "RET", func(c *CPU, bus Bus) Status {
		return c.ret(bus)
	})
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU, bus Bus) Status {
		return c.prefixCB(bus)
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, bus Bus) Status {
		return c.call(bus, CondAlways)
	})
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, bus Bus) Status {
		return c.ld(bus, DirFFN, RegA)
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, bus Bus) Status {
		return c.ld(bus, IndCFF, RegA)
	})
	DefineInstruction(0xE9, "JP HL", func(c *CPU, bus Bus) Status {
		return c.jpHL(bus)
	})
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, bus Bus) Status {
		return c.ld(bus, DirNN, RegA)
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, bus Bus) Status {
		return c.ld(bus, RegA, DirFFN)
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, bus Bus) Status {
		return c.ld(bus, RegA, IndCFF)
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, bus Bus) Status {
		return c.ldSPHL(bus)
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, bus Bus) Status {
		return c.ld(bus, RegA, DirNN)
	})

	// CB 0x10 - 0x17 rotate left through carry
	for i, r := range reg8 {
		r := r
		DefineInstructionCB(0x10|uint8(i), fmt.Sprintf("RL %s", r), func(c *CPU, bus Bus) Status {
			return c.rl(bus, r)
		})
	}
	// CB 0x40 - 0x7F bit tests
	for b := uint8(0); b < 8; b++ {
		for i, r := range reg8 {
			b, r := b, r
			DefineInstructionCB(0x40|b<<3|uint8(i), fmt.Sprintf("BIT %d, %s", b, r), func(c *CPU, bus Bus) Status {
				return c.bit(bus, b, r)
			})
		}
	}
}
