package cpu

import "fmt"

// Status reports the outcome of one call into an operand or an
// instruction handler.
type Status uint8

const (
	// Pending means a tick of work was done (or the tick was already
	// spent), but the operation has not finished. Calling again resumes
	// it from where it left off.
	Pending Status = iota
	// Ready means the operation has finished, and any value returned
	// alongside it is valid.
	Ready
)

func (s Status) String() string {
	if s == Ready {
		return "Ready"
	}
	return "Pending"
}

// Operand8 is an 8-bit operand: a register, an immediate, or a
// memory location addressed in one of several ways. The set of
// implementations is closed to this package.
type Operand8 interface {
	fmt.Stringer
	read8(c *CPU, bus Bus) (uint8, Status)
	write8(c *CPU, bus Bus, value uint8) Status
}

// Operand16 is a 16-bit operand: a register pair, an immediate, or
// a pair of memory locations.
type Operand16 interface {
	fmt.Stringer
	read16(c *CPU, bus Bus) (uint16, Status)
	write16(c *CPU, bus Bus, value uint16) Status
}

// read8 reads an 8-bit value from src.
func (c *CPU) read8(bus Bus, src Operand8) (uint8, Status) {
	return src.read8(c, bus)
}

// write8 writes an 8-bit value to dst.
func (c *CPU) write8(bus Bus, dst Operand8, value uint8) Status {
	return dst.write8(c, bus, value)
}

// read16 reads a 16-bit value from src.
func (c *CPU) read16(bus Bus, src Operand16) (uint16, Status) {
	return src.read16(c, bus)
}

// write16 writes a 16-bit value to dst.
func (c *CPU) write16(bus Bus, dst Operand16, value uint16) Status {
	return dst.write16(c, bus, value)
}

// Reg8 is an 8-bit register operand. Register access never touches
// the bus and always completes immediately.
type Reg8 uint8

const (
	RegA Reg8 = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

func (r Reg8) String() string {
	return [...]string{"A", "B", "C", "D", "E", "H", "L"}[r]
}

func (r Reg8) ptr(c *CPU) *uint8 {
	switch r {
	case RegA:
		return &c.A
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	}
	panic(fmt.Sprintf("cpu: invalid register index: %d", r))
}

func (r Reg8) read8(c *CPU, _ Bus) (uint8, Status) {
	return *r.ptr(c), Ready
}

func (r Reg8) write8(c *CPU, _ Bus, value uint8) Status {
	*r.ptr(c) = value
	return Ready
}

// Reg16 is a 16-bit register pair operand.
type Reg16 uint8

const (
	RegAF Reg16 = iota
	RegBC
	RegDE
	RegHL
	RegSP
)

func (r Reg16) String() string {
	return [...]string{"AF", "BC", "DE", "HL", "SP"}[r]
}

func (r Reg16) read16(c *CPU, _ Bus) (uint16, Status) {
	switch r {
	case RegAF:
		return c.AF(), Ready
	case RegBC:
		return c.BC(), Ready
	case RegDE:
		return c.DE(), Ready
	case RegHL:
		return c.HL(), Ready
	case RegSP:
		return c.SP, Ready
	}
	panic(fmt.Sprintf("cpu: invalid register pair index: %d", r))
}

func (r Reg16) write16(c *CPU, _ Bus, value uint16) Status {
	switch r {
	case RegAF:
		c.SetAF(value)
	case RegBC:
		c.SetBC(value)
	case RegDE:
		c.SetDE(value)
	case RegHL:
		c.SetHL(value)
	case RegSP:
		c.SP = value
	default:
		panic(fmt.Sprintf("cpu: invalid register pair index: %d", r))
	}
	return Ready
}

// Imm8 is the byte following the opcode. Reading it costs one tick
// and advances PC.
type Imm8 struct{}

func (Imm8) String() string { return "d8" }

func (Imm8) read8(c *CPU, bus Bus) (uint8, Status) {
	if c.busy() {
		return 0, Pending
	}
	v := c.read(bus, c.PC)
	c.PC++
	return v, Ready
}

func (o Imm8) write8(*CPU, Bus, uint8) Status {
	panic(readOnly(o))
}

// Imm16 is the little-endian word following the opcode. Reading it
// costs two ticks; the value is returned on the second.
type Imm16 struct{}

func (Imm16) String() string { return "d16" }

func (Imm16) read16(c *CPU, bus Bus) (uint16, Status) {
	p := &c.ctx.operand
	if p.step == 0 {
		lo, s := Imm8{}.read8(c, bus)
		if s == Pending {
			return 0, Pending
		}
		p.lo = lo
		p.step = 1
	}
	hi, s := Imm8{}.read8(c, bus)
	if s == Pending {
		return 0, Pending
	}
	v := uint16(hi)<<8 | uint16(p.lo)
	p.reset()
	return v, Ready
}

func (o Imm16) write16(*CPU, Bus, uint16) Status {
	panic(readOnly(o))
}

// Indirect is a memory location addressed by a register pair, or by
// C in the high page. Each access costs one tick.
type Indirect uint8

const (
	IndBC Indirect = iota
	IndDE
	IndHL
	// IndCFF addresses 0xFF00 | C.
	IndCFF
	// IndHLD addresses HL, decrementing it with the access.
	IndHLD
	// IndHLI addresses HL, incrementing it with the access.
	IndHLI
)

func (i Indirect) String() string {
	return [...]string{"(BC)", "(DE)", "(HL)", "(C)", "(HL-)", "(HL+)"}[i]
}

// address returns the effective address, applying any
// post-increment or post-decrement of HL.
func (i Indirect) address(c *CPU) uint16 {
	switch i {
	case IndBC:
		return c.BC()
	case IndDE:
		return c.DE()
	case IndHL:
		return c.HL()
	case IndCFF:
		return 0xFF00 | uint16(c.C)
	case IndHLD:
		addr := c.HL()
		c.SetHL(addr - 1)
		return addr
	case IndHLI:
		addr := c.HL()
		c.SetHL(addr + 1)
		return addr
	}
	panic(fmt.Sprintf("cpu: invalid indirect index: %d", i))
}

func (i Indirect) read8(c *CPU, bus Bus) (uint8, Status) {
	if c.busy() {
		return 0, Pending
	}
	return c.read(bus, i.address(c)), Ready
}

func (i Indirect) write8(c *CPU, bus Bus, value uint8) Status {
	if c.busy() {
		return Pending
	}
	c.write(bus, i.address(c), value)
	return Ready
}

// Direct8 is a memory location whose address follows the opcode,
// either as a full word or as a single byte offset into the high
// page. The address bytes are read as immediates, then the access
// itself costs one more tick.
type Direct8 uint8

const (
	// DirNN addresses (nn).
	DirNN Direct8 = iota
	// DirFFN addresses (0xFF00 + n).
	DirFFN
)

func (d Direct8) String() string {
	if d == DirFFN {
		return "(a8)"
	}
	return "(a16)"
}

// address assembles the operand address over one or two ticks.
func (d Direct8) address(c *CPU, bus Bus) (uint16, Status) {
	p := &c.ctx.operand
	if p.step == 0 {
		lo, s := Imm8{}.read8(c, bus)
		if s == Pending {
			return 0, Pending
		}
		p.addr = uint16(lo)
		p.step = 1
		if d == DirFFN {
			p.addr |= 0xFF00
			p.step = 2
		}
	}
	if p.step == 1 {
		hi, s := Imm8{}.read8(c, bus)
		if s == Pending {
			return 0, Pending
		}
		p.addr |= uint16(hi) << 8
		p.step = 2
	}
	return p.addr, Ready
}

func (d Direct8) read8(c *CPU, bus Bus) (uint8, Status) {
	addr, s := d.address(c, bus)
	if s == Pending || c.busy() {
		return 0, Pending
	}
	v := c.read(bus, addr)
	c.ctx.operand.reset()
	return v, Ready
}

func (d Direct8) write8(c *CPU, bus Bus, value uint8) Status {
	addr, s := d.address(c, bus)
	if s == Pending || c.busy() {
		return Pending
	}
	c.write(bus, addr, value)
	c.ctx.operand.reset()
	return Ready
}

// Direct16 is a pair of memory locations whose address follows the
// opcode. The word is accessed little-endian, one byte per tick.
type Direct16 struct{}

func (Direct16) String() string { return "(a16)" }

func (Direct16) read16(c *CPU, bus Bus) (uint16, Status) {
	addr, s := DirNN.address(c, bus)
	if s == Pending {
		return 0, Pending
	}
	p := &c.ctx.operand
	if p.step == 2 {
		if c.busy() {
			return 0, Pending
		}
		p.lo = c.read(bus, addr)
		p.step = 3
	}
	if c.busy() {
		return 0, Pending
	}
	hi := c.read(bus, addr+1)
	v := uint16(hi)<<8 | uint16(p.lo)
	p.reset()
	return v, Ready
}

func (Direct16) write16(c *CPU, bus Bus, value uint16) Status {
	addr, s := DirNN.address(c, bus)
	if s == Pending {
		return Pending
	}
	p := &c.ctx.operand
	if p.step == 2 {
		if c.busy() {
			return Pending
		}
		c.write(bus, addr, uint8(value))
		p.step = 3
	}
	if c.busy() {
		return Pending
	}
	c.write(bus, addr+1, uint8(value>>8))
	p.reset()
	return Ready
}
