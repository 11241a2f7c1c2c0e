// Package cpu implements the SM83 instruction-execution core. The CPU
// is stepped one M-cycle at a time through Tick, and performs at most
// one bus access per tick, in the same order and on the same cycle
// as the real hardware.
package cpu

import (
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU, in T-cycles per second.
	ClockSpeed = 4194304
	// MCycleSpeed is the number of M-cycles per second; one Tick each.
	MCycleSpeed = ClockSpeed / 4
)

// CPU represents the SM83 CPU. It is responsible for fetching,
// decoding and executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, the register pairs,
	// the program counter and the stack pointer.
	Registers

	Log   log.Logger
	Debug bool

	ctx       context
	cycleUsed bool
	fault     error

	cycles       uint64
	instructions uint64
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used by the CPU.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.Log = l
	}
}

// WithRegisters sets the initial register file. The lower nibble
// of F is discarded.
func WithRegisters(r Registers) Opt {
	return func(c *CPU) {
		c.Registers = r
		c.F &= 0xF0
	}
}

// WithPC sets the address of the first fetch.
func WithPC(pc uint16) Opt {
	return func(c *CPU) {
		c.PC = pc
	}
}

// WithDebug logs every decoded instruction at debug level.
func WithDebug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// NewCPU creates a new CPU, waiting to fetch its first opcode.
func NewCPU(opts ...Opt) *CPU {
	c := &CPU{
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Tick advances the CPU by exactly one M-cycle. If the current
// instruction completes during the tick, the next opcode is fetched
// and decoded within the same tick when the bus is still free.
//
// A non-nil error is a fatal fault (see UnimplementedOpcodeError);
// once faulted, every subsequent Tick returns the same error
// without touching the bus.
func (c *CPU) Tick(bus Bus) error {
	if c.fault != nil {
		return c.fault
	}
	c.cycleUsed = false
	c.cycles++

	if c.ctx.state == stateExecute {
		status := c.ctx.instruction.fn(c, bus)
		if c.fault != nil {
			return c.fault
		}
		if status == Pending {
			return nil
		}
		c.ctx.state = stateFetch
	}

	// the fetch of the next opcode overlaps the final cycle of the
	// previous instruction, unless that cycle was already spent
	if c.busy() {
		return nil
	}

	c.fetch(bus)
	return c.decode()
}

// fetch reads the opcode at PC and latches it.
func (c *CPU) fetch(bus Bus) {
	c.ctx.pc = c.PC
	c.ctx.opcode = c.read(bus, c.PC)
	c.ctx.cb = false
	c.PC++
	c.instructions++
}

// Reset discards any in-flight instruction and fault, leaving the
// registers untouched. The next tick fetches from PC.
func (c *CPU) Reset() {
	c.ctx = context{}
	c.fault = nil
}

// Fault returns the fault that stopped the CPU, or nil.
func (c *CPU) Fault() error {
	return c.fault
}

// Opcode returns the latched opcode.
func (c *CPU) Opcode() uint8 {
	return c.ctx.opcode
}

// CB returns true if the latched opcode belongs to the 0xCB table.
func (c *CPU) CB() bool {
	return c.ctx.cb
}

// Instruction returns the name of the instruction being executed,
// or an empty string between instructions.
func (c *CPU) Instruction() string {
	if c.ctx.state != stateExecute || c.ctx.instruction == nil {
		return ""
	}
	return c.ctx.instruction.name
}

// Cycles returns the number of M-cycles ticked so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// InstructionCount returns the number of opcodes fetched so far,
// counting a 0xCB prefixed instruction once.
func (c *CPU) InstructionCount() uint64 {
	return c.instructions
}
