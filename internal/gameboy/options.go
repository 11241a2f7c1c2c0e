package gameboy

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before its components are built.
type Opt func(gb *GameBoy)

// Debug logs every decoded instruction.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// AsModel selects the model whose post-boot registers are used when
// no boot ROM is provided.
func AsModel(m types.Model) Opt {
	return func(gb *GameBoy) {
		gb.model = m
	}
}

// WithLogger sets the logger shared by the CPU and MMU.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		// if we have a boot ROM, the CPU starts from reset at
		// 0x0000, otherwise the emulator will start at 0x100 with
		// the registers set to the values upon completion
		// of the boot ROM
		gb.bootROM = rom
	}
}

// WithPC overrides the address of the first fetch.
func WithPC(pc uint16) Opt {
	return func(gb *GameBoy) {
		gb.pc = &pc
	}
}

// WithProgram copies data onto the bus at address once the MMU is
// built. Bytes landing outside of writable memory are dropped.
func WithProgram(address uint16, data []byte) Opt {
	return func(gb *GameBoy) {
		gb.programs = append(gb.programs, program{address, data})
	}
}

// WithTrace records every bus access made by the CPU in
// GameBoy.Trace.
func WithTrace() Opt {
	return func(gb *GameBoy) {
		gb.trace = true
	}
}
