// Package gameboy connects the SM83 core to its memory bus, and
// drives it one M-cycle at a time.
package gameboy

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// GameBoy represents a Game Boy. It contains the components of the
// Game Boy that the core needs, and is the main entry point for
// the host.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	// Trace is non-nil when created WithTrace.
	Trace *mmu.Recorder

	log.Logger

	bus cpu.Bus

	// configuration collected from the options
	model    types.Model
	bootROM  []byte
	pc       *uint16
	programs []program
	debug    bool
	trace    bool
}

type program struct {
	address uint16
	data    []byte
}

// NewGameBoy returns a new GameBoy.
func NewGameBoy(opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
		model:  types.DMGABC,
	}
	for _, opt := range opts {
		opt(g)
	}

	mmuOpts := []mmu.Opt{mmu.WithLogger(g.Logger)}
	var rom *boot.ROM
	if g.bootROM != nil {
		var err error
		if rom, err = boot.Load(g.bootROM); err != nil {
			return nil, fmt.Errorf("gameboy: loading boot ROM: %w", err)
		}
		mmuOpts = append(mmuOpts, mmu.WithBootROM(rom))
		g.Infof("loaded boot ROM: %s (%016x)", rom.Model(), rom.Fingerprint())
	}
	g.MMU = mmu.NewMMU(mmuOpts...)
	for _, p := range g.programs {
		g.MMU.Load(p.address, p.data)
	}

	cpuOpts := []cpu.Opt{
		cpu.WithLogger(g.Logger),
		cpu.WithRegisters(g.initialRegisters(rom != nil)),
	}
	if g.pc != nil {
		cpuOpts = append(cpuOpts, cpu.WithPC(*g.pc))
	}
	if g.debug {
		cpuOpts = append(cpuOpts, cpu.WithDebug())
	}
	g.CPU = cpu.NewCPU(cpuOpts...)

	g.bus = g.MMU
	if g.trace {
		g.Trace = mmu.NewRecorder(g.MMU)
		g.bus = g.Trace
	}

	return g, nil
}

// initialRegisters returns the register file at power on when a boot
// ROM is going to run, or as the boot ROM of the model leaves it.
func (g *GameBoy) initialRegisters(booting bool) cpu.Registers {
	if booting {
		return cpu.Registers{}
	}
	r := types.ModelRegisters[g.model]
	return cpu.Registers{
		A: r[0], F: r[1], B: r[2], C: r[3], D: r[4], E: r[5], H: r[6], L: r[7],
		PC: types.PostBootPC,
		SP: types.PostBootSP,
	}
}

// Step advances the Game Boy by a single M-cycle. The returned error
// is the CPU's fault, if it has stopped.
func (g *GameBoy) Step() error {
	err := g.CPU.Tick(g.bus)
	if g.Trace != nil {
		g.Trace.Tick()
	}
	return err
}

// Run steps the Game Boy for up to cycles M-cycles, stopping early
// if the CPU faults.
func (g *GameBoy) Run(cycles uint64) error {
	for i := uint64(0); i < cycles; i++ {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}
