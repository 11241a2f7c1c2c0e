package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/gameboy"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	bootROM := flag.String("boot", "", "The boot rom file to load")
	programFile := flag.String("program", "", "A raw program to load into work RAM at 0xC000")
	cycles := flag.Uint64("cycles", cpu.MCycleSpeed, "The number of M-cycles to run for")
	startPC := flag.String("pc", "", "Override the address of the first fetch, e.g. 0xC000")
	asModel := flag.String("model", "dmg", "The model whose post-boot registers are used without a boot rom")
	logLevel := flag.String("log-level", "info", "The log level (error, info, debug)")
	debug := flag.Bool("debug", false, "Log every decoded instruction (implies -log-level debug)")
	trace := flag.Bool("trace", false, "Record bus accesses and print their digest")
	flag.Parse()

	level := *logLevel
	if *debug {
		level = "debug"
	}
	logger, err := log.NewWithLevel(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.AsModel(types.StringToModel(*asModel)),
	}

	// open the boot rom file
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *programFile != "" {
		program, err := utils.LoadFile(*programFile)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithProgram(types.WRAMStart, program))
		if *bootROM == "" && *startPC == "" {
			opts = append(opts, gameboy.WithPC(types.WRAMStart))
		}
	}
	if *startPC != "" {
		pc, err := strconv.ParseUint(*startPC, 0, 16)
		if err != nil {
			logger.Errorf("invalid -pc: %v", err)
			os.Exit(2)
		}
		opts = append(opts, gameboy.WithPC(uint16(pc)))
	}
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	if *trace {
		opts = append(opts, gameboy.WithTrace())
	}

	gb, err := gameboy.NewGameBoy(opts...)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	err = gb.Run(*cycles)
	fmt.Println(gb.CPU.Registers)
	fmt.Printf("cycles: %d instructions: %d\n", gb.CPU.Cycles(), gb.CPU.InstructionCount())
	if gb.Trace != nil {
		fmt.Printf("trace: %d accesses, digest %016x\n", len(gb.Trace.Accesses()), gb.Trace.Digest())
	}

	var fault *cpu.UnimplementedOpcodeError
	if errors.As(err, &fault) {
		fmt.Printf("stopped: %v\n", fault)
		os.Exit(1)
	}
}
