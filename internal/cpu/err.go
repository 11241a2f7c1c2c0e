package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplemented is matched by the fault raised when an opcode
	// without a handler is decoded.
	ErrUnimplemented = errors.New("cpu: unimplemented opcode")
	// ErrReadOnlyOperand is wrapped by the panic raised when a handler
	// attempts to write through an immediate operand.
	ErrReadOnlyOperand = errors.New("cpu: write to read-only operand")
)

// UnimplementedOpcodeError is the fault raised when the decoder finds
// no handler for the latched opcode. It is fatal: the CPU stops
// processing ticks until Reset.
type UnimplementedOpcodeError struct {
	Opcode uint8
	CB     bool
	// PC is the address the opcode (or its 0xCB prefix) was fetched from.
	PC uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.CB {
		return fmt.Sprintf("%v CB %02X at 0x%04X", ErrUnimplemented, e.Opcode, e.PC)
	}
	return fmt.Sprintf("%v %02X at 0x%04X", ErrUnimplemented, e.Opcode, e.PC)
}

func (e *UnimplementedOpcodeError) Is(target error) bool {
	return target == ErrUnimplemented
}

func readOnly(o fmt.Stringer) error {
	return fmt.Errorf("%w: %s", ErrReadOnlyOperand, o)
}
