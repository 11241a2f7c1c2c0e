package cpu

import "fmt"

// Registers represents the CPU register file. The CPU has 8 registers:
// A, B, C, D, E, F, H and L, which may also be accessed in pairs as
// AF, BC, DE and HL. The F register is special in that it holds the
// flags, and its lower nibble always reads as zero.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	F uint8
	H uint8
	L uint8

	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
}

// AF returns the value of the AF register pair.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F)
}

// BC returns the value of the BC register pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// DE returns the value of the DE register pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// HL returns the value of the HL register pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetAF sets the AF register pair. The lower nibble of F is discarded.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)
	r.F = uint8(value) & 0xF0
}

// SetBC sets the BC register pair.
func (r *Registers) SetBC(value uint16) {
	r.B = uint8(value >> 8)
	r.C = uint8(value)
}

// SetDE sets the DE register pair.
func (r *Registers) SetDE(value uint16) {
	r.D = uint8(value >> 8)
	r.E = uint8(value)
}

// SetHL sets the HL register pair.
func (r *Registers) SetHL(value uint16) {
	r.H = uint8(value >> 8)
	r.L = uint8(value)
}

func (r Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC)
}
