package cpu

// Flag is the bit position of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return r.F&(1<<flag) != 0
}

// SetFlag sets or clears a single flag, leaving the others untouched.
func (r *Registers) SetFlag(flag Flag, value bool) {
	if value {
		r.F |= 1 << flag
	} else {
		r.F &^= 1 << flag
	}
	r.F &= 0xF0
}

// ZF returns true if the zero flag is set.
func (r *Registers) ZF() bool { return r.Flag(FlagZero) }

// NF returns true if the subtract flag is set.
func (r *Registers) NF() bool { return r.Flag(FlagSubtract) }

// HF returns true if the half carry flag is set.
func (r *Registers) HF() bool { return r.Flag(FlagHalfCarry) }

// CF returns true if the carry flag is set.
func (r *Registers) CF() bool { return r.Flag(FlagCarry) }

func (r *Registers) SetZF(v bool) { r.SetFlag(FlagZero, v) }
func (r *Registers) SetNF(v bool) { r.SetFlag(FlagSubtract, v) }
func (r *Registers) SetHF(v bool) { r.SetFlag(FlagHalfCarry, v) }
func (r *Registers) SetCF(v bool) { r.SetFlag(FlagCarry, v) }

// setFlags sets all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.F = 0
	if zero {
		r.F |= 1 << FlagZero
	}
	if subtract {
		r.F |= 1 << FlagSubtract
	}
	if halfCarry {
		r.F |= 1 << FlagHalfCarry
	}
	if carry {
		r.F |= 1 << FlagCarry
	}
}
