package cpu

type state uint8

const (
	// stateFetch is the initial state: the next tick reads an opcode.
	stateFetch state = iota
	// stateExecute drives the decoded instruction's handler.
	stateExecute
)

// context is the in-flight execution state of a single CPU. It is
// owned by the CPU and replaces any per-handler persistent storage,
// so that independent CPUs never observe each other's progress.
type context struct {
	state state

	// opcode is the latched opcode, and cb whether it belongs to
	// the 0xCB prefixed table.
	opcode uint8
	cb     bool
	// pc is the address the current instruction was fetched from.
	pc uint16

	// instruction is the handler being stepped, and stage its
	// position within that handler.
	instruction *Instruction
	stage       uint8

	// scratch values carried between the stages of a handler
	val8  uint8
	val16 uint16

	// operand is the progress of the multi-tick operand access
	// currently in flight, if any.
	operand progress
}

// progress is the resumable state of a multi-tick operand access.
type progress struct {
	step uint8
	lo   uint8
	addr uint16
}

func (p *progress) reset() {
	*p = progress{}
}
