package mmu

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// Access is a single bus transaction observed by a Recorder.
type Access struct {
	Cycle   uint64
	Address uint16
	Value   uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("%d: W %04X <- %02X", a.Cycle, a.Address, a.Value)
	}
	return fmt.Sprintf("%d: R %04X -> %02X", a.Cycle, a.Address, a.Value)
}

// Recorder wraps an IOBus and records every access made through
// it, stamped with the M-cycle it happened on. The owner of the
// Recorder calls Tick once per M-cycle.
type Recorder struct {
	bus      IOBus
	cycle    uint64
	accesses []Access
}

// NewRecorder returns a Recorder forwarding to bus.
func NewRecorder(bus IOBus) *Recorder {
	return &Recorder{bus: bus}
}

// Read reads from the underlying bus and records the access.
func (r *Recorder) Read(address uint16) uint8 {
	v := r.bus.Read(address)
	r.accesses = append(r.accesses, Access{Cycle: r.cycle, Address: address, Value: v})
	return v
}

// Write writes to the underlying bus and records the access.
func (r *Recorder) Write(address uint16, value uint8) {
	r.bus.Write(address, value)
	r.accesses = append(r.accesses, Access{Cycle: r.cycle, Address: address, Value: value, Write: true})
}

// Tick advances the recorder to the next M-cycle.
func (r *Recorder) Tick() {
	r.cycle++
}

// Cycle returns the current M-cycle.
func (r *Recorder) Cycle() uint64 {
	return r.cycle
}

// Accesses returns every recorded access, in order.
func (r *Recorder) Accesses() []Access {
	return r.accesses
}

// Writes returns only the recorded writes.
func (r *Recorder) Writes() []Access {
	var writes []Access
	for _, a := range r.accesses {
		if a.Write {
			writes = append(writes, a)
		}
	}
	return writes
}

// AccessesPerCycle returns the number of accesses made on each
// cycle that saw at least one.
func (r *Recorder) AccessesPerCycle() map[uint64]int {
	counts := make(map[uint64]int)
	for _, a := range r.accesses {
		counts[a.Cycle]++
	}
	return counts
}

// Reset discards the recorded accesses and rewinds the cycle count.
func (r *Recorder) Reset() {
	r.accesses = r.accesses[:0]
	r.cycle = 0
}

// Digest returns a hash of the whole access log, so that two runs
// can be compared for bus-level equivalence.
func (r *Recorder) Digest() uint64 {
	d := xxhash.New()
	var buf [12]byte
	for _, a := range r.accesses {
		binary.LittleEndian.PutUint64(buf[0:], a.Cycle)
		binary.LittleEndian.PutUint16(buf[8:], a.Address)
		buf[10] = a.Value
		buf[11] = 0
		if a.Write {
			buf[11] = 1
		}
		d.Write(buf[:])
	}
	return d.Sum64()
}
