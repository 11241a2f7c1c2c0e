package cpu

// Bus is the memory bus the CPU is attached to. Reads may have side
// effects for memory-mapped registers, and writes to unmapped
// addresses are dropped; both are the concern of the implementation.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// busy reports whether the current M-cycle has already been spent,
// either on a bus access or on internal work.
func (c *CPU) busy() bool {
	return c.cycleUsed
}

// read performs the bus read for the current M-cycle.
func (c *CPU) read(bus Bus, address uint16) uint8 {
	c.cycleUsed = true
	return bus.Read(address)
}

// write performs the bus write for the current M-cycle.
func (c *CPU) write(bus Bus, address uint16, value uint8) {
	c.cycleUsed = true
	bus.Write(address, value)
}

// idle spends the current M-cycle on internal work. It returns
// Pending if the cycle has already been spent, in which case the
// caller retries on the next tick.
func (c *CPU) idle() Status {
	if c.cycleUsed {
		return Pending
	}
	c.cycleUsed = true
	return Ready
}
