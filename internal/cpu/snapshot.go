package cpu

// Snapshot is a copy of the externally visible CPU state, taken
// between steps. It holds no reference back into the CPU, so callers
// can keep one while execution continues.
type Snapshot struct {
	R  [8]uint8
	BC uint16
	DE uint16
	HL uint16

	PC uint16
	SP uint16
	F  uint8

	Zero     bool
	Sign     bool
	Overflow bool
	Carry    bool

	IE               bool
	InterruptPending bool
	Halted           bool
	Faulted          bool
	Fault            string

	IR  uint8
	MAR uint16
	MDR uint8

	Cycles       uint64
	Instructions uint64
}

// Snapshot captures the current CPU state.
func (c *CPU) Snapshot() Snapshot {
	s := Snapshot{
		R:                c.R,
		BC:               c.BC.Uint16(),
		DE:               c.DE.Uint16(),
		HL:               c.HL.Uint16(),
		PC:               c.PC,
		SP:               c.SP,
		F:                c.F,
		Zero:             c.isFlagSet(FlagZero),
		Sign:             c.isFlagSet(FlagSign),
		Overflow:         c.isFlagSet(FlagOverflow),
		Carry:            c.isFlagSet(FlagCarry),
		IE:               c.ie,
		InterruptPending: c.pending,
		Halted:           c.halted,
		Faulted:          c.fault != nil,
		IR:               c.IR,
		MAR:              c.MAR,
		MDR:              c.MDR,
		Cycles:           c.cycles,
		Instructions:     c.instructions,
	}
	if c.fault != nil {
		s.Fault = c.fault.Error()
	}
	return s
}
