// Package cpu implements the Micro8 processor core. The CPU executes
// instructions one at a time against a memory bus, tracks machine
// cycles, and freezes on the first fault until it is reset.
package cpu

import "fmt"

// Bus is the memory the CPU fetches from and stores to. Addresses
// cover the full 64KiB space.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Ports handles the IN and OUT instructions. A nil Ports reads zero
// and discards writes.
type Ports interface {
	In(port uint8) uint8
	Out(port uint8, value uint8)
}

// Memory layout conventions. Nothing in the core enforces them beyond
// the defaults below; programs are free to relocate everything.
const (
	// VectorAddress holds the little-endian address of the interrupt
	// handler. The CPU loads PC from here on interrupt entry.
	VectorAddress uint16 = 0x01FE
	// DefaultPC is where program images load and execution begins.
	DefaultPC uint16 = 0x0200
	// DefaultSP is the initial stack pointer. The stack grows down
	// from here, so the first pushed byte lands at 0x01FD.
	DefaultSP uint16 = 0x01FE
)

// StepResult reports what a single Step did.
type StepResult uint8

const (
	// Continued means an instruction executed and the CPU is ready
	// for the next one.
	Continued StepResult = iota
	// Halted means the CPU is stopped on HLT and waiting for an
	// interrupt.
	Halted
	// Faulted means the CPU hit an invalid opcode or a stack guard
	// violation and is frozen until Reset.
	Faulted
)

// CPU is the Micro8 processor core. It owns the register file, flags,
// and interrupt state, and executes one instruction per Step against
// the bus it was created with.
type CPU struct {
	// Registers contains the 8-bit registers as well as the 16-bit
	// register pairs.
	Registers
	// F is the flags register. Reserved bits always read zero.
	F uint8
	// PC is the program counter. It points to the next instruction
	// to be executed.
	PC uint16
	// SP is the stack pointer. It points to the last pushed byte.
	SP uint16

	// IR, MAR and MDR mirror the most recent opcode fetch and bus
	// access. They are debug registers, not architectural state, and
	// keep updating even on the access that faults.
	IR  uint8
	MAR uint16
	MDR uint8

	ie      bool
	pending bool
	halted  bool
	fault   error

	cycles       uint64
	instructions uint64

	guard     bool
	stackLow  uint16
	stackHigh uint16

	b     Bus
	ports Ports
}

// NewCPU creates a new CPU against the given bus and ports. The CPU
// comes up in its power-on state with PC and SP at the defaults.
func NewCPU(b Bus, ports Ports) *CPU {
	c := &CPU{
		b:     b,
		ports: ports,
		PC:    DefaultPC,
		SP:    DefaultSP,
	}
	c.BC = &RegisterPair{High: &c.R[1], Low: &c.R[2]}
	c.DE = &RegisterPair{High: &c.R[3], Low: &c.R[4]}
	c.HL = &RegisterPair{High: &c.R[5], Low: &c.R[6]}
	return c
}

// Reset returns the CPU to its power-on state with execution starting
// at pc and the stack growing down from sp. Any fault is cleared.
func (c *CPU) Reset(pc, sp uint16) {
	c.R = [8]Register{}
	c.F = 0
	c.PC = pc
	c.SP = sp
	c.IR = 0
	c.MAR = 0
	c.MDR = 0
	c.ie = false
	c.pending = false
	c.halted = false
	c.fault = nil
	c.cycles = 0
	c.instructions = 0
}

// GuardStack enables stack bounds checking. A push that would move SP
// below low faults with ErrStackOverflow, and a pop that would move
// it above high faults with ErrStackUnderflow. The faulting
// instruction commits nothing.
func (c *CPU) GuardStack(low, high uint16) {
	c.guard = true
	c.stackLow = low
	c.stackHigh = high
}

// RaiseInterrupt latches an interrupt request. Requests do not queue;
// raising while one is already pending collapses into a single
// request. The CPU services it after the current instruction if the
// IE bit is set, waking from HLT if necessary.
func (c *CPU) RaiseInterrupt() {
	c.pending = true
}

// Step executes a single instruction and then services a pending
// interrupt if interrupts are enabled. A faulted CPU does nothing and
// keeps returning the fault until Reset.
func (c *CPU) Step() (StepResult, error) {
	if c.fault != nil {
		return Faulted, c.fault
	}
	if c.halted {
		if c.serviceInterrupt() {
			return Continued, nil
		}
		if c.fault != nil {
			return Faulted, c.fault
		}
		return Halted, nil
	}

	opcode := c.readByte(c.PC)
	c.IR = opcode
	ins := InstructionSet[opcode]
	if !ins.Valid() {
		c.fault = fmt.Errorf("%w: 0x%02X at 0x%04X", ErrInvalidOpcode, opcode, c.PC)
		return Faulted, c.fault
	}

	var operands [2]byte
	for i := uint8(1); i < ins.length; i++ {
		operands[i-1] = c.readByte(c.PC + uint16(i))
	}

	// PC advances past the instruction before it runs so that jumps,
	// calls and relative offsets see the address of the next
	// instruction. A fault inside the handler rolls it back.
	pc := c.PC
	c.PC += uint16(ins.length)
	ins.fn(c, operands[:ins.length-1])
	if c.fault != nil {
		c.PC = pc
		return Faulted, c.fault
	}

	c.instructions++
	c.cycles += uint64(ins.cycles)

	c.serviceInterrupt()
	if c.fault != nil {
		return Faulted, c.fault
	}
	if c.halted {
		return Halted, nil
	}
	return Continued, nil
}

// serviceInterrupt enters the interrupt handler if one is pending and
// the IE bit is set. Entry clears IE, pushes the return address and
// loads PC through the vector pointer. Flags are not pushed; the
// handler preserves what it touches.
func (c *CPU) serviceInterrupt() bool {
	if !c.ie || !c.pending {
		return false
	}
	if !c.stackOK(-2) {
		return false
	}
	c.pending = false
	c.ie = false
	c.halted = false
	c.pushWord(c.PC)
	lo := c.readByte(VectorAddress)
	hi := c.readByte(VectorAddress + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return true
}

// stackOK checks that moving SP by delta stays inside the guarded
// range. It must be called before any state is mutated so that a
// faulting instruction commits nothing.
func (c *CPU) stackOK(delta int) bool {
	if !c.guard {
		return true
	}
	sp := int(c.SP) + delta
	if sp < int(c.stackLow) {
		c.fault = fmt.Errorf("%w: SP 0x%04X", ErrStackOverflow, c.SP)
		return false
	}
	if sp > int(c.stackHigh) {
		c.fault = fmt.Errorf("%w: SP 0x%04X", ErrStackUnderflow, c.SP)
		return false
	}
	return true
}

func (c *CPU) readByte(address uint16) uint8 {
	value := c.b.Read(address)
	c.MAR = address
	c.MDR = value
	return value
}

func (c *CPU) writeByte(address uint16, value uint8) {
	c.b.Write(address, value)
	c.MAR = address
	c.MDR = value
}

func (c *CPU) portIn(port uint8) uint8 {
	if c.ports == nil {
		return 0
	}
	return c.ports.In(port)
}

func (c *CPU) portOut(port, value uint8) {
	if c.ports != nil {
		c.ports.Out(port, value)
	}
}

// Halted reports whether the CPU is stopped on HLT.
func (c *CPU) Halted() bool { return c.halted }

// Fault returns the error that froze the CPU, or nil.
func (c *CPU) Fault() error { return c.fault }

// InterruptsEnabled reports the IE bit.
func (c *CPU) InterruptsEnabled() bool { return c.ie }

// InterruptPending reports whether an interrupt request is latched.
func (c *CPU) InterruptPending() bool { return c.pending }

// Cycles returns the number of machine cycles executed since reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Instructions returns the number of instructions retired since
// reset.
func (c *CPU) Instructions() uint64 { return c.instructions }
