package cpu

// AddressingMode describes how an instruction's operand bytes are
// interpreted. It drives the disassembler's operand formatting and is
// otherwise advisory.
type AddressingMode uint8

const (
	// ModeImplied takes no operand bytes.
	ModeImplied AddressingMode = iota
	// ModeImmediate takes one immediate data byte.
	ModeImmediate
	// ModeImmediate16 takes a little-endian 16-bit immediate.
	ModeImmediate16
	// ModeDirect takes a little-endian 16-bit memory address.
	ModeDirect
	// ModeZeroPage takes a single byte addressing 0x0000-0x00FF.
	ModeZeroPage
	// ModeRegister takes a register byte naming the operand register.
	ModeRegister
	// ModeRegisterImmediate takes a register byte followed by an
	// immediate data byte.
	ModeRegisterImmediate
	// ModeRegisterIndexed takes a signed displacement applied to HL.
	ModeRegisterIndexed
	// ModeRelative takes a signed displacement applied to the address
	// of the next instruction.
	ModeRelative
	// ModeRegisterPort takes a register byte then a port byte.
	ModeRegisterPort
	// ModePortRegister takes a port byte then a register byte.
	ModePortRegister
	// ModeRegisterPacked takes a single byte packing destination and
	// source register indices.
	ModeRegisterPacked
)

// Instruction is a single entry of the instruction set. The zero
// value is an invalid opcode.
type Instruction struct {
	name   string
	mode   AddressingMode
	length uint8
	cycles uint8
	fn     func(c *CPU, operands []byte)
}

// Name returns the mnemonic of the instruction, with operand
// placeholders such as #d8 or a16 where the encoding carries data.
func (i Instruction) Name() string { return i.name }

// Mode returns the addressing mode of the instruction.
func (i Instruction) Mode() AddressingMode { return i.mode }

// Length returns the total encoded length in bytes, opcode included.
func (i Instruction) Length() uint8 { return i.length }

// Cycles returns the number of machine cycles the instruction takes.
func (i Instruction) Cycles() uint8 { return i.cycles }

// Valid reports whether the opcode is defined.
func (i Instruction) Valid() bool { return i.fn != nil }

// InstructionOpt configures an instruction being defined.
type InstructionOpt func(*Instruction)

// Length sets the encoded length of the instruction in bytes,
// including the opcode byte.
func Length(length uint8) InstructionOpt {
	return func(i *Instruction) {
		i.length = length
	}
}

// Cycles sets the number of machine cycles the instruction takes.
func Cycles(cycles uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = cycles
	}
}

// Mode sets the addressing mode of the instruction.
func Mode(mode AddressingMode) InstructionOpt {
	return func(i *Instruction) {
		i.mode = mode
	}
}

// InstructionSet is the decoded instruction table, indexed by opcode.
var InstructionSet [256]Instruction

// DefineInstruction adds an instruction to the set. Instructions
// default to a single byte, two cycles and no operands.
func DefineInstruction(opcode uint8, name string, fn func(c *CPU, operands []byte), opts ...InstructionOpt) {
	ins := Instruction{
		name:   name,
		mode:   ModeImplied,
		length: 1,
		cycles: 2,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&ins)
	}
	InstructionSet[opcode] = ins
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, operands []byte) {})
	DefineInstruction(0x01, "HLT", func(c *CPU, operands []byte) {
		c.halted = true
	})
	DefineInstruction(0xE8, "EI", func(c *CPU, operands []byte) {
		c.ie = true
	})
	DefineInstruction(0xE9, "DI", func(c *CPU, operands []byte) {
		c.ie = false
	})
	DefineInstruction(0xEA, "SCF", func(c *CPU, operands []byte) {
		c.setFlag(FlagCarry)
	})
	DefineInstruction(0xEB, "CCF", func(c *CPU, operands []byte) {
		c.clearFlag(FlagCarry)
	})
	DefineInstruction(0xEC, "CMF", func(c *CPU, operands []byte) {
		c.F ^= FlagCarry
	})
	DefineInstruction(0xED, "IN Rd, #p8", func(c *CPU, operands []byte) {
		c.R[operands[0]&0x07] = c.portIn(operands[1])
	}, Length(3), Cycles(4), Mode(ModeRegisterPort))
	DefineInstruction(0xEE, "OUT #p8, Rs", func(c *CPU, operands []byte) {
		c.portOut(operands[0], c.R[operands[1]&0x07])
	}, Length(3), Cycles(4), Mode(ModePortRegister))
}
