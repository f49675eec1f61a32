package cpu

import "fmt"

// jumpAbsolute sets PC to address if condition holds. Conditional
// jumps cost the same whether or not they are taken.
func (c *CPU) jumpAbsolute(condition bool, address uint16) {
	if condition {
		c.PC = address
	}
}

// jumpRelative adds the signed offset to the address of the next
// instruction if condition holds. PC has already moved past the
// instruction when this runs.
func (c *CPU) jumpRelative(condition bool, offset uint8) {
	if condition {
		c.PC += uint16(int16(int8(offset)))
	}
}

// call pushes the address of the next instruction and jumps.
func (c *CPU) call(address uint16) {
	if !c.stackOK(-2) {
		return
	}
	c.pushWord(c.PC)
	c.PC = address
}

// ret pops the return address into PC.
func (c *CPU) ret() {
	if !c.stackOK(2) {
		return
	}
	c.PC = c.popWord()
}

// retInterrupt returns from an interrupt handler. The IE bit is set
// unconditionally, undoing the clear from interrupt entry no matter
// what the handler did in between.
func (c *CPU) retInterrupt() {
	c.ret()
	if c.fault != nil {
		return
	}
	c.ie = true
}

// conditions for the Jcc and JRcc families, in opcode order. Only the
// first four have relative forms.
var conditions = []struct {
	name string
	flag Flag
	set  bool
}{
	{"Z", FlagZero, true},
	{"NZ", FlagZero, false},
	{"C", FlagCarry, true},
	{"NC", FlagCarry, false},
	{"S", FlagSign, true},
	{"NS", FlagSign, false},
	{"O", FlagOverflow, true},
	{"NO", FlagOverflow, false},
}

func init() {
	DefineInstruction(0xC0, "JMP a16", func(c *CPU, operands []byte) {
		c.jumpAbsolute(true, uint16(operands[1])<<8|uint16(operands[0]))
	}, Length(3), Cycles(4), Mode(ModeDirect))
	DefineInstruction(0xC1, "JR d8", func(c *CPU, operands []byte) {
		c.jumpRelative(true, operands[0])
	}, Length(2), Cycles(3), Mode(ModeRelative))

	// generate the conditional jump instructions
	for i, cond := range conditions {
		cond := cond
		DefineInstruction(0xC2+uint8(i), fmt.Sprintf("J%s a16", cond.name), func(c *CPU, operands []byte) {
			c.jumpAbsolute(c.isFlagSet(cond.flag) == cond.set, uint16(operands[1])<<8|uint16(operands[0]))
		}, Length(3), Cycles(4), Mode(ModeDirect))
	}
	for i, cond := range conditions[:4] {
		cond := cond
		DefineInstruction(0xCA+uint8(i), fmt.Sprintf("JR%s d8", cond.name), func(c *CPU, operands []byte) {
			c.jumpRelative(c.isFlagSet(cond.flag) == cond.set, operands[0])
		}, Length(2), Cycles(3), Mode(ModeRelative))
	}

	DefineInstruction(0xCE, "JP HL", func(c *CPU, operands []byte) {
		c.PC = c.HL.Uint16()
	}, Cycles(3))
	DefineInstruction(0xCF, "CALL a16", func(c *CPU, operands []byte) {
		c.call(uint16(operands[1])<<8 | uint16(operands[0]))
	}, Length(3), Cycles(6), Mode(ModeDirect))
	DefineInstruction(0xD0, "RET", func(c *CPU, operands []byte) {
		c.ret()
	}, Cycles(5))
	DefineInstruction(0xD1, "RETI", func(c *CPU, operands []byte) {
		c.retInterrupt()
	}, Cycles(6))
}
