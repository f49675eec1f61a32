package cpu

import "fmt"

// pushByte decrements SP and stores value at the new top of stack.
func (c *CPU) pushByte(value uint8) {
	c.SP--
	c.writeByte(c.SP, value)
}

// popByte reads the top of stack and increments SP.
func (c *CPU) popByte() uint8 {
	value := c.readByte(c.SP)
	c.SP++
	return value
}

// pushWord pushes a 16-bit value high byte first, so the low byte
// ends up at the lower address.
func (c *CPU) pushWord(value uint16) {
	c.pushByte(uint8(value >> 8))
	c.pushByte(uint8(value))
}

// popWord pops a 16-bit value pushed by pushWord.
func (c *CPU) popWord() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return uint16(hi)<<8 | uint16(lo)
}

func init() {
	// generate PUSH Rs and POP Rd instructions
	for i := uint8(0); i < 8; i++ {
		reg := i
		DefineInstruction(0xD2+i, fmt.Sprintf("PUSH %s", registerNames[reg]), func(c *CPU, operands []byte) {
			if !c.stackOK(-1) {
				return
			}
			c.pushByte(c.R[reg])
		}, Cycles(3))
		DefineInstruction(0xDA+i, fmt.Sprintf("POP %s", registerNames[reg]), func(c *CPU, operands []byte) {
			if !c.stackOK(1) {
				return
			}
			c.R[reg] = c.popByte()
		}, Cycles(3))
	}

	// 16-bit pushes for the HL and BC pairs
	DefineInstruction(0xE2, "PUSH16 HL", func(c *CPU, operands []byte) {
		if !c.stackOK(-2) {
			return
		}
		c.pushWord(c.HL.Uint16())
	}, Cycles(4))
	DefineInstruction(0xE3, "POP16 HL", func(c *CPU, operands []byte) {
		if !c.stackOK(2) {
			return
		}
		c.HL.SetUint16(c.popWord())
	}, Cycles(4))
	DefineInstruction(0xE4, "PUSH16 BC", func(c *CPU, operands []byte) {
		if !c.stackOK(-2) {
			return
		}
		c.pushWord(c.BC.Uint16())
	}, Cycles(4))
	DefineInstruction(0xE5, "POP16 BC", func(c *CPU, operands []byte) {
		if !c.stackOK(2) {
			return
		}
		c.BC.SetUint16(c.popWord())
	}, Cycles(4))

	DefineInstruction(0xE6, "PUSHF", func(c *CPU, operands []byte) {
		if !c.stackOK(-1) {
			return
		}
		c.pushByte(c.F)
	}, Cycles(3))
	DefineInstruction(0xE7, "POPF", func(c *CPU, operands []byte) {
		if !c.stackOK(1) {
			return
		}
		// reserved flag bits always read zero, even through the stack
		c.F = c.popByte() & flagMask
	}, Cycles(3))
}
