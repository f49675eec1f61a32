package cpu

import "fmt"

// addHL adds rr to HL. INC16 and DEC16 touch no flags at all, so
// multi-word sums read the carry between ADD16s only.
//
// Flags affected:
//
//	C - Set if the unsigned sum exceeds 0xFFFF.
func (c *CPU) addHL(rr uint16) {
	sum := uint32(c.HL.Uint16()) + uint32(rr)
	if sum > 0xFFFF {
		c.setFlag(FlagCarry)
	} else {
		c.clearFlag(FlagCarry)
	}
	c.HL.SetUint16(uint16(sum))
}

func init() {
	// generate ADD/ADC/SUB/SBC Rd, Rs instructions
	for i := uint8(0); i < 8; i++ {
		rd := i
		DefineInstruction(0x40+i, fmt.Sprintf("ADD %s, Rs", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.add(c.R[rd], c.R[operands[0]&0x07], false)
		}, Length(2), Mode(ModeRegister))
		DefineInstruction(0x48+i, fmt.Sprintf("ADC %s, Rs", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.add(c.R[rd], c.R[operands[0]&0x07], c.isFlagSet(FlagCarry))
		}, Length(2), Mode(ModeRegister))
		DefineInstruction(0x50+i, fmt.Sprintf("SUB %s, Rs", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.sub(c.R[rd], c.R[operands[0]&0x07], false)
		}, Length(2), Mode(ModeRegister))
		DefineInstruction(0x58+i, fmt.Sprintf("SBC %s, Rs", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.sub(c.R[rd], c.R[operands[0]&0x07], c.isFlagSet(FlagCarry))
		}, Length(2), Mode(ModeRegister))
	}

	// generate ADDI/SUBI/CMPI Rd, #d8 instructions
	for i := uint8(0); i < 8; i++ {
		rd := i
		DefineInstruction(0x60+i, fmt.Sprintf("ADDI %s, #d8", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.add(c.R[rd], operands[0], false)
		}, Length(2), Cycles(3), Mode(ModeImmediate))
		DefineInstruction(0x68+i, fmt.Sprintf("SUBI %s, #d8", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.sub(c.R[rd], operands[0], false)
		}, Length(2), Cycles(3), Mode(ModeImmediate))
		DefineInstruction(0x88+i, fmt.Sprintf("CMPI %s, #d8", registerNames[rd]), func(c *CPU, operands []byte) {
			c.sub(c.R[rd], operands[0], false)
		}, Length(2), Cycles(3), Mode(ModeImmediate))
	}

	// generate INC/DEC Rd instructions
	for i := uint8(0); i < 8; i++ {
		rd := i
		DefineInstruction(0x70+i, fmt.Sprintf("INC %s", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.increment(c.R[rd])
		})
		DefineInstruction(0x78+i, fmt.Sprintf("DEC %s", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.decrement(c.R[rd])
		})
	}

	// generate CMP Rd, Rs instructions
	for i := uint8(0); i < 8; i++ {
		rd := i
		DefineInstruction(0x80+i, fmt.Sprintf("CMP %s, Rs", registerNames[rd]), func(c *CPU, operands []byte) {
			c.sub(c.R[rd], c.R[operands[0]&0x07], false)
		}, Length(2), Mode(ModeRegister))
	}

	// 16-bit arithmetic on the HL and BC pairs
	DefineInstruction(0x90, "INC16 HL", func(c *CPU, operands []byte) {
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(3))
	DefineInstruction(0x91, "DEC16 HL", func(c *CPU, operands []byte) {
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(3))
	DefineInstruction(0x92, "INC16 BC", func(c *CPU, operands []byte) {
		c.BC.SetUint16(c.BC.Uint16() + 1)
	}, Cycles(3))
	DefineInstruction(0x93, "DEC16 BC", func(c *CPU, operands []byte) {
		c.BC.SetUint16(c.BC.Uint16() - 1)
	}, Cycles(3))
	DefineInstruction(0x94, "ADD16 HL, BC", func(c *CPU, operands []byte) {
		c.addHL(c.BC.Uint16())
	}, Cycles(4))
	DefineInstruction(0x95, "ADD16 HL, DE", func(c *CPU, operands []byte) {
		c.addHL(c.DE.Uint16())
	}, Cycles(4))

	DefineInstruction(0x96, "NEG Rd", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.sub(0, c.R[reg], false)
	}, Length(2), Cycles(3), Mode(ModeRegister))
}
