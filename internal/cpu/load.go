package cpu

import "fmt"

// indexedAddress resolves [HL+d] against the live HL pair. The signed
// displacement wraps around the 64KiB space.
func (c *CPU) indexedAddress(d uint8) uint16 {
	return c.HL.Uint16() + uint16(int16(int8(d)))
}

func init() {
	// generate LDI Rd, #d8 instructions
	for i := uint8(0); i < 8; i++ {
		rd := i
		DefineInstruction(0x06+i, fmt.Sprintf("LDI %s, #d8", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = operands[0]
		}, Length(2), Cycles(3), Mode(ModeImmediate))
	}

	// generate LD Rd, [a16] and ST [a16], Rs instructions
	for i := uint8(0); i < 8; i++ {
		reg := i
		DefineInstruction(0x0E+i, fmt.Sprintf("LD %s, [a16]", registerNames[reg]), func(c *CPU, operands []byte) {
			c.R[reg] = c.readByte(uint16(operands[1])<<8 | uint16(operands[0]))
		}, Length(3), Cycles(5), Mode(ModeDirect))
		DefineInstruction(0x1E+i, fmt.Sprintf("ST [a16], %s", registerNames[reg]), func(c *CPU, operands []byte) {
			c.writeByte(uint16(operands[1])<<8|uint16(operands[0]), c.R[reg])
		}, Length(3), Cycles(5), Mode(ModeDirect))
	}

	// generate LDZ Rd, [zp] and STZ [zp], Rs instructions
	for i := uint8(0); i < 8; i++ {
		reg := i
		DefineInstruction(0x16+i, fmt.Sprintf("LDZ %s, [zp]", registerNames[reg]), func(c *CPU, operands []byte) {
			c.R[reg] = c.readByte(uint16(operands[0]))
		}, Length(2), Cycles(4), Mode(ModeZeroPage))
		DefineInstruction(0x26+i, fmt.Sprintf("STZ [zp], %s", registerNames[reg]), func(c *CPU, operands []byte) {
			c.writeByte(uint16(operands[0]), c.R[reg])
		}, Length(2), Cycles(4), Mode(ModeZeroPage))
	}

	// indirect and indexed loads through HL
	DefineInstruction(0x2E, "LD Rd, [HL]", func(c *CPU, operands []byte) {
		c.R[operands[0]&0x07] = c.readByte(c.HL.Uint16())
	}, Length(2), Cycles(4), Mode(ModeRegister))
	DefineInstruction(0x2F, "ST [HL], Rs", func(c *CPU, operands []byte) {
		c.writeByte(c.HL.Uint16(), c.R[operands[0]&0x07])
	}, Length(2), Cycles(4), Mode(ModeRegister))
	DefineInstruction(0x30, "LD Rd, [HL+d]", func(c *CPU, operands []byte) {
		c.R[operands[0]&0x07] = c.readByte(c.indexedAddress(operands[1]))
	}, Length(3), Cycles(5), Mode(ModeRegisterIndexed))
	DefineInstruction(0x31, "ST [HL+d], Rs", func(c *CPU, operands []byte) {
		c.writeByte(c.indexedAddress(operands[1]), c.R[operands[0]&0x07])
	}, Length(3), Cycles(5), Mode(ModeRegisterIndexed))

	// 16-bit immediate loads
	DefineInstruction(0x32, "LDI16 HL, #d16", func(c *CPU, operands []byte) {
		c.HL.SetUint16(uint16(operands[1])<<8 | uint16(operands[0]))
	}, Length(3), Cycles(4), Mode(ModeImmediate16))
	DefineInstruction(0x33, "LDI16 BC, #d16", func(c *CPU, operands []byte) {
		c.BC.SetUint16(uint16(operands[1])<<8 | uint16(operands[0]))
	}, Length(3), Cycles(4), Mode(ModeImmediate16))
	DefineInstruction(0x34, "LDI16 DE, #d16", func(c *CPU, operands []byte) {
		c.DE.SetUint16(uint16(operands[1])<<8 | uint16(operands[0]))
	}, Length(3), Cycles(4), Mode(ModeImmediate16))
	DefineInstruction(0x35, "LDI16 SP, #d16", func(c *CPU, operands []byte) {
		c.SP = uint16(operands[1])<<8 | uint16(operands[0])
	}, Length(3), Cycles(4), Mode(ModeImmediate16))

	// pointer moves between HL and SP
	DefineInstruction(0x36, "MOV16 HL, SP", func(c *CPU, operands []byte) {
		c.HL.SetUint16(c.SP)
	}, Cycles(3))
	DefineInstruction(0x37, "MOV16 SP, HL", func(c *CPU, operands []byte) {
		c.SP = c.HL.Uint16()
	}, Cycles(3))

	// register to register move, both registers packed in one byte
	DefineInstruction(0xF0, "MOV Rd, Rs", func(c *CPU, operands []byte) {
		c.R[operands[0]>>4&0x07] = c.R[operands[0]&0x07]
	}, Length(2), Cycles(3), Mode(ModeRegisterPacked))
}
