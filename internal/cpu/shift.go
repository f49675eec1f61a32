package cpu

// shiftLeft shifts n left one place, moving bit 7 into the carry
// flag.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Preserved.
//	C - Set to the bit shifted out.
func (c *CPU) shiftLeft(n uint8) uint8 {
	result := n << 1
	c.setFlags(result == 0, result&0x80 != 0, c.isFlagSet(FlagOverflow), n&0x80 != 0)
	return result
}

// shiftRight shifts n right one place, moving bit 0 into the carry
// flag. Bit 7 of the result is zero.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Preserved.
//	C - Set to the bit shifted out.
func (c *CPU) shiftRight(n uint8) uint8 {
	result := n >> 1
	c.setFlags(result == 0, result&0x80 != 0, c.isFlagSet(FlagOverflow), n&0x01 != 0)
	return result
}

// shiftRightArithmetic shifts n right one place, keeping bit 7 so the
// sign of a two's complement value survives the shift.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Preserved.
//	C - Set to the bit shifted out.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	result := n>>1 | n&0x80
	c.setFlags(result == 0, result&0x80 != 0, c.isFlagSet(FlagOverflow), n&0x01 != 0)
	return result
}

func init() {
	DefineInstruction(0x3B, "SHL Rd", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.shiftLeft(c.R[reg])
	}, Length(2), Cycles(3), Mode(ModeRegister))
	DefineInstruction(0x3C, "SHR Rd", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.shiftRight(c.R[reg])
	}, Length(2), Cycles(3), Mode(ModeRegister))
	DefineInstruction(0x3D, "SAR Rd", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.shiftRightArithmetic(c.R[reg])
	}, Length(2), Cycles(3), Mode(ModeRegister))
}
