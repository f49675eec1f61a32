package cpu

// rotateLeft rotates n left one place through the carry flag, a nine
// bit rotation. The old carry enters at bit 0 and bit 7 becomes the
// new carry.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Preserved.
//	C - Set to the bit rotated out.
func (c *CPU) rotateLeft(n uint8) uint8 {
	result := n << 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x01
	}
	c.setFlags(result == 0, result&0x80 != 0, c.isFlagSet(FlagOverflow), n&0x80 != 0)
	return result
}

// rotateRight rotates n right one place through the carry flag. The
// old carry enters at bit 7 and bit 0 becomes the new carry.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Preserved.
//	C - Set to the bit rotated out.
func (c *CPU) rotateRight(n uint8) uint8 {
	result := n >> 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x80
	}
	c.setFlags(result == 0, result&0x80 != 0, c.isFlagSet(FlagOverflow), n&0x01 != 0)
	return result
}

func init() {
	DefineInstruction(0x3E, "ROL Rd", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.rotateLeft(c.R[reg])
	}, Length(2), Cycles(3), Mode(ModeRegister))
	DefineInstruction(0x3F, "ROR Rd", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.rotateRight(c.R[reg])
	}, Length(2), Cycles(3), Mode(ModeRegister))
}
