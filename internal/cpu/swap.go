package cpu

// swap exchanges the upper and lower nibbles of n.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Preserved.
//	C - Preserved.
func (c *CPU) swap(n uint8) uint8 {
	result := n>>4 | n<<4
	c.setZS(result)
	return result
}

func init() {
	DefineInstruction(0xEF, "SWAP Rd", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.swap(c.R[reg])
	}, Length(2), Cycles(3), Mode(ModeRegister))
}
