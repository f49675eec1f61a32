package cpu

import "fmt"

// and performs a bitwise AND of a and b.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Cleared.
//	C - Cleared.
func (c *CPU) and(a, b uint8) uint8 {
	result := a & b
	c.setFlags(result == 0, result&0x80 != 0, false, false)
	return result
}

// or performs a bitwise OR of a and b.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Cleared.
//	C - Cleared.
func (c *CPU) or(a, b uint8) uint8 {
	result := a | b
	c.setFlags(result == 0, result&0x80 != 0, false, false)
	return result
}

// xor performs a bitwise XOR of a and b.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Cleared.
//	C - Cleared.
func (c *CPU) xor(a, b uint8) uint8 {
	result := a ^ b
	c.setFlags(result == 0, result&0x80 != 0, false, false)
	return result
}

func init() {
	// generate ANDI/ORI/XORI Rd, #d8 instructions
	DefineInstruction(0x38, "ANDI Rd, #d8", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.and(c.R[reg], operands[1])
	}, Length(3), Cycles(4), Mode(ModeRegisterImmediate))
	DefineInstruction(0x39, "ORI Rd, #d8", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.or(c.R[reg], operands[1])
	}, Length(3), Cycles(4), Mode(ModeRegisterImmediate))
	DefineInstruction(0x3A, "XORI Rd, #d8", func(c *CPU, operands []byte) {
		reg := operands[0] & 0x07
		c.R[reg] = c.xor(c.R[reg], operands[1])
	}, Length(3), Cycles(4), Mode(ModeRegisterImmediate))

	// generate AND/OR/XOR Rd, Rs instructions
	for i := uint8(0); i < 8; i++ {
		rd := i
		DefineInstruction(0xA0+i, fmt.Sprintf("AND %s, Rs", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.and(c.R[rd], c.R[operands[0]&0x07])
		}, Length(2), Mode(ModeRegister))
		DefineInstruction(0xA8+i, fmt.Sprintf("OR %s, Rs", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.or(c.R[rd], c.R[operands[0]&0x07])
		}, Length(2), Mode(ModeRegister))
		DefineInstruction(0xB0+i, fmt.Sprintf("XOR %s, Rs", registerNames[rd]), func(c *CPU, operands []byte) {
			c.R[rd] = c.xor(c.R[rd], c.R[operands[0]&0x07])
		}, Length(2), Mode(ModeRegister))
	}

	// generate NOT Rd instructions
	for i := uint8(0); i < 8; i++ {
		rd := i
		DefineInstruction(0xB8+i, fmt.Sprintf("NOT %s", registerNames[rd]), func(c *CPU, operands []byte) {
			result := ^c.R[rd]
			c.R[rd] = result
			c.setFlags(result == 0, result&0x80 != 0, false, false)
		})
	}
}
