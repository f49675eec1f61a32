package cpu

// add adds b and an incoming carry to a, returning the result. The
// overflow flag is computed against the effective operand b+carry so
// that ADC chains behave like one wide addition.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Set if the signed result does not fit in 8 bits.
//	C - Set if the unsigned sum exceeds 0xFF.
func (c *CPU) add(a, b uint8, carry bool) uint8 {
	var carryIn uint16
	if carry {
		carryIn = 1
	}
	sum := uint16(a) + uint16(b) + carryIn
	result := uint8(sum)
	op := b + uint8(carryIn)
	c.setFlags(result == 0, result&0x80 != 0, (a^result)&(op^result)&0x80 != 0, sum > 0xFF)
	return result
}

// sub subtracts b and an incoming borrow from a, returning the
// result. CMP uses this and discards the result.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Set if the signed result does not fit in 8 bits.
//	C - Set if a borrow occurred.
func (c *CPU) sub(a, b uint8, borrow bool) uint8 {
	var borrowIn int16
	if borrow {
		borrowIn = 1
	}
	diff := int16(a) - int16(b) - borrowIn
	result := uint8(diff)
	op := b + uint8(borrowIn)
	c.setFlags(result == 0, result&0x80 != 0, (a^op)&(a^result)&0x80 != 0, diff < 0)
	return result
}

// increment adds one to n, preserving the carry flag so that loop
// counters do not disturb multi-byte arithmetic.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Set if n was 0x7F.
//	C - Preserved.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, result&0x80 != 0, n == 0x7F, c.isFlagSet(FlagCarry))
	return result
}

// decrement subtracts one from n, preserving the carry flag.
//
// Flags affected:
//
//	Z - Set if the result is zero.
//	S - Set if bit 7 of the result is set.
//	O - Set if n was 0x80.
//	C - Preserved.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, result&0x80 != 0, n == 0x80, c.isFlagSet(FlagCarry))
	return result
}
