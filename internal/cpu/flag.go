package cpu

// Flag is a single bit of the flags register.
type Flag = uint8

// Flags register bit layout. The remaining bits are reserved and
// always read back as zero.
const (
	FlagCarry    Flag = 0x01
	FlagOverflow Flag = 0x04
	FlagZero     Flag = 0x40
	FlagSign     Flag = 0x80

	flagMask = FlagCarry | FlagOverflow | FlagZero | FlagSign
)

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= flag
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag != 0
}

// setFlags rewrites all four flags at once. Operations that preserve
// carry or overflow pass the current value back in.
func (c *CPU) setFlags(zero, sign, overflow, carry bool) {
	f := uint8(0)
	if zero {
		f |= FlagZero
	}
	if sign {
		f |= FlagSign
	}
	if overflow {
		f |= FlagOverflow
	}
	if carry {
		f |= FlagCarry
	}
	c.F = f
}

// setZS rewrites the zero and sign flags from value, leaving carry and
// overflow untouched.
func (c *CPU) setZS(value uint8) {
	c.F &= FlagCarry | FlagOverflow
	if value == 0 {
		c.F |= FlagZero
	}
	if value&0x80 != 0 {
		c.F |= FlagSign
	}
}
