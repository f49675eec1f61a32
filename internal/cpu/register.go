package cpu

// Register represents one of the eight 8-bit general purpose
// registers R0-R7.
type Register = uint8

// RegisterPair represents two general purpose registers addressed as a
// single 16-bit value, high byte first.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers represents the Micro8 register file. Three of the general
// registers are additionally addressable as 16-bit pairs: BC over
// R1:R2, DE over R3:R4 and HL over R5:R6. R0 and R7 are never part of
// a pair.
type Registers struct {
	R [8]Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// registerNames indexes the assembly names of the general purpose
// registers.
var registerNames = [8]string{"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7"}

// RegisterName returns the assembly name of a register index. Only
// the low three bits are significant, matching how register bytes are
// decoded.
func RegisterName(register uint8) string {
	return registerNames[register&0x07]
}
