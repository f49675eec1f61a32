package cpu

import "testing"

func TestInstruction_Shift(t *testing.T) {
	// 0x3B - SHL Rd
	testInstruction(t, "SHL", 0x3B, func(t *testing.T, ins Instruction) {
		cpu.R[1] = 0b1100_0001
		cpu.setFlag(FlagOverflow)

		ins.fn(cpu, []byte{0x01})

		if cpu.R[1] != 0b1000_0010 {
			t.Errorf("expected R1 to be 0x82, got 0x%02X", cpu.R[1])
		}
		if !cpu.isFlagSet(FlagCarry) {
			t.Error("expected carry flag to catch bit 7")
		}
		if !cpu.isFlagSet(FlagOverflow) {
			t.Error("expected overflow flag to be preserved")
		}

		// shifting 0x80 leaves zero behind
		cpu.R[1] = 0x80
		ins.fn(cpu, []byte{0x01})
		if cpu.R[1] != 0x00 {
			t.Errorf("expected R1 to be 0x00, got 0x%02X", cpu.R[1])
		}
		if !cpu.isFlagSet(FlagZero) || !cpu.isFlagSet(FlagCarry) {
			t.Errorf("expected Z and C to be set, got 0x%02X", cpu.F)
		}
	})
	// 0x3C - SHR Rd
	testInstruction(t, "SHR", 0x3C, func(t *testing.T, ins Instruction) {
		cpu.R[1] = 0b1000_0011

		ins.fn(cpu, []byte{0x01})

		if cpu.R[1] != 0b0100_0001 {
			t.Errorf("expected R1 to be 0x41, got 0x%02X", cpu.R[1])
		}
		if !cpu.isFlagSet(FlagCarry) {
			t.Error("expected carry flag to catch bit 0")
		}
		if cpu.isFlagSet(FlagSign) {
			t.Error("expected sign flag to be clear")
		}
	})
	// 0x3D - SAR Rd
	testInstruction(t, "SAR", 0x3D, func(t *testing.T, ins Instruction) {
		cpu.R[1] = 0b1000_0010

		ins.fn(cpu, []byte{0x01})

		if cpu.R[1] != 0b1100_0001 {
			t.Errorf("expected R1 to be 0xC1, got 0x%02X", cpu.R[1])
		}
		if cpu.isFlagSet(FlagCarry) {
			t.Error("expected carry flag to be clear")
		}
		if !cpu.isFlagSet(FlagSign) {
			t.Error("expected sign flag to be set")
		}

		// positive values stay positive
		cpu.R[1] = 0x42
		ins.fn(cpu, []byte{0x01})
		if cpu.R[1] != 0x21 {
			t.Errorf("expected R1 to be 0x21, got 0x%02X", cpu.R[1])
		}
	})
}
