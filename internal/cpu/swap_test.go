package cpu

import "testing"

func TestInstruction_Swap(t *testing.T) {
	testInstruction(t, "SWAP", 0xEF, func(t *testing.T, ins Instruction) {
		cpu.R[6] = 0x42
		cpu.setFlag(FlagCarry)
		cpu.setFlag(FlagOverflow)

		ins.fn(cpu, []byte{0x06})

		if cpu.R[6] != 0x24 {
			t.Errorf("expected R6 to be 0x24, got 0x%02X", cpu.R[6])
		}
		if !cpu.isFlagSet(FlagCarry) || !cpu.isFlagSet(FlagOverflow) {
			t.Errorf("expected C and O to be preserved, got 0x%02X", cpu.F)
		}

		cpu.R[6] = 0x0F
		ins.fn(cpu, []byte{0x06})
		if cpu.R[6] != 0xF0 {
			t.Errorf("expected R6 to be 0xF0, got 0x%02X", cpu.R[6])
		}
		if !cpu.isFlagSet(FlagSign) {
			t.Error("expected sign flag to be set")
		}

		cpu.R[6] = 0x00
		ins.fn(cpu, []byte{0x06})
		if !cpu.isFlagSet(FlagZero) {
			t.Error("expected zero flag to be set")
		}
	})
}
