package cpu

import "testing"

func TestInstruction_Jump(t *testing.T) {
	// 0xC0 - JMP a16
	testInstruction(t, "JMP", 0xC0, func(t *testing.T, ins Instruction) {
		cpu.PC = 0x0203

		ins.fn(cpu, []byte{0x00, 0x30})

		if cpu.PC != 0x3000 {
			t.Errorf("expected PC to be 0x3000, got 0x%04X", cpu.PC)
		}
	})
	// 0xC1 - JR d8
	testInstruction(t, "JR", 0xC1, func(t *testing.T, ins Instruction) {
		cpu.PC = 0x0210

		// positive displacement
		ins.fn(cpu, []byte{0x05})
		if cpu.PC != 0x0215 {
			t.Errorf("expected PC to be 0x0215, got 0x%04X", cpu.PC)
		}

		// negative displacement
		ins.fn(cpu, []byte{0xFB})
		if cpu.PC != 0x0210 {
			t.Errorf("expected PC to be 0x0210, got 0x%04X", cpu.PC)
		}
	})
	// 0xCE - JP HL
	testInstruction(t, "JP HL", 0xCE, func(t *testing.T, ins Instruction) {
		cpu.HL.SetUint16(0x4321)

		ins.fn(cpu, nil)

		if cpu.PC != 0x4321 {
			t.Errorf("expected PC to be 0x4321, got 0x%04X", cpu.PC)
		}
	})
}

func TestInstruction_ConditionalJumps(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		flag   Flag
		set    bool
	}{
		{"JZ", 0xC2, FlagZero, true},
		{"JNZ", 0xC3, FlagZero, false},
		{"JC", 0xC4, FlagCarry, true},
		{"JNC", 0xC5, FlagCarry, false},
		{"JS", 0xC6, FlagSign, true},
		{"JNS", 0xC7, FlagSign, false},
		{"JO", 0xC8, FlagOverflow, true},
		{"JNO", 0xC9, FlagOverflow, false},
	}
	for _, test := range tests {
		test := test
		testInstruction(t, test.name, test.opcode, func(t *testing.T, ins Instruction) {
			if test.set {
				cpu.setFlag(test.flag)
			}
			cpu.PC = 0x0203
			ins.fn(cpu, []byte{0x00, 0x30})
			if cpu.PC != 0x3000 {
				t.Errorf("expected branch to 0x3000, got PC=0x%04X", cpu.PC)
			}

			// flip the condition and the branch falls through
			if test.set {
				cpu.clearFlag(test.flag)
			} else {
				cpu.setFlag(test.flag)
			}
			cpu.PC = 0x0203
			ins.fn(cpu, []byte{0x00, 0x30})
			if cpu.PC != 0x0203 {
				t.Errorf("expected branch to fall through, got PC=0x%04X", cpu.PC)
			}
		})
	}
}

func TestInstruction_ConditionalRelativeJumps(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		flag   Flag
		set    bool
	}{
		{"JRZ", 0xCA, FlagZero, true},
		{"JRNZ", 0xCB, FlagZero, false},
		{"JRC", 0xCC, FlagCarry, true},
		{"JRNC", 0xCD, FlagCarry, false},
	}
	for _, test := range tests {
		test := test
		testInstruction(t, test.name, test.opcode, func(t *testing.T, ins Instruction) {
			if test.set {
				cpu.setFlag(test.flag)
			}
			cpu.PC = 0x0210
			ins.fn(cpu, []byte{0xF0})
			if cpu.PC != 0x0200 {
				t.Errorf("expected branch to 0x0200, got PC=0x%04X", cpu.PC)
			}

			if test.set {
				cpu.clearFlag(test.flag)
			} else {
				cpu.setFlag(test.flag)
			}
			cpu.PC = 0x0210
			ins.fn(cpu, []byte{0xF0})
			if cpu.PC != 0x0210 {
				t.Errorf("expected branch to fall through, got PC=0x%04X", cpu.PC)
			}
		})
	}
}

func TestInstruction_CallReturn(t *testing.T) {
	testInstruction(t, "CALL", 0xCF, func(t *testing.T, ins Instruction) {
		cpu.PC = 0x0203
		cpu.SP = 0x01FE

		ins.fn(cpu, []byte{0x00, 0x40})

		if cpu.PC != 0x4000 {
			t.Errorf("expected PC to be 0x4000, got 0x%04X", cpu.PC)
		}
		if cpu.SP != 0x01FC {
			t.Errorf("expected SP to be 0x01FC, got 0x%04X", cpu.SP)
		}
		// return address sits high byte above low byte
		if bus[0x01FD] != 0x02 || bus[0x01FC] != 0x03 {
			t.Errorf("expected return address 0x0203 on the stack, got 0x%02X%02X", bus[0x01FD], bus[0x01FC])
		}

		// 0xD0 - RET pops it back
		InstructionSet[0xD0].fn(cpu, nil)
		if cpu.PC != 0x0203 {
			t.Errorf("expected PC to be 0x0203, got 0x%04X", cpu.PC)
		}
		if cpu.SP != 0x01FE {
			t.Errorf("expected SP to be 0x01FE, got 0x%04X", cpu.SP)
		}
		// unlike RETI, RET does not touch the IE bit
		if cpu.InterruptsEnabled() {
			t.Error("expected interrupts to stay disabled across RET")
		}
	})
}
