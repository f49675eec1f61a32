package cpu

import "testing"

// ram is a flat 64KiB bus for tests.
type ram [0x10000]uint8

func (r *ram) Read(address uint16) uint8         { return r[address] }
func (r *ram) Write(address uint16, value uint8) { r[address] = value }

// cpu and bus are rebuilt by testInstruction before every subtest.
var (
	cpu *CPU
	bus *ram
)

func testInstruction(t *testing.T, name string, opcode uint8, f func(t *testing.T, ins Instruction)) {
	// reset CPU against a fresh flat bus
	bus = &ram{}
	cpu = NewCPU(bus, nil)

	t.Run(name, func(t *testing.T) {
		f(t, InstructionSet[opcode])
	})
}

func TestInstructionSet_Coverage(t *testing.T) {
	invalid := map[uint8]bool{}
	for op := 0x02; op <= 0x05; op++ {
		invalid[uint8(op)] = true
	}
	for op := 0x97; op <= 0x9F; op++ {
		invalid[uint8(op)] = true
	}
	for op := 0xF1; op <= 0xFF; op++ {
		invalid[uint8(op)] = true
	}

	for op := 0; op < 256; op++ {
		ins := InstructionSet[uint8(op)]
		if invalid[uint8(op)] {
			if ins.Valid() {
				t.Errorf("expected opcode 0x%02X to be invalid, got %q", op, ins.Name())
			}
			continue
		}
		if !ins.Valid() {
			t.Errorf("expected opcode 0x%02X to be defined", op)
			continue
		}
		if ins.Length() < 1 || ins.Length() > 3 {
			t.Errorf("opcode 0x%02X (%s) has length %d", op, ins.Name(), ins.Length())
		}
		if ins.Cycles() < 2 || ins.Cycles() > 6 {
			t.Errorf("opcode 0x%02X (%s) has cycle count %d", op, ins.Name(), ins.Cycles())
		}
	}
}

func TestInstructionSet_Encoding(t *testing.T) {
	cases := []struct {
		opcode uint8
		name   string
		length uint8
		cycles uint8
	}{
		{0x00, "NOP", 1, 2},
		{0x01, "HLT", 1, 2},
		{0x06, "LDI R0, #d8", 2, 3},
		{0x0E, "LD R0, [a16]", 3, 5},
		{0x16, "LDZ R0, [zp]", 2, 4},
		{0x1E, "ST [a16], R0", 3, 5},
		{0x26, "STZ [zp], R0", 2, 4},
		{0x2E, "LD Rd, [HL]", 2, 4},
		{0x2F, "ST [HL], Rs", 2, 4},
		{0x30, "LD Rd, [HL+d]", 3, 5},
		{0x31, "ST [HL+d], Rs", 3, 5},
		{0x32, "LDI16 HL, #d16", 3, 4},
		{0x35, "LDI16 SP, #d16", 3, 4},
		{0x36, "MOV16 HL, SP", 1, 3},
		{0x37, "MOV16 SP, HL", 1, 3},
		{0x38, "ANDI Rd, #d8", 3, 4},
		{0x3B, "SHL Rd", 2, 3},
		{0x3E, "ROL Rd", 2, 3},
		{0x40, "ADD R0, Rs", 2, 2},
		{0x4F, "ADC R7, Rs", 2, 2},
		{0x57, "SUB R7, Rs", 2, 2},
		{0x58, "SBC R0, Rs", 2, 2},
		{0x60, "ADDI R0, #d8", 2, 3},
		{0x6F, "SUBI R7, #d8", 2, 3},
		{0x70, "INC R0", 1, 2},
		{0x7F, "DEC R7", 1, 2},
		{0x80, "CMP R0, Rs", 2, 2},
		{0x88, "CMPI R0, #d8", 2, 3},
		{0x90, "INC16 HL", 1, 3},
		{0x93, "DEC16 BC", 1, 3},
		{0x94, "ADD16 HL, BC", 1, 4},
		{0x95, "ADD16 HL, DE", 1, 4},
		{0x96, "NEG Rd", 2, 3},
		{0xA0, "AND R0, Rs", 2, 2},
		{0xAF, "OR R7, Rs", 2, 2},
		{0xB0, "XOR R0, Rs", 2, 2},
		{0xB8, "NOT R0", 1, 2},
		{0xC0, "JMP a16", 3, 4},
		{0xC1, "JR d8", 2, 3},
		{0xC2, "JZ a16", 3, 4},
		{0xC9, "JNO a16", 3, 4},
		{0xCA, "JRZ d8", 2, 3},
		{0xCD, "JRNC d8", 2, 3},
		{0xCE, "JP HL", 1, 3},
		{0xCF, "CALL a16", 3, 6},
		{0xD0, "RET", 1, 5},
		{0xD1, "RETI", 1, 6},
		{0xD2, "PUSH R0", 1, 3},
		{0xDA, "POP R0", 1, 3},
		{0xE1, "POP R7", 1, 3},
		{0xE2, "PUSH16 HL", 1, 4},
		{0xE5, "POP16 BC", 1, 4},
		{0xE6, "PUSHF", 1, 3},
		{0xE7, "POPF", 1, 3},
		{0xE8, "EI", 1, 2},
		{0xE9, "DI", 1, 2},
		{0xEA, "SCF", 1, 2},
		{0xEB, "CCF", 1, 2},
		{0xEC, "CMF", 1, 2},
		{0xED, "IN Rd, #p8", 3, 4},
		{0xEE, "OUT #p8, Rs", 3, 4},
		{0xEF, "SWAP Rd", 2, 3},
		{0xF0, "MOV Rd, Rs", 2, 3},
	}
	for _, tc := range cases {
		ins := InstructionSet[tc.opcode]
		if ins.Name() != tc.name {
			t.Errorf("expected opcode 0x%02X to be %q, got %q", tc.opcode, tc.name, ins.Name())
		}
		if ins.Length() != tc.length {
			t.Errorf("expected %s to have length %d, got %d", tc.name, tc.length, ins.Length())
		}
		if ins.Cycles() != tc.cycles {
			t.Errorf("expected %s to take %d cycles, got %d", tc.name, tc.cycles, ins.Cycles())
		}
	}
}
