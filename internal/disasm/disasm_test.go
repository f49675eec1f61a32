package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rom map[uint16]uint8

func (r rom) Read(address uint16) uint8 {
	return r[address]
}

func program(origin uint16, bytes ...uint8) rom {
	r := rom{}
	for i, b := range bytes {
		r[origin+uint16(i)] = b
	}
	return r
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		bytes []uint8
		text  string
	}{
		{"implied", []uint8{0x00}, "NOP"},
		{"halt", []uint8{0x01}, "HLT"},
		{"immediate", []uint8{0x06, 0x2A}, "LDI R0, #0x2A"},
		{"immediate high register", []uint8{0x0D, 0xFF}, "LDI R7, #0xFF"},
		{"direct load", []uint8{0x0E, 0x00, 0x05}, "LD R0, [0x0500]"},
		{"direct store", []uint8{0x25, 0x34, 0x12}, "ST [0x1234], R7"},
		{"zero page load", []uint8{0x16, 0x80}, "LDZ R0, [0x80]"},
		{"zero page store", []uint8{0x2D, 0x10}, "STZ [0x10], R7"},
		{"indirect load", []uint8{0x2E, 0x03}, "LD R3, [HL]"},
		{"indexed positive", []uint8{0x30, 0x00, 0x05}, "LD R0, [HL+5]"},
		{"indexed negative", []uint8{0x31, 0x04, 0xFB}, "ST [HL-5], R4"},
		{"immediate16", []uint8{0x32, 0x00, 0x05}, "LDI16 HL, #0x0500"},
		{"pair move", []uint8{0x36}, "MOV16 HL, SP"},
		{"register immediate", []uint8{0x38, 0x02, 0x0F}, "ANDI R2, #0x0F"},
		{"shift", []uint8{0x3B, 0x05}, "SHL R5"},
		{"alu register", []uint8{0x40, 0x01}, "ADD R0, R1"},
		{"alu destination in opcode", []uint8{0x47, 0x00}, "ADD R7, R0"},
		{"compare immediate", []uint8{0x8B, 0x07}, "CMPI R3, #0x07"},
		{"negate", []uint8{0x96, 0x06}, "NEG R6"},
		{"not", []uint8{0xBA}, "NOT R2"},
		{"jump", []uint8{0xC0, 0x00, 0x02}, "JMP 0x0200"},
		{"conditional jump", []uint8{0xC3, 0x10, 0x02}, "JNZ 0x0210"},
		{"jump indirect", []uint8{0xCE}, "JP HL"},
		{"call", []uint8{0xCF, 0x00, 0x03}, "CALL 0x0300"},
		{"push", []uint8{0xD4}, "PUSH R2"},
		{"port in", []uint8{0xED, 0x01, 0x10}, "IN R1, #0x10"},
		{"port out", []uint8{0xEE, 0x10, 0x01}, "OUT #0x10, R1"},
		{"swap", []uint8{0xEF, 0x07}, "SWAP R7"},
		{"packed move", []uint8{0xF0, 0x35}, "MOV R3, R5"},
		{"undefined", []uint8{0xFF}, "DB 0xFF"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			e := Decode(program(0x0200, test.bytes...), 0x0200)

			assert.Equal(t, test.text, e.Text)
			assert.Equal(t, test.bytes, e.Bytes)
			assert.Equal(t, uint16(0x0200), e.Address)
		})
	}
}

func TestDecode_Relative(t *testing.T) {
	tests := []struct {
		name    string
		address uint16
		bytes   []uint8
		text    string
	}{
		{"forward", 0x0200, []uint8{0xC1, 0x10}, "JR +16 (0x0212)"},
		{"self loop", 0x0210, []uint8{0xCA, 0xFE}, "JRZ -2 (0x0210)"},
		{"max forward", 0x0300, []uint8{0xCD, 0x7F}, "JRNC +127 (0x0381)"},
		{"backward", 0x0300, []uint8{0xCB, 0xF0}, "JRNZ -16 (0x02F2)"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			e := Decode(program(test.address, test.bytes...), test.address)

			assert.Equal(t, test.text, e.Text)
		})
	}
}

func TestWindow(t *testing.T) {
	r := program(0x0200,
		0x06, 0x03, // LDI R0, #0x03
		0x40, 0x01, // ADD R0, R1
		0xFD,
		0x01, // HLT
	)

	entries := Window(r, 0x0200, 4)

	require.Len(t, entries, 4)
	assert.Equal(t, "LDI R0, #0x03", entries[0].Text)
	assert.Equal(t, uint16(0x0200), entries[0].Address)
	assert.Equal(t, "ADD R0, R1", entries[1].Text)
	assert.Equal(t, uint16(0x0202), entries[1].Address)
	assert.Equal(t, "DB 0xFD", entries[2].Text)
	assert.Equal(t, uint16(0x0204), entries[2].Address)
	assert.Equal(t, "HLT", entries[3].Text)
	assert.Equal(t, uint16(0x0205), entries[3].Address)
}

func TestEntry_String(t *testing.T) {
	e := Decode(program(0x0200, 0x1E, 0x00, 0x05), 0x0200)
	assert.Equal(t, "0200  1E 00 05  ST [0x0500], R0", e.String())

	e = Decode(program(0x0300, 0x01), 0x0300)
	assert.Equal(t, "0300  01        HLT", e.String())
}
