// Package disasm renders Micro8 machine code as assembly text. It
// decodes against the same instruction table the CPU executes from,
// so the two can never disagree about lengths or mnemonics.
package disasm

import (
	"fmt"
	"strings"

	"github.com/micro8/micro8/internal/cpu"
)

// Reader provides the bytes being disassembled.
type Reader interface {
	Read(address uint16) uint8
}

// Entry is a single decoded instruction.
type Entry struct {
	Address uint16
	Bytes   []uint8
	Text    string
}

// String formats the entry as an address, raw bytes and assembly
// text, one listing line.
func (e Entry) String() string {
	raw := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		raw[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-9s %s", e.Address, strings.Join(raw, " "), e.Text)
}

// Decode disassembles the instruction at address. Undefined opcodes
// decode as single-byte DB directives.
func Decode(r Reader, address uint16) Entry {
	opcode := r.Read(address)
	ins := cpu.InstructionSet[opcode]
	if !ins.Valid() {
		return Entry{
			Address: address,
			Bytes:   []uint8{opcode},
			Text:    fmt.Sprintf("DB 0x%02X", opcode),
		}
	}

	bytes := make([]uint8, ins.Length())
	bytes[0] = opcode
	for i := uint8(1); i < ins.Length(); i++ {
		bytes[i] = r.Read(address + uint16(i))
	}
	operands := bytes[1:]

	text := ins.Name()
	switch ins.Mode() {
	case cpu.ModeImmediate:
		text = strings.Replace(text, "#d8", fmt.Sprintf("#0x%02X", operands[0]), 1)
	case cpu.ModeImmediate16:
		text = strings.Replace(text, "#d16", fmt.Sprintf("#0x%04X", word(operands)), 1)
	case cpu.ModeDirect:
		text = strings.Replace(text, "a16", fmt.Sprintf("0x%04X", word(operands)), 1)
	case cpu.ModeZeroPage:
		text = strings.Replace(text, "zp", fmt.Sprintf("0x%02X", operands[0]), 1)
	case cpu.ModeRegister:
		text = register(text, operands[0])
	case cpu.ModeRegisterImmediate:
		text = register(text, operands[0])
		text = strings.Replace(text, "#d8", fmt.Sprintf("#0x%02X", operands[1]), 1)
	case cpu.ModeRegisterIndexed:
		text = register(text, operands[0])
		text = strings.Replace(text, "+d", fmt.Sprintf("%+d", int8(operands[1])), 1)
	case cpu.ModeRelative:
		offset := int8(operands[0])
		target := address + uint16(ins.Length()) + uint16(int16(offset))
		text = strings.Replace(text, "d8", fmt.Sprintf("%+d (0x%04X)", offset, target), 1)
	case cpu.ModeRegisterPort:
		text = register(text, operands[0])
		text = strings.Replace(text, "#p8", fmt.Sprintf("#0x%02X", operands[1]), 1)
	case cpu.ModePortRegister:
		text = strings.Replace(text, "#p8", fmt.Sprintf("#0x%02X", operands[0]), 1)
		text = register(text, operands[1])
	case cpu.ModeRegisterPacked:
		text = strings.Replace(text, "Rd", cpu.RegisterName(operands[0]>>4), 1)
		text = strings.Replace(text, "Rs", cpu.RegisterName(operands[0]), 1)
	}

	return Entry{Address: address, Bytes: bytes, Text: text}
}

// Window decodes count instructions starting at address. Decoding
// continues past undefined bytes so a listing never stalls on data.
func Window(r Reader, address uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e := Decode(r, address)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
	}
	return entries
}

// register substitutes the Rd or Rs placeholder with the register
// named by a register byte.
func register(text string, b uint8) string {
	name := cpu.RegisterName(b)
	if strings.Contains(text, "Rd") {
		return strings.Replace(text, "Rd", name, 1)
	}
	return strings.Replace(text, "Rs", name, 1)
}

func word(operands []uint8) uint16 {
	return uint16(operands[1])<<8 | uint16(operands[0])
}
