// Package monitor implements an interactive text debugger for a
// Micro8 machine. It reads commands from a stream and writes listings
// back, so it works the same over a terminal, a pipe or a test
// buffer.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/micro8/micro8/internal/cpu"
	"github.com/micro8/micro8/internal/disasm"
	"github.com/micro8/micro8/internal/micro8"
	"github.com/micro8/micro8/pkg/utils"
)

// Monitor drives a machine from a command stream.
type Monitor struct {
	machine *micro8.Machine
	in      *bufio.Scanner
	out     io.Writer

	breakpoints map[uint16]bool
}

// New returns a monitor reading commands from in and writing to out.
func New(machine *micro8.Machine, in io.Reader, out io.Writer) *Monitor {
	return &Monitor{
		machine:     machine,
		in:          bufio.NewScanner(in),
		out:         out,
		breakpoints: map[uint16]bool{},
	}
}

// Run reads and executes commands until quit or the end of the input
// stream.
func (m *Monitor) Run() error {
	m.printf("micro8 monitor, h for help\n")
	m.status()
	for {
		m.printf("> ")
		if !m.in.Scan() {
			m.printf("\n")
			return m.in.Err()
		}
		fields := strings.Fields(m.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		if cmd == "q" || cmd == "quit" {
			return nil
		}
		m.dispatch(cmd, args)
	}
}

func (m *Monitor) dispatch(cmd string, args []string) {
	switch cmd {
	case "s", "step":
		m.step(args)
	case "c", "continue", "run":
		m.cont(args)
	case "b", "break":
		m.breakCmd(args)
	case "load":
		m.load(args)
	case "d", "regs":
		m.regs()
	case "m", "mem":
		m.dump(args)
	case "u", "dis":
		m.list(args)
	case "stack":
		m.stack()
	case "i", "int":
		m.machine.CPU.RaiseInterrupt()
		m.printf("interrupt raised\n")
	case "reset":
		m.machine.Reset()
		m.status()
	case "h", "help":
		m.help()
	default:
		m.printf("unknown command %q, h for help\n", cmd)
	}
}

// step executes one instruction, or the count given as an argument.
func (m *Monitor) step(args []string) {
	n := 1
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil && v > 0 {
			n = v
		}
	}
	for i := 0; i < n; i++ {
		result, err := m.machine.Step()
		if result == cpu.Faulted {
			m.printf("fault: %v\n", err)
			return
		}
		if result == cpu.Halted {
			m.printf("halted\n")
			break
		}
	}
	m.status()
}

// cont runs until the CPU halts, faults, lands on a breakpoint or
// spends the optional cycle budget. A breakpoint on the current
// address does not fire until execution comes back around to it.
func (m *Monitor) cont(args []string) {
	var budget uint64
	if len(args) > 0 {
		if v, err := strconv.ParseUint(args[0], 10, 64); err == nil {
			budget = v
		}
	}
	start := m.machine.CPU.Cycles()
	for {
		result, err := m.machine.Step()
		switch result {
		case cpu.Faulted:
			m.printf("fault: %v\n", err)
			return
		case cpu.Halted:
			m.printf("halted at 0x%04X\n", m.machine.CPU.PC)
			return
		}
		if m.breakpoints[m.machine.CPU.PC] {
			m.printf("breakpoint at 0x%04X\n", m.machine.CPU.PC)
			m.status()
			return
		}
		if budget > 0 && m.machine.CPU.Cycles()-start >= budget {
			m.printf("%d cycles spent, stopped at 0x%04X\n", m.machine.CPU.Cycles()-start, m.machine.CPU.PC)
			m.status()
			return
		}
	}
}

// load reads a program file into memory at the boot address, or at the
// address given.
func (m *Monitor) load(args []string) {
	if len(args) == 0 {
		m.printf("usage: load <file> [addr]\n")
		return
	}
	data, err := utils.LoadFile(args[0])
	if err != nil {
		m.printf("load: %v\n", err)
		return
	}
	if len(args) > 1 {
		address, ok := m.parseAddress(args[1])
		if !ok {
			return
		}
		if err := m.machine.Memory.Load(address, data); err != nil {
			m.printf("load: %v\n", err)
			return
		}
		m.printf("loaded %d bytes at 0x%04X\n", len(data), address)
		return
	}
	if err := m.machine.LoadImage(data); err != nil {
		m.printf("load: %v\n", err)
		return
	}
	m.printf("loaded %d bytes\n", len(data))
}

// breakCmd toggles a breakpoint, or lists them when called with no
// argument.
func (m *Monitor) breakCmd(args []string) {
	if len(args) == 0 {
		if len(m.breakpoints) == 0 {
			m.printf("no breakpoints\n")
			return
		}
		addresses := make([]int, 0, len(m.breakpoints))
		for address := range m.breakpoints {
			addresses = append(addresses, int(address))
		}
		sort.Ints(addresses)
		for _, address := range addresses {
			m.printf("breakpoint at 0x%04X\n", address)
		}
		return
	}
	address, ok := m.parseAddress(args[0])
	if !ok {
		return
	}
	if m.breakpoints[address] {
		delete(m.breakpoints, address)
		m.printf("breakpoint cleared at 0x%04X\n", address)
	} else {
		m.breakpoints[address] = true
		m.printf("breakpoint set at 0x%04X\n", address)
	}
}

func (m *Monitor) regs() {
	s := m.machine.Snapshot()
	m.printf("PC=%04X SP=%04X F=[%s] IE=%t PEND=%t\n", s.PC, s.SP, flagString(s), s.IE, s.InterruptPending)
	m.printf("R0=%02X R1=%02X R2=%02X R3=%02X R4=%02X R5=%02X R6=%02X R7=%02X\n",
		s.R[0], s.R[1], s.R[2], s.R[3], s.R[4], s.R[5], s.R[6], s.R[7])
	m.printf("BC=%04X DE=%04X HL=%04X cycles=%d instructions=%d\n", s.BC, s.DE, s.HL, s.Cycles, s.Instructions)
	if s.Faulted {
		m.printf("fault: %s\n", s.Fault)
	} else if s.Halted {
		m.printf("halted\n")
	}
}

// dump prints a hex and ASCII view of memory.
func (m *Monitor) dump(args []string) {
	if len(args) == 0 {
		m.printf("usage: m <address> [bytes]\n")
		return
	}
	address, ok := m.parseAddress(args[0])
	if !ok {
		return
	}
	count := 64
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil && v > 0 {
			count = v
		}
	}
	window := m.machine.ReadMemory(address, count)
	for offset := 0; offset < len(window); offset += 16 {
		line := window[offset:min(offset+16, len(window))]
		var hex, ascii strings.Builder
		for _, b := range line {
			fmt.Fprintf(&hex, "%02X ", b)
			if b >= 0x20 && b < 0x7F {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}
		m.printf("%04X  %-48s |%s|\n", address+uint16(offset), hex.String(), ascii.String())
	}
}

// list disassembles from the given address, or from PC.
func (m *Monitor) list(args []string) {
	address := m.machine.CPU.PC
	count := 8
	if len(args) > 0 {
		a, ok := m.parseAddress(args[0])
		if !ok {
			return
		}
		address = a
	}
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil && v > 0 {
			count = v
		}
	}
	for _, e := range disasm.Window(m.machine.Memory, address, count) {
		marker := " "
		if e.Address == m.machine.CPU.PC {
			marker = ">"
		}
		if m.breakpoints[e.Address] {
			marker = "*"
		}
		m.printf("%s %s\n", marker, e)
	}
}

// stack prints the last pushed bytes, starting at SP.
func (m *Monitor) stack() {
	sp := m.machine.CPU.SP
	m.printf("SP=%04X\n", sp)
	for i := uint16(0); i < 8; i++ {
		address := sp + i
		m.printf("%04X  %02X\n", address, m.machine.Memory.Read(address))
	}
}

func (m *Monitor) status() {
	m.printf("%s\n", disasm.Decode(m.machine.Memory, m.machine.CPU.PC))
}

func (m *Monitor) help() {
	m.printf(`s [n]            step one instruction, or n
c [cycles]       run until halt, fault, breakpoint or cycle budget
b [addr]         toggle a breakpoint, or list them
load <file> [a]  load a program image, at the boot address or a
d                dump registers and flags
m <addr> [n]     dump memory, default 64 bytes
u [addr] [n]     disassemble, default 8 instructions from PC
stack            dump the top of the stack
i                raise an interrupt
reset            reset the CPU, memory stays loaded
q                quit
addresses are hex, 0x prefix optional, symbols resolve if loaded
`)
}

// parseAddress resolves a symbol or parses a hex address. It reports
// its own errors.
func (m *Monitor) parseAddress(s string) (uint16, bool) {
	if address, ok := m.machine.Symbols()[s]; ok {
		return address, true
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		m.printf("bad address %q\n", s)
		return 0, false
	}
	return uint16(v), true
}

func (m *Monitor) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

func flagString(s cpu.Snapshot) string {
	flags := []byte{'-', '-', '-', '-'}
	if s.Sign {
		flags[0] = 'S'
	}
	if s.Zero {
		flags[1] = 'Z'
	}
	if s.Overflow {
		flags[2] = 'O'
	}
	if s.Carry {
		flags[3] = 'C'
	}
	return string(flags)
}
