package micro8

import (
	"github.com/micro8/micro8/internal/cpu"
	"github.com/micro8/micro8/pkg/log"
)

// Opt configures a Machine at construction time.
type Opt func(m *Machine)

// WithLogger replaces the default logger.
func WithLogger(l log.Logger) Opt {
	return func(m *Machine) {
		m.log = l
	}
}

// Debug replaces the default logger with one that also emits debug
// output.
func Debug() Opt {
	return func(m *Machine) {
		m.log = log.NewDebug()
	}
}

// WithPorts attaches a port implementation such as a latch bank or a
// scripted buffer.
func WithPorts(p cpu.Ports) Opt {
	return func(m *Machine) {
		m.ports = p
	}
}

// WithStackGuard faults stack operations that would move SP outside
// [low, high].
func WithStackGuard(low, high uint16) Opt {
	return func(m *Machine) {
		m.guard = true
		m.guardLow = low
		m.guardHigh = high
	}
}

// WithBootAddress overrides where execution and image loading start.
func WithBootAddress(pc uint16) Opt {
	return func(m *Machine) {
		m.bootPC = pc
	}
}

// WithStackPointer overrides the initial stack pointer.
func WithStackPointer(sp uint16) Opt {
	return func(m *Machine) {
		m.bootSP = sp
	}
}

// WithSymbols attaches a symbol table for hosts that resolve names to
// addresses.
func WithSymbols(symbols map[string]uint16) Opt {
	return func(m *Machine) {
		m.symbols = symbols
	}
}
