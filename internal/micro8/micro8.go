// Package micro8 wires the CPU, memory and I/O ports into a complete
// machine and drives execution on behalf of a host.
package micro8

import (
	"context"

	"github.com/cespare/xxhash"
	"github.com/micro8/micro8/internal/cpu"
	"github.com/micro8/micro8/internal/memory"
	"github.com/micro8/micro8/pkg/log"
)

// Machine is a complete Micro8 system. The CPU and Memory fields are
// exported for hosts that need direct access; all execution still
// goes through a single goroutine at a time.
type Machine struct {
	CPU    *cpu.CPU
	Memory *memory.Memory

	log     log.Logger
	ports   cpu.Ports
	symbols map[string]uint16

	bootPC uint16
	bootSP uint16

	guard     bool
	guardLow  uint16
	guardHigh uint16
}

// New returns a machine with zeroed memory and the CPU in its
// power-on state. With no ports attached, IN reads zero and OUT
// discards.
func New(opts ...Opt) *Machine {
	m := &Machine{
		Memory: memory.New(),
		log:    log.New(),
		bootPC: cpu.DefaultPC,
		bootSP: cpu.DefaultSP,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.CPU = cpu.NewCPU(m.Memory, m.ports)
	if m.guard {
		m.CPU.GuardStack(m.guardLow, m.guardHigh)
	}
	m.CPU.Reset(m.bootPC, m.bootSP)
	return m
}

// LoadImage copies a program image into memory at the boot address.
func (m *Machine) LoadImage(image []byte) error {
	if err := m.Memory.Load(m.bootPC, image); err != nil {
		return err
	}
	m.log.Infof("loaded %d byte image %016x at 0x%04X", len(image), xxhash.Sum64(image), m.bootPC)
	return nil
}

// Reset returns the CPU to its power-on state. Memory is left alone
// so the loaded program restarts from the boot address.
func (m *Machine) Reset() {
	m.CPU.Reset(m.bootPC, m.bootSP)
	m.log.Debugf("reset to PC=0x%04X SP=0x%04X", m.bootPC, m.bootSP)
}

// Step executes a single instruction.
func (m *Machine) Step() (cpu.StepResult, error) {
	return m.CPU.Step()
}

// Run executes instructions until the CPU halts, faults, the context
// is cancelled or the cycle budget is spent. A budget of zero means
// no limit; the budget is checked at instruction boundaries, so the
// last instruction may carry the count past it. Run returns the
// number of cycles executed.
func (m *Machine) Run(ctx context.Context, maxCycles uint64) (uint64, error) {
	start := m.CPU.Cycles()
	for steps := uint64(0); ; steps++ {
		if steps&0x3FF == 0 {
			select {
			case <-ctx.Done():
				return m.CPU.Cycles() - start, ctx.Err()
			default:
			}
		}
		result, err := m.CPU.Step()
		switch result {
		case cpu.Faulted:
			m.log.Errorf("fault at 0x%04X: %v", m.CPU.PC, err)
			return m.CPU.Cycles() - start, err
		case cpu.Halted:
			return m.CPU.Cycles() - start, nil
		}
		if maxCycles > 0 && m.CPU.Cycles()-start >= maxCycles {
			return m.CPU.Cycles() - start, nil
		}
	}
}

// Snapshot captures the CPU state between steps.
func (m *Machine) Snapshot() cpu.Snapshot {
	return m.CPU.Snapshot()
}

// ReadMemory returns a copy of length bytes of memory starting at
// address, wrapping at the top of the address space.
func (m *Machine) ReadMemory(address uint16, length int) []byte {
	return m.Memory.Window(address, length)
}

// Symbols returns the symbol table the machine was created with, or
// nil.
func (m *Machine) Symbols() map[string]uint16 {
	return m.symbols
}
