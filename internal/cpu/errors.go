package cpu

import "errors"

// Fault causes. Step wraps these with the fault location so callers
// can match with errors.Is.
var (
	// ErrInvalidOpcode is returned when the CPU fetches an opcode
	// with no defined instruction.
	ErrInvalidOpcode = errors.New("cpu: invalid opcode")
	// ErrStackOverflow is returned when a push would move SP below
	// the configured stack floor.
	ErrStackOverflow = errors.New("cpu: stack overflow")
	// ErrStackUnderflow is returned when a pop would move SP above
	// the configured stack ceiling.
	ErrStackUnderflow = errors.New("cpu: stack underflow")
	// ErrMemoryRange is reserved for Bus implementations that restrict
	// the address space. The flat 64KiB memory never produces it.
	ErrMemoryRange = errors.New("cpu: memory access out of range")
)
