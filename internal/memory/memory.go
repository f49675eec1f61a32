// Package memory provides the flat 64KiB address space of the
// machine.
package memory

import (
	"errors"
	"fmt"
)

// Size is the number of addressable bytes.
const Size = 0x10000

// ErrImageTooLarge is returned by Load when an image does not fit
// between its origin and the end of memory.
var ErrImageTooLarge = errors.New("memory: image too large")

// Memory is a flat byte-addressable space with no banking or
// protection. Every address reads and writes alike.
type Memory struct {
	data [Size]uint8
}

// New returns zeroed memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the value at the given address.
func (m *Memory) Read(address uint16) uint8 {
	return m.data[address]
}

// Write writes the value to the given address.
func (m *Memory) Write(address uint16, value uint8) {
	m.data[address] = value
}

// Load copies an image into memory starting at origin. Images do not
// wrap; one that runs past the end of memory is rejected.
func (m *Memory) Load(origin uint16, image []byte) error {
	if int(origin)+len(image) > Size {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrImageTooLarge, len(image), origin)
	}
	copy(m.data[origin:], image)
	return nil
}

// Window copies length bytes starting at address, wrapping around the
// end of the address space.
func (m *Memory) Window(address uint16, length int) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = m.data[address+uint16(i)]
	}
	return out
}

// Clear zeroes all of memory.
func (m *Memory) Clear() {
	m.data = [Size]uint8{}
}
