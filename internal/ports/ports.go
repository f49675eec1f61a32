// Package ports provides I/O port backends for the IN and OUT
// instructions.
package ports

// Latch is a bank of 256 byte-wide latches. OUT stores into a latch
// and IN reads whatever was stored there last, the behaviour of a
// machine with nothing wired to its ports.
type Latch [256]uint8

// NewLatch returns a zeroed latch bank.
func NewLatch() *Latch {
	return &Latch{}
}

// In returns the last value written to the port.
func (l *Latch) In(port uint8) uint8 {
	return l[port]
}

// Out stores value into the port's latch.
func (l *Latch) Out(port uint8, value uint8) {
	l[port] = value
}

// Buffer queues input bytes per port and keeps everything written, so
// a host can feed a program input up front and collect its output
// after the run. Reads from an empty queue return zero.
type Buffer struct {
	in  map[uint8][]uint8
	out map[uint8][]uint8
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		in:  make(map[uint8][]uint8),
		out: make(map[uint8][]uint8),
	}
}

// Feed queues input bytes on a port, consumed in order by IN.
func (b *Buffer) Feed(port uint8, data ...uint8) {
	b.in[port] = append(b.in[port], data...)
}

// In pops the next queued byte from the port.
func (b *Buffer) In(port uint8) uint8 {
	queue := b.in[port]
	if len(queue) == 0 {
		return 0
	}
	b.in[port] = queue[1:]
	return queue[0]
}

// Out appends value to the port's output log.
func (b *Buffer) Out(port uint8, value uint8) {
	b.out[port] = append(b.out[port], value)
}

// Output returns a copy of everything written to the port.
func (b *Buffer) Output(port uint8) []uint8 {
	out := b.out[port]
	if len(out) == 0 {
		return nil
	}
	return append([]uint8(nil), out...)
}
