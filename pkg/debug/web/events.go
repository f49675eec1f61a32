package web

import (
	"github.com/micro8/micro8/internal/cpu"
	"github.com/micro8/micro8/internal/disasm"
)

// Op names a command sent by a debugger client.
type Op string

const (
	OpStep      Op = "step"
	OpRun       Op = "run"
	OpPause     Op = "pause"
	OpReset     Op = "reset"
	OpInterrupt Op = "interrupt"
	OpSync      Op = "sync"
	OpMemory    Op = "memory"
	OpDisasm    Op = "disasm"
)

// Command is a request from a debugger client. Address and Count are
// only meaningful for the ops that read memory.
type Command struct {
	Op      Op     `json:"op"`
	Address uint16 `json:"address,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// Frame type tags.
const (
	FrameSnapshot = "snapshot"
	FrameMemory   = "memory"
	FrameDisasm   = "disasm"
	FrameError    = "error"
)

// Frame is a message pushed to debugger clients. Exactly one payload
// field is set, named by Type.
type Frame struct {
	Type     string         `json:"type"`
	Snapshot *cpu.Snapshot  `json:"snapshot,omitempty"`
	Address  uint16         `json:"address,omitempty"`
	Memory   []uint8        `json:"memory,omitempty"`
	Disasm   []disasm.Entry `json:"disasm,omitempty"`
	Error    string         `json:"error,omitempty"`
}
