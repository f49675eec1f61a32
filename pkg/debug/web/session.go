// Package web exposes a Micro8 machine as a websocket debugger.
// Clients send JSON commands and receive JSON frames; the machine
// itself only ever runs on the session goroutine.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cespare/xxhash"
	"github.com/micro8/micro8/internal/cpu"
	"github.com/micro8/micro8/internal/disasm"
	"github.com/micro8/micro8/internal/micro8"
	"github.com/micro8/micro8/pkg/log"
)

// sliceCycles is the execution budget per tick while running, enough
// to keep a busy program visibly moving without starving commands.
const sliceCycles = 50000

// session owns the machine and serializes all access to it.
type session struct {
	machine  *micro8.Machine
	hub      *hub
	commands chan Command
	log      log.Logger

	running      bool
	lastSnapshot uint64
}

func (s *session) run() {
	t := time.NewTicker(time.Second / 60)
	defer t.Stop()

	for {
		select {
		case cmd := <-s.commands:
			s.handle(cmd)
			s.broadcastSnapshot()
		case <-t.C:
			if s.running {
				s.slice()
			}
			s.broadcastSnapshot()
		}
	}
}

func (s *session) handle(cmd Command) {
	switch cmd.Op {
	case OpStep:
		n := cmd.Count
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			result, err := s.machine.Step()
			if result != cpu.Continued {
				if err != nil {
					s.sendError(err)
				}
				break
			}
		}
	case OpRun:
		s.running = true
	case OpPause:
		s.running = false
	case OpReset:
		s.running = false
		s.machine.Reset()
	case OpInterrupt:
		s.machine.CPU.RaiseInterrupt()
	case OpSync:
		// defeat the dedupe so the next broadcast always goes out
		s.lastSnapshot = 0
	case OpMemory:
		count := clamp(cmd.Count, 256, 1024)
		s.send(Frame{
			Type:    FrameMemory,
			Address: cmd.Address,
			Memory:  s.machine.ReadMemory(cmd.Address, count),
		})
	case OpDisasm:
		// address zero follows PC
		address := cmd.Address
		if address == 0 {
			address = s.machine.CPU.PC
		}
		count := clamp(cmd.Count, 16, 256)
		s.send(Frame{
			Type:    FrameDisasm,
			Address: address,
			Disasm:  disasm.Window(s.machine.Memory, address, count),
		})
	default:
		s.sendError(fmt.Errorf("unknown op %q", cmd.Op))
	}
}

// slice runs one bounded burst of execution. Faults stop the run and
// go out as error frames; a halt just stops the run.
func (s *session) slice() {
	if _, err := s.machine.Run(context.Background(), sliceCycles); err != nil {
		s.running = false
		s.sendError(err)
		return
	}
	if s.machine.CPU.Halted() {
		s.running = false
	}
}

// broadcastSnapshot pushes the CPU state to all clients, skipping the
// send when nothing changed since the last one.
func (s *session) broadcastSnapshot() {
	snapshot := s.machine.Snapshot()
	data, err := json.Marshal(Frame{Type: FrameSnapshot, Snapshot: &snapshot})
	if err != nil {
		s.log.Errorf("marshal snapshot: %v", err)
		return
	}

	hash := xxhash.Sum64(data)
	if hash == s.lastSnapshot {
		return
	}
	s.lastSnapshot = hash
	s.hub.broadcast <- data
}

func (s *session) send(f Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		s.log.Errorf("marshal frame: %v", err)
		return
	}
	s.hub.broadcast <- data
}

func (s *session) sendError(err error) {
	s.send(Frame{Type: FrameError, Error: err.Error()})
}

func clamp(n, fallback, max int) int {
	if n <= 0 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}

// Serve exposes the machine as a websocket debugger on addr and
// blocks serving connections. Clients connect to /ws.
func Serve(machine *micro8.Machine, addr string, l log.Logger) error {
	h := newHub(l)
	s := &session{
		machine:  machine,
		hub:      h,
		commands: make(chan Command, 64),
		log:      l,
	}

	go h.run()
	go s.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			l.Errorf("upgrade %s: %v", r.RemoteAddr, err)
			return
		}

		c := &client{hub: h, conn: conn, send: make(chan []byte, 256), commands: s.commands}
		h.register <- c
		go c.readPump()
		go c.writePump()

		// catch the new client up immediately
		s.commands <- Command{Op: OpSync}
		s.commands <- Command{Op: OpDisasm}
	})

	l.Infof("debug server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
