// Package injecttest provides an Injector that records calls, for tests.
package injecttest

import (
	"fmt"
	"sync"

	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

// Call is one recorded Injector invocation.
type Call struct {
	Op      string // "move", "button", "scroll", "key", "pad"
	DX, DY  int
	Button  protocol.Button
	Delta   int
	Usage   keymap.Usage
	Pressed bool
	Pad     protocol.Pad
}

func (c Call) String() string {
	switch c.Op {
	case "move":
		return fmt.Sprintf("move(%d,%d)", c.DX, c.DY)
	case "button":
		return fmt.Sprintf("button(%s,%t)", c.Button, c.Pressed)
	case "scroll":
		return fmt.Sprintf("scroll(%d)", c.Delta)
	case "key":
		return fmt.Sprintf("key(%s,%t)", c.Usage, c.Pressed)
	case "pad":
		return c.Pad.String()
	}
	return c.Op
}

// Move, Button, Scroll, Key and Pad build expected calls.
func Move(dx, dy int) Call { return Call{Op: "move", DX: dx, DY: dy} }
func Button(b protocol.Button, pressed bool) Call {
	return Call{Op: "button", Button: b, Pressed: pressed}
}
func Scroll(delta int) Call                 { return Call{Op: "scroll", Delta: delta} }
func Key(u keymap.Usage, pressed bool) Call { return Call{Op: "key", Usage: u, Pressed: pressed} }
func Pad(p protocol.Pad) Call               { return Call{Op: "pad", Pad: p} }

// Recorder records every call. If Err is set it is returned from each call
// after recording; if Panic is set the call panics with it.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	closed bool

	Err   error
	Panic any
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) record(c Call) error {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	err, p := r.Err, r.Panic
	r.mu.Unlock()
	if p != nil {
		panic(p)
	}
	return err
}

func (r *Recorder) MoveRelative(dx, dy int) error { return r.record(Move(dx, dy)) }
func (r *Recorder) SetButton(b protocol.Button, pressed bool) error {
	return r.record(Button(b, pressed))
}
func (r *Recorder) Scroll(delta int) error { return r.record(Scroll(delta)) }
func (r *Recorder) SetKey(u keymap.Usage, pressed bool) error {
	return r.record(Key(u, pressed))
}

func (r *Recorder) SetPad(p protocol.Pad) error { return r.record(Pad(p)) }

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
