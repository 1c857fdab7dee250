// Package dispatch turns received datagrams into injector calls.
package dispatch

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/remote-input/hidinject/inject"
	"github.com/remote-input/hidinject/protocol"
)

// Outcome is the result of dispatching one datagram.
type Outcome int

const (
	// Ignored means the datagram was not a valid, mapped packet.
	Ignored Outcome = iota
	// Injected means exactly one injector call succeeded.
	Injected
	// Failed means the injector returned an error or panicked.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Injected:
		return "injected"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Stats counts dispatched datagrams by outcome.
type Stats struct {
	Received uint64
	Ignored  uint64
	Injected uint64
	Failed   uint64
}

// Dispatcher decodes packets and drives an Injector. Dispatch is meant to
// be called from one goroutine; Stats may be read from any.
type Dispatcher struct {
	decode func([]byte) (protocol.Event, error)
	inj    inject.Injector
	pad    inject.PadInjector
	logger *slog.Logger

	received atomic.Uint64
	ignored  atomic.Uint64
	injected atomic.Uint64
	failed   atomic.Uint64
}

// New returns a dispatcher for keyboard and mouse packets.
func New(inj inject.Injector, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{decode: protocol.Decode, inj: inj, logger: logger}
}

// NewPad returns a dispatcher for gamepad packets. Every other opcode is
// ignored.
func NewPad(pad inject.PadInjector, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{decode: protocol.DecodePad, pad: pad, logger: logger}
}

// Dispatch decodes buf and performs at most one injector call. It never
// panics and reports every failure through the returned Outcome.
func (d *Dispatcher) Dispatch(buf []byte) Outcome {
	d.received.Add(1)
	ev, err := d.decode(buf)
	if err != nil {
		d.ignored.Add(1)
		d.logger.Debug("packet ignored", "error", err, "len", len(buf))
		return Ignored
	}
	if err := d.inject(ev); err != nil {
		d.failed.Add(1)
		d.logger.Error("inject error", "event", ev, "error", err)
		return Failed
	}
	d.injected.Add(1)
	return Injected
}

func (d *Dispatcher) inject(ev protocol.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("injector panic: %v", r)
		}
	}()
	switch e := ev.(type) {
	case protocol.Pad:
		return d.pad.SetPad(e)
	case protocol.PointerMove:
		return d.inj.MoveRelative(int(e.DX), int(e.DY))
	case protocol.ButtonDown:
		return d.inj.SetButton(e.Button, true)
	case protocol.ButtonUp:
		return d.inj.SetButton(e.Button, false)
	case protocol.Wheel:
		return d.inj.Scroll(int(e.Delta))
	case protocol.KeyDown:
		return d.inj.SetKey(e.Usage, true)
	case protocol.KeyUp:
		return d.inj.SetKey(e.Usage, false)
	}
	return fmt.Errorf("unhandled event %T", ev)
}

// Stats returns a snapshot of the counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Received: d.received.Load(),
		Ignored:  d.ignored.Load(),
		Injected: d.injected.Load(),
		Failed:   d.failed.Load(),
	}
}
