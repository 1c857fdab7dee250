// Package robotgo injects input into the local desktop session through
// github.com/go-vgo/robotgo.
package robotgo

import (
	"fmt"
	"log/slog"

	"github.com/go-vgo/robotgo"

	"github.com/remote-input/hidinject/inject"
	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

func init() {
	inject.Register("robotgo", func(cfg inject.Config, logger *slog.Logger) (inject.Injector, error) {
		return New(logger), nil
	})
}

// Injector drives robotgo. Pointer moves are relative to the current cursor
// position.
type Injector struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Injector {
	return &Injector{logger: logger}
}

func (r *Injector) MoveRelative(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}

func (r *Injector) SetButton(b protocol.Button, pressed bool) error {
	name, ok := buttonNames[b]
	if !ok {
		return fmt.Errorf("robotgo: no mouse button for %s", b)
	}
	return robotgo.Toggle(name, direction(pressed))
}

func (r *Injector) Scroll(delta int) error {
	robotgo.Scroll(0, delta)
	return nil
}

func (r *Injector) SetKey(u keymap.Usage, pressed bool) error {
	name, ok := KeyName(u)
	if !ok {
		return fmt.Errorf("robotgo: no key for usage %s (%s)", u, keymap.Name(u))
	}
	return robotgo.KeyToggle(name, direction(pressed))
}

func (r *Injector) Close() error { return nil }

func direction(pressed bool) string {
	if pressed {
		return "down"
	}
	return "up"
}
