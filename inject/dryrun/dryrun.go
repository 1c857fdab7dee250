// Package dryrun provides an injection backend that only logs what it would
// have injected. Useful on headless hosts and for checking a sender.
package dryrun

import (
	"fmt"
	"log/slog"

	"github.com/remote-input/hidinject/inject"
	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

func init() {
	inject.Register("dryrun", func(cfg inject.Config, logger *slog.Logger) (inject.Injector, error) {
		return New(logger), nil
	})
}

type Injector struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Injector {
	return &Injector{logger: logger}
}

func (d *Injector) MoveRelative(dx, dy int) error {
	d.logger.Info("move", "dx", dx, "dy", dy)
	return nil
}

func (d *Injector) SetButton(b protocol.Button, pressed bool) error {
	d.logger.Info("button", "button", b.String(), "pressed", pressed)
	return nil
}

func (d *Injector) Scroll(delta int) error {
	d.logger.Info("scroll", "delta", delta)
	return nil
}

func (d *Injector) SetKey(u keymap.Usage, pressed bool) error {
	d.logger.Info("key", "key", keymap.Name(u), "usage", u.String(), "pressed", pressed)
	return nil
}

func (d *Injector) SetPad(p protocol.Pad) error {
	d.logger.Info("pad",
		"lx", p.LX, "ly", p.LY, "rx", p.RX, "ry", p.RY,
		"lt", p.LT, "rt", p.RT, "buttons", fmt.Sprintf("%#x", uint32(p.Buttons)))
	return nil
}

func (d *Injector) Close() error { return nil }
