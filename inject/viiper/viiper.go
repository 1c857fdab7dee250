// Package viiper injects input through a VIIPER server: it creates a
// virtual USB keyboard and mouse on a bus and streams reports to them.
// With inject.Config.Pad set it also attaches an xbox360 gamepad.
package viiper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/remote-input/hidinject/apiclient"
	"github.com/remote-input/hidinject/inject"
	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

func init() {
	inject.Register("viiper", func(cfg inject.Config, logger *slog.Logger) (inject.Injector, error) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ViiperTimeout)
		defer cancel()
		return Open(ctx, cfg, logger)
	})
}

type Injector struct {
	client  *apiclient.Client
	logger  *slog.Logger
	timeout time.Duration

	busID   uint32
	ownBus  bool
	kbdID   string
	mouseID string
	padID   string

	kbdStream   *apiclient.DeviceStream
	mouseStream *apiclient.DeviceStream
	padStream   *apiclient.DeviceStream

	kbd   keyboardState
	mouse mouseState
}

// Open attaches a keyboard and a mouse to the VIIPER server in cfg. When
// cfg.ViiperBus is 0 a new bus is created and removed again on Close.
func Open(ctx context.Context, cfg inject.Config, logger *slog.Logger) (*Injector, error) {
	client := apiclient.NewWithConfig(cfg.ViiperAddr, &apiclient.Config{
		DialTimeout:  cfg.ViiperTimeout,
		ReadTimeout:  cfg.ViiperTimeout,
		WriteTimeout: cfg.ViiperTimeout,
		Password:     cfg.ViiperPassword,
	})
	in := &Injector{client: client, logger: logger, timeout: cfg.ViiperTimeout, busID: cfg.ViiperBus}

	ping, err := client.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.ViiperAddr, err)
	}
	logger.Info("Connected to VIIPER", "addr", cfg.ViiperAddr, "server", ping.Server, "version", ping.Version)

	if in.busID == 0 {
		bus, err := client.BusCreate(ctx, 0)
		if err != nil {
			return nil, fmt.Errorf("create bus: %w", err)
		}
		in.busID, in.ownBus = bus.BusID, true
		logger.Debug("Created bus", "busId", in.busID)
	}

	if err := in.attach(ctx); err != nil {
		_ = in.Close()
		return nil, err
	}
	if cfg.Pad {
		if err := in.attachPad(ctx); err != nil {
			_ = in.Close()
			return nil, err
		}
	}
	return in, nil
}

func (in *Injector) attach(ctx context.Context) error {
	kbd, err := in.client.DeviceAdd(ctx, in.busID, "keyboard")
	if err != nil {
		return fmt.Errorf("add keyboard: %w", err)
	}
	in.kbdID = kbd.DevId
	mouse, err := in.client.DeviceAdd(ctx, in.busID, "mouse")
	if err != nil {
		return fmt.Errorf("add mouse: %w", err)
	}
	in.mouseID = mouse.DevId

	if in.kbdStream, err = in.client.OpenStream(ctx, in.busID, in.kbdID); err != nil {
		return fmt.Errorf("open keyboard stream: %w", err)
	}
	if in.mouseStream, err = in.client.OpenStream(ctx, in.busID, in.mouseID); err != nil {
		return fmt.Errorf("open mouse stream: %w", err)
	}
	in.logger.Info("Attached virtual devices", "busId", in.busID, "keyboard", in.kbdID, "mouse", in.mouseID)
	return nil
}

func (in *Injector) attachPad(ctx context.Context) error {
	pad, err := in.client.DeviceAdd(ctx, in.busID, "xbox360")
	if err != nil {
		return fmt.Errorf("add xbox360: %w", err)
	}
	in.padID = pad.DevId
	if in.padStream, err = in.client.OpenStream(ctx, in.busID, in.padID); err != nil {
		return fmt.Errorf("open xbox360 stream: %w", err)
	}
	in.logger.Info("Attached virtual gamepad", "busId", in.busID, "xbox360", in.padID)
	return nil
}

func (in *Injector) sendMouse() error {
	err := in.mouseStream.WriteBinary(&in.mouse)
	in.mouse.dx, in.mouse.dy, in.mouse.wheel = 0, 0, 0
	return err
}

// MoveRelative sends as many reports as needed to cover moves larger than
// one int16 delta.
func (in *Injector) MoveRelative(dx, dy int) error {
	for {
		in.mouse.dx, in.mouse.dy = step(dx), step(dy)
		dx -= int(in.mouse.dx)
		dy -= int(in.mouse.dy)
		if err := in.sendMouse(); err != nil {
			return err
		}
		if dx == 0 && dy == 0 {
			return nil
		}
	}
}

func (in *Injector) SetButton(b protocol.Button, pressed bool) error {
	bit := buttonBit(b)
	if bit == 0 {
		return fmt.Errorf("unsupported button %s", b)
	}
	if pressed {
		in.mouse.buttons |= bit
	} else {
		in.mouse.buttons &^= bit
	}
	return in.sendMouse()
}

func (in *Injector) Scroll(delta int) error {
	in.mouse.wheel = step(delta)
	return in.sendMouse()
}

func (in *Injector) SetKey(u keymap.Usage, pressed bool) error {
	if u == keymap.UsageNone {
		return errors.New("no usage")
	}
	in.kbd.set(u, pressed)
	return in.kbdStream.WriteBinary(&in.kbd)
}

// SetPad streams one xbox360 report. Pad state is independent of the
// keyboard and mouse, so it may run concurrently with them.
func (in *Injector) SetPad(p protocol.Pad) error {
	if in.padStream == nil {
		return errors.New("gamepad not attached")
	}
	st := newPadState(p)
	return in.padStream.WriteBinary(&st)
}

// Close releases held keys, detaches the devices and removes the bus if
// Open created it.
func (in *Injector) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), in.timeout)
	defer cancel()

	var errs []error
	if in.kbdStream != nil {
		in.kbd = keyboardState{}
		_ = in.kbdStream.WriteBinary(&in.kbd)
		errs = append(errs, in.kbdStream.Close())
	}
	if in.mouseStream != nil {
		in.mouse = mouseState{}
		_ = in.mouseStream.WriteBinary(&in.mouse)
		errs = append(errs, in.mouseStream.Close())
	}
	if in.padStream != nil {
		_ = in.padStream.WriteBinary(&padState{})
		errs = append(errs, in.padStream.Close())
	}
	if in.ownBus {
		if _, err := in.client.BusRemove(ctx, in.busID); err != nil {
			errs = append(errs, fmt.Errorf("remove bus %d: %w", in.busID, err))
		}
		return errors.Join(errs...)
	}
	for _, id := range []string{in.kbdID, in.mouseID, in.padID} {
		if id == "" {
			continue
		}
		if _, err := in.client.DeviceRemove(ctx, in.busID, id); err != nil {
			errs = append(errs, fmt.Errorf("remove device %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
