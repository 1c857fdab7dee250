package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/remote-input/hidinject/internal/log"
	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

// Send groups the client subcommands that emit input packets.
type Send struct {
	Move        SendMove        `cmd:"" help:"Move the pointer by DX DY (use -- before negative values)"`
	ButtonDown  SendButtonDown  `cmd:"" name:"button-down" help:"Press a pointer button (left, middle, right)"`
	ButtonUp    SendButtonUp    `cmd:"" name:"button-up" help:"Release a pointer button (left, middle, right)"`
	Wheel       SendWheel       `cmd:"" help:"Turn the scroll wheel"`
	KeyDown     SendKeyDown     `cmd:"" name:"key-down" help:"Press a key by name"`
	KeyUp       SendKeyUp       `cmd:"" name:"key-up" help:"Release a key by name"`
	Tap         SendTap         `cmd:"" help:"Press and release a key"`
	Type        SendType        `cmd:"" help:"Type ASCII text using a US layout"`
	Interactive SendInteractive `cmd:"" help:"Forward terminal keystrokes until Ctrl-C"`
	Pad         SendPad         `cmd:"" help:"Send one gamepad state to the gamepad listener"`
}

// Target is the receiver a send subcommand writes to.
type Target struct {
	Addr  string        `help:"Receiver UDP address" default:"127.0.0.1:9999" env:"HIDINJECT_SEND_ADDR"`
	Delay time.Duration `help:"Pause between consecutive packets" default:"5ms" env:"HIDINJECT_SEND_DELAY"`
}

func (t Target) dial() (net.Conn, error) {
	conn, err := net.Dial("udp", t.Addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", t.Addr, err)
	}
	return conn, nil
}

// send encodes and writes each event as one datagram.
func (t Target) send(logger *slog.Logger, rawLogger log.RawLogger, events ...protocol.Event) error {
	conn, err := t.dial()
	if err != nil {
		return err
	}
	defer conn.Close()
	return writeEvents(conn, t.Delay, logger, rawLogger, events...)
}

func writeEvents(conn net.Conn, delay time.Duration, logger *slog.Logger, rawLogger log.RawLogger, events ...protocol.Event) error {
	for i, ev := range events {
		b, err := protocol.Encode(ev)
		if err != nil {
			return fmt.Errorf("encode %v: %w", ev, err)
		}
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}
		if _, err := conn.Write(b); err != nil {
			return fmt.Errorf("send %v: %w", ev, err)
		}
		rawLogger.Log(false, conn.RemoteAddr(), b)
		logger.Debug("Sent", "event", ev)
	}
	return nil
}

// keyEvent validates name against the key vocabulary.
func keyEvent(name string, down bool) (protocol.Event, error) {
	if !keymap.IsRecognized(name) {
		return nil, fmt.Errorf("unknown key %q (see 'hidinject keys')", name)
	}
	if down {
		return protocol.KeyDown{Code: name}, nil
	}
	return protocol.KeyUp{Code: name}, nil
}

// tapEvents presses and releases name, wrapped in ShiftLeft when shift is set.
func tapEvents(name string, shift bool) []protocol.Event {
	evs := []protocol.Event{protocol.KeyDown{Code: name}, protocol.KeyUp{Code: name}}
	if shift {
		evs = append([]protocol.Event{protocol.KeyDown{Code: "ShiftLeft"}}, evs...)
		evs = append(evs, protocol.KeyUp{Code: "ShiftLeft"})
	}
	return evs
}

// typeEvents converts ASCII text into key taps.
func typeEvents(text string) ([]protocol.Event, error) {
	var evs []protocol.Event
	for i := 0; i < len(text); i++ {
		name, shift, ok := keymap.CharName(text[i])
		if !ok {
			return nil, fmt.Errorf("cannot type byte 0x%02x at offset %d", text[i], i)
		}
		evs = append(evs, tapEvents(name, shift)...)
	}
	return evs, nil
}

type SendMove struct {
	Target `embed:""`
	DX     int16 `arg:"" name:"dx" help:"Horizontal delta in pixels"`
	DY     int16 `arg:"" name:"dy" help:"Vertical delta in pixels"`
}

func (c *SendMove) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return c.send(logger, rawLogger, protocol.PointerMove{DX: c.DX, DY: c.DY})
}

type SendButtonDown struct {
	Target `embed:""`
	Button string `arg:"" help:"left, middle or right"`
}

func (c *SendButtonDown) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	b, err := protocol.ParseButton(c.Button)
	if err != nil {
		return err
	}
	return c.send(logger, rawLogger, protocol.ButtonDown{Button: b})
}

type SendButtonUp struct {
	Target `embed:""`
	Button string `arg:"" help:"left, middle or right"`
}

func (c *SendButtonUp) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	b, err := protocol.ParseButton(c.Button)
	if err != nil {
		return err
	}
	return c.send(logger, rawLogger, protocol.ButtonUp{Button: b})
}

type SendWheel struct {
	Target `embed:""`
	Delta  int16 `arg:"" help:"Wheel delta"`
}

func (c *SendWheel) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return c.send(logger, rawLogger, protocol.Wheel{Delta: c.Delta})
}

type SendKeyDown struct {
	Target `embed:""`
	Name   string `arg:"" help:"Key name, e.g. KeyA or ShiftLeft"`
}

func (c *SendKeyDown) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ev, err := keyEvent(c.Name, true)
	if err != nil {
		return err
	}
	return c.send(logger, rawLogger, ev)
}

type SendKeyUp struct {
	Target `embed:""`
	Name   string `arg:"" help:"Key name, e.g. KeyA or ShiftLeft"`
}

func (c *SendKeyUp) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ev, err := keyEvent(c.Name, false)
	if err != nil {
		return err
	}
	return c.send(logger, rawLogger, ev)
}

type SendTap struct {
	Target `embed:""`
	Name   string `arg:"" help:"Key name, e.g. Enter"`
}

func (c *SendTap) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	if _, err := keyEvent(c.Name, true); err != nil {
		return err
	}
	return c.send(logger, rawLogger, tapEvents(c.Name, false)...)
}

type SendType struct {
	Target `embed:""`
	Text   string `arg:"" help:"ASCII text to type"`
}

func (c *SendType) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	evs, err := typeEvents(c.Text)
	if err != nil {
		return err
	}
	return c.send(logger, rawLogger, evs...)
}

type SendPad struct {
	Addr    string   `name:"pad-addr" help:"Gamepad receiver UDP address" default:"127.0.0.1:9998" env:"HIDINJECT_SEND_PAD_ADDR"`
	LX      int16    `name:"lx" help:"Left stick X"`
	LY      int16    `name:"ly" help:"Left stick Y"`
	RX      int16    `name:"rx" help:"Right stick X"`
	RY      int16    `name:"ry" help:"Right stick Y"`
	LT      uint8    `name:"lt" help:"Left trigger"`
	RT      uint8    `name:"rt" help:"Right trigger"`
	Buttons []string `arg:"" optional:"" help:"Held buttons: a b x y lb rb back start ls rs up down left right"`
}

func (c *SendPad) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	buttons, err := protocol.ParsePadButtons(c.Buttons)
	if err != nil {
		return err
	}
	return Target{Addr: c.Addr}.send(logger, rawLogger, protocol.Pad{
		LX: c.LX, LY: c.LY, RX: c.RX, RY: c.RY, LT: c.LT, RT: c.RT, Buttons: buttons,
	})
}

type SendInteractive struct {
	Target `embed:""`
}

const ctrlC = 0x03

func (c *SendInteractive) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}
	conn, err := c.dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	fmt.Fprintf(os.Stderr, "Forwarding keystrokes to %s, Ctrl-C to quit\r\n", c.Addr)
	return forwardKeystrokes(os.Stdin, conn, c.Delay, logger, rawLogger)
}

// forwardKeystrokes taps one key per input byte until Ctrl-C or EOF. Bytes
// without a US layout key are skipped.
func forwardKeystrokes(r io.Reader, conn net.Conn, delay time.Duration, logger *slog.Logger, rawLogger log.RawLogger) error {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, ch := range buf[:n] {
			if ch == ctrlC {
				return nil
			}
			name, shift, ok := keymap.CharName(ch)
			if !ok {
				logger.Debug("No key for byte", "byte", fmt.Sprintf("0x%02x", ch))
				continue
			}
			if err := writeEvents(conn, delay, logger, rawLogger, tapEvents(name, shift)...); err != nil {
				return err
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
