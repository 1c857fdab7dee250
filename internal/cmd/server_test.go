package cmd

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remote-input/hidinject/inject"
	"github.com/remote-input/hidinject/inject/injecttest"
	"github.com/remote-input/hidinject/internal/log"
	"github.com/remote-input/hidinject/internal/server/udp"
	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

func freeUDPAddr(t *testing.T) string {
	t.Helper()
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := pc.LocalAddr().String()
	require.NoError(t, pc.Close())
	return addr
}

func TestStartServerInjectsSentKeys(t *testing.T) {
	rec := injecttest.NewRecorder()
	inject.Register("cmd-test-recorder", func(inject.Config, *slog.Logger) (inject.Injector, error) {
		return rec, nil
	})

	addr := freeUDPAddr(t)
	s := &Server{
		UDPServerConfig: udp.ServerConfig{Addr: addr},
		InjectConfig:    inject.Config{Backend: "cmd-test-recorder"},
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.StartServer(ctx, slog.Default(), log.NewRaw(nil)) }()

	want := []injecttest.Call{injecttest.Key(keymap.KeyLeftShift, true), injecttest.Key(keymap.KeyA, true)}
	send := &SendKeyDown{Target: Target{Addr: addr}, Name: "ShiftLeft"}
	require.Eventually(t, func() bool {
		rec.Reset()
		_ = send.Run(slog.Default(), log.NewRaw(nil))
		_ = (&SendKeyDown{Target: Target{Addr: addr}, Name: "KeyA"}).Run(slog.Default(), log.NewRaw(nil))
		time.Sleep(20 * time.Millisecond)
		calls := rec.Calls()
		return len(calls) >= 2 && assert.ObjectsAreEqual(want, calls[len(calls)-2:])
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, rec.Closed())
}

func TestStartServerUnknownBackend(t *testing.T) {
	s := &Server{
		UDPServerConfig: udp.ServerConfig{Addr: "127.0.0.1:0"},
		InjectConfig:    inject.Config{Backend: "does-not-exist"},
	}
	err := s.StartServer(context.Background(), slog.Default(), log.NewRaw(nil))
	assert.ErrorContains(t, err, "unknown injection backend")
}

func TestStartServerBindFailure(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	rec := injecttest.NewRecorder()
	inject.Register("cmd-test-bind", func(inject.Config, *slog.Logger) (inject.Injector, error) {
		return rec, nil
	})
	s := &Server{
		UDPServerConfig: udp.ServerConfig{Addr: pc.LocalAddr().String()},
		InjectConfig:    inject.Config{Backend: "cmd-test-bind"},
	}
	err = s.StartServer(context.Background(), slog.Default(), log.NewRaw(nil))
	assert.ErrorContains(t, err, "listen ")
	assert.True(t, rec.Closed())
}

func TestStartServerPadListener(t *testing.T) {
	rec := injecttest.NewRecorder()
	var opened inject.Config
	inject.Register("cmd-test-pad", func(cfg inject.Config, _ *slog.Logger) (inject.Injector, error) {
		opened = cfg
		return rec, nil
	})

	addr, padAddr := freeUDPAddr(t), freeUDPAddr(t)
	s := &Server{
		UDPServerConfig: udp.ServerConfig{Addr: addr},
		PadServerConfig: udp.PadConfig{Addr: padAddr},
		InjectConfig:    inject.Config{Backend: "cmd-test-pad"},
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.StartServer(ctx, slog.Default(), log.NewRaw(nil)) }()

	send := &SendPad{Addr: padAddr, LX: -200, RT: 255, Buttons: []string{"a", "start"}}
	want := injecttest.Pad(protocol.Pad{LX: -200, RT: 255, Buttons: protocol.PadA | protocol.PadStart})
	require.Eventually(t, func() bool {
		_ = send.Run(slog.Default(), log.NewRaw(nil))
		time.Sleep(20 * time.Millisecond)
		for _, c := range rec.Calls() {
			if assert.ObjectsAreEqual(want, c) {
				return true
			}
		}
		return false
	}, 3*time.Second, 50*time.Millisecond)

	// Gamepad packets on the input port are ignored.
	require.NoError(t, (&SendPad{Addr: addr, LX: 1}).Run(slog.Default(), log.NewRaw(nil)))
	require.NoError(t, (&SendWheel{Target: Target{Addr: addr}, Delta: 2}).Run(slog.Default(), log.NewRaw(nil)))
	require.Eventually(t, func() bool {
		for _, c := range rec.Calls() {
			if c == injecttest.Scroll(2) {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
	assert.NotContains(t, rec.Calls(), injecttest.Pad(protocol.Pad{LX: 1}))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, opened.Pad)
	assert.True(t, rec.Closed())
}

func TestStartServerPadUnsupported(t *testing.T) {
	rec := injecttest.NewRecorder()
	inject.Register("cmd-test-nopad", func(inject.Config, *slog.Logger) (inject.Injector, error) {
		return struct{ inject.Injector }{rec}, nil
	})
	s := &Server{
		UDPServerConfig: udp.ServerConfig{Addr: "127.0.0.1:0"},
		PadServerConfig: udp.PadConfig{Addr: "127.0.0.1:0"},
		InjectConfig:    inject.Config{Backend: "cmd-test-nopad"},
	}
	err := s.StartServer(context.Background(), slog.Default(), log.NewRaw(nil))
	assert.EqualError(t, err, "backend cmd-test-nopad does not support gamepads")
	assert.True(t, rec.Closed())
}

func TestStartServerPadBindFailure(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	rec := injecttest.NewRecorder()
	inject.Register("cmd-test-padbind", func(inject.Config, *slog.Logger) (inject.Injector, error) {
		return rec, nil
	})
	s := &Server{
		UDPServerConfig: udp.ServerConfig{Addr: freeUDPAddr(t)},
		PadServerConfig: udp.PadConfig{Addr: pc.LocalAddr().String()},
		InjectConfig:    inject.Config{Backend: "cmd-test-padbind"},
	}
	err = s.StartServer(context.Background(), slog.Default(), log.NewRaw(nil))
	assert.ErrorContains(t, err, "listen "+pc.LocalAddr().String())
	assert.True(t, rec.Closed())
}
