package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/remote-input/hidinject/dispatch"
	"github.com/remote-input/hidinject/inject"
	"github.com/remote-input/hidinject/internal/log"
	"github.com/remote-input/hidinject/internal/server/udp"
	"github.com/remote-input/hidinject/internal/util"
)

type Server struct {
	UDPServerConfig udp.ServerConfig `embed:"" prefix:"udp."`
	PadServerConfig udp.PadConfig    `embed:"" prefix:"pad."`
	InjectConfig    inject.Config    `embed:"" prefix:"inject."`
}

// Run is called by Kong when the server command is executed.
func (s *Server) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.StartServer(ctx, logger, rawLogger)
}

type listener struct {
	name string
	addr string
	srv  *udp.Server
	d    *dispatch.Dispatcher
}

// StartServer opens the injection backend and serves UDP until ctx is done.
// When a pad address is configured a second listener feeds gamepad packets
// to the same backend.
func (s *Server) StartServer(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	logger.Info("Starting hidinject server", "addr", s.UDPServerConfig.Addr, "pad", s.PadServerConfig.Addr, "backend", s.InjectConfig.Backend)

	injCfg := s.InjectConfig
	injCfg.Pad = s.PadServerConfig.Addr != ""
	inj, err := inject.New(injCfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := inj.Close(); err != nil {
			logger.Warn("Failed to close injection backend", "error", err)
		}
	}()

	d := dispatch.New(inj, logger)
	listeners := []listener{{
		name: "input",
		addr: s.UDPServerConfig.Addr,
		srv:  udp.New(s.UDPServerConfig, d, logger, rawLogger),
		d:    d,
	}}
	if injCfg.Pad {
		pad, ok := inj.(inject.PadInjector)
		if !ok {
			return fmt.Errorf("backend %s does not support gamepads", s.InjectConfig.Backend)
		}
		padLogger := logger.With("listener", "pad")
		pd := dispatch.NewPad(pad, padLogger)
		padCfg := udp.ServerConfig{Addr: s.PadServerConfig.Addr, ReadBuffer: s.UDPServerConfig.ReadBuffer}
		listeners = append(listeners, listener{
			name: "pad",
			addr: padCfg.Addr,
			srv:  udp.New(padCfg, pd, padLogger, rawLogger),
			d:    pd,
		})
	}

	errCh := make(chan error, len(listeners))
	for _, l := range listeners {
		l := l
		go func() {
			if err := l.srv.ListenAndServe(); err != nil {
				errCh <- fmt.Errorf("listen %s: %w", l.addr, err)
				return
			}
			errCh <- nil
		}()
	}
	running := len(listeners)
	stopAll := func() {
		for _, l := range listeners {
			_ = l.srv.Close()
		}
		for ; running > 0; running-- {
			<-errCh
		}
	}

	for _, l := range listeners {
		select {
		case err := <-errCh:
			running--
			stopAll()
			if err == nil {
				return nil
			}
			if util.IsRunFromGUI() {
				fmt.Println("Press any key to exit...")
				b := make([]byte, 1)
				_, _ = os.Stdin.Read(b)
			}
			return err
		case <-l.srv.Ready():
		}
	}

	if util.IsRunFromGUI() {
		go func() {
			time.Sleep(250 * time.Millisecond)
			util.HideConsoleWindow()
		}()
	}

	select {
	case <-ctx.Done():
	case err = <-errCh:
		running--
	}
	stopAll()

	for _, l := range listeners {
		st := l.d.Stats()
		logger.Info("Server stopped", "listener", l.name, "received", st.Received, "injected", st.Injected, "ignored", st.Ignored, "failed", st.Failed)
	}
	return err
}
