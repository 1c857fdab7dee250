// Package udp receives input packets and hands each datagram to a
// dispatcher, one at a time, in arrival order.
package udp

import (
	"errors"
	"log/slog"
	"net"
	"sync"

	"github.com/remote-input/hidinject/dispatch"
	"github.com/remote-input/hidinject/internal/log"
)

// maxDatagram is the receive buffer size. Longer datagrams are truncated
// by the socket; no valid packet comes close.
const maxDatagram = 1024

// Dispatcher consumes one datagram.
type Dispatcher interface {
	Dispatch(buf []byte) dispatch.Outcome
}

type Server struct {
	config    ServerConfig
	dispatch  Dispatcher
	logger    *slog.Logger
	rawLogger log.RawLogger

	mu        sync.Mutex
	conn      net.PacketConn
	closed    bool
	ready     chan struct{}
	readyOnce sync.Once
}

func New(config ServerConfig, d Dispatcher, logger *slog.Logger, rawLogger log.RawLogger) *Server {
	if rawLogger == nil {
		rawLogger = log.NewRaw(nil)
	}
	return &Server{
		config:    config,
		dispatch:  d,
		logger:    logger,
		rawLogger: rawLogger,
		ready:     make(chan struct{}),
	}
}

// ListenAndServe binds the socket and runs the receive loop until Close.
// A bind failure is returned immediately.
func (s *Server) ListenAndServe() error {
	conn, err := net.ListenPacket("udp", s.config.Addr)
	if err != nil {
		return err
	}
	if s.config.ReadBuffer > 0 {
		if uc, ok := conn.(*net.UDPConn); ok {
			if err := uc.SetReadBuffer(s.config.ReadBuffer); err != nil {
				s.logger.Warn("Failed to set read buffer", "size", s.config.ReadBuffer, "error", err)
			}
		}
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	s.conn = conn
	s.mu.Unlock()

	s.readyOnce.Do(func() { close(s.ready) })
	s.logger.Info("UDP server listening", "addr", conn.LocalAddr().String())

	buf := make([]byte, maxDatagram)
	for {
		n, peer, err := conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info("UDP server stopped")
				return nil
			}
			s.logger.Error("Read error", "error", err)
			continue
		}
		s.rawLogger.Log(true, peer, buf[:n])
		if out := s.dispatch.Dispatch(buf[:n]); out != dispatch.Injected {
			s.logger.Debug("Datagram handled", "peer", peer.String(), "outcome", out.String())
		}
	}
}

// Ready is closed once the socket is bound.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the bound address, or nil before Ready.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Close stops the receive loop. ListenAndServe then returns nil.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
