package apiclient_test

import (
	"bufio"
	"io"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/remote-input/hidinject/internal/auth"
)

type request struct {
	path    string
	payload string
}

// fakeServer speaks the VIIPER request framing on a loopback listener.
type fakeServer struct {
	ln       net.Listener
	password string
	handler  func(req request, conn net.Conn, r *bufio.Reader)

	mu       sync.Mutex
	requests []request
}

func startFakeServer(t *testing.T, password string, handler func(req request, conn net.Conn, r *bufio.Reader)) *fakeServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := &fakeServer{ln: ln, password: password, handler: handler}
	go s.serve()
	t.Cleanup(func() { _ = ln.Close() })
	return s
}

func (s *fakeServer) addr() string { return s.ln.Addr().String() }

func (s *fakeServer) seen() []request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]request(nil), s.requests...)
}

func (s *fakeServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer conn.Close()
	if s.password != "" {
		secure, err := auth.Accept(conn, s.password)
		if err != nil {
			return
		}
		conn = secure
	}
	r := bufio.NewReader(conn)
	line, err := r.ReadString('\x00')
	if err != nil && err != io.EOF {
		return
	}
	line = strings.TrimSuffix(line, "\x00")
	req := request{path: line}
	if i := strings.IndexByte(line, ' '); i >= 0 {
		req = request{path: line[:i], payload: line[i+1:]}
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	s.handler(req, conn, r)
}

func reply(body string) func(request, net.Conn, *bufio.Reader) {
	return func(_ request, conn net.Conn, _ *bufio.Reader) {
		_, _ = conn.Write([]byte(body + "\n"))
	}
}
