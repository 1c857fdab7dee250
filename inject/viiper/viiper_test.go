package viiper_test

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remote-input/hidinject/inject"
	"github.com/remote-input/hidinject/inject/viiper"
	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

// fakeViiper answers management requests and records stream traffic.
type fakeViiper struct {
	ln net.Listener

	mu       sync.Mutex
	paths    []string
	nextDev  int
	streams  map[string]chan []byte
	failPath string
}

func startFakeViiper(t *testing.T, failPath string) *fakeViiper {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	f := &fakeViiper{ln: ln, failPath: failPath, streams: map[string]chan []byte{
		"1": make(chan []byte, 1),
		"2": make(chan []byte, 1),
		"3": make(chan []byte, 1),
	}}
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go f.handle(conn)
		}
	}()
	return f
}

func (f *fakeViiper) handle(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	line, err := r.ReadString('\x00')
	if err != nil {
		return
	}
	line = strings.TrimSuffix(line, "\x00")
	path, payload, _ := strings.Cut(line, " ")

	f.mu.Lock()
	f.paths = append(f.paths, path)
	fail := f.failPath != "" && strings.HasPrefix(path, f.failPath)
	f.mu.Unlock()

	if fail {
		fmt.Fprintln(conn, `{"status":500,"title":"Internal Server Error","detail":"boom"}`)
		return
	}

	switch {
	case path == "ping":
		fmt.Fprintln(conn, `{"server":"VIIPER","version":"test"}`)
	case path == "bus/create":
		fmt.Fprintln(conn, `{"busId":5}`)
	case path == "bus/remove":
		fmt.Fprintf(conn, "{\"busId\":%s}\n", payload)
	case strings.HasSuffix(path, "/add"):
		f.mu.Lock()
		f.nextDev++
		id := f.nextDev
		f.mu.Unlock()
		fmt.Fprintf(conn, "{\"busId\":5,\"devId\":\"%d\"}\n", id)
	case strings.HasSuffix(path, "/remove"):
		fmt.Fprintf(conn, "{\"busId\":5,\"devId\":\"%s\"}\n", payload)
	default:
		devID := path[strings.LastIndexByte(path, '/')+1:]
		data, _ := io.ReadAll(r)
		if ch, ok := f.streams[devID]; ok {
			ch <- data
		}
	}
}

func (f *fakeViiper) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func receive(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case b := <-ch:
		return b
	case <-time.After(2 * time.Second):
		t.Fatal("stream data not received")
		return nil
	}
}

func testConfig(addr string, bus uint32) inject.Config {
	return inject.Config{Backend: "viiper", ViiperAddr: addr, ViiperBus: bus, ViiperTimeout: 2 * time.Second}
}

func TestInjectorStreamsReports(t *testing.T) {
	f := startFakeViiper(t, "")
	in, err := viiper.Open(context.Background(), testConfig(f.ln.Addr().String(), 0), slog.Default())
	require.NoError(t, err)

	require.NoError(t, in.SetKey(keymap.KeyLeftCtrl, true))
	require.NoError(t, in.SetKey(keymap.KeyC, true))
	require.NoError(t, in.SetKey(keymap.KeyC, false))
	require.NoError(t, in.SetKey(keymap.KeyLeftCtrl, false))

	require.NoError(t, in.MoveRelative(10, -3))
	require.NoError(t, in.SetButton(protocol.ButtonRight, true))
	require.NoError(t, in.Scroll(-1))
	require.NoError(t, in.SetButton(protocol.ButtonRight, false))
	require.NoError(t, in.Close())

	kbd := receive(t, f.streams["1"])
	assert.Equal(t, []byte{
		0x01, 0,
		0x01, 1, 0x06,
		0x01, 0,
		0x00, 0,
		0x00, 0,
	}, kbd)

	mouse := receive(t, f.streams["2"])
	assert.Equal(t, []byte{
		0x00, 10, 0, 0xFD, 0xFF, 0, 0, 0, 0,
		0x02, 0, 0, 0, 0, 0, 0, 0, 0,
		0x02, 0, 0, 0, 0, 0xFF, 0xFF, 0, 0,
		0x00, 0, 0, 0, 0, 0, 0, 0, 0,
		0x00, 0, 0, 0, 0, 0, 0, 0, 0,
	}, mouse)

	assert.ElementsMatch(t, []string{
		"ping", "bus/create", "bus/5/add", "bus/5/add", "bus/5/1", "bus/5/2", "bus/remove",
	}, f.seen())
}

func TestInjectorLargeMoveSplits(t *testing.T) {
	f := startFakeViiper(t, "")
	in, err := viiper.Open(context.Background(), testConfig(f.ln.Addr().String(), 0), slog.Default())
	require.NoError(t, err)
	require.NoError(t, in.MoveRelative(40000, 0))
	require.NoError(t, in.Close())

	mouse := receive(t, f.streams["2"])
	require.Len(t, mouse, 3*9)
	assert.Equal(t, []byte{0x00, 0xFF, 0x7F, 0, 0, 0, 0, 0, 0}, mouse[:9])
	assert.Equal(t, []byte{0x00, 0x41, 0x1C, 0, 0, 0, 0, 0, 0}, mouse[9:18])
}

func TestInjectorExistingBus(t *testing.T) {
	f := startFakeViiper(t, "")
	in, err := viiper.Open(context.Background(), testConfig(f.ln.Addr().String(), 9), slog.Default())
	require.NoError(t, err)
	require.NoError(t, in.Close())
	receive(t, f.streams["1"])
	receive(t, f.streams["2"])

	assert.ElementsMatch(t, []string{
		"ping", "bus/9/add", "bus/9/add", "bus/9/1", "bus/9/2", "bus/9/remove", "bus/9/remove",
	}, f.seen())
}

func TestInjectorPadReports(t *testing.T) {
	f := startFakeViiper(t, "")
	cfg := testConfig(f.ln.Addr().String(), 0)
	cfg.Pad = true
	in, err := viiper.Open(context.Background(), cfg, slog.Default())
	require.NoError(t, err)

	require.NoError(t, in.SetPad(protocol.Pad{
		LX: -32768, LY: 1, RX: 256, RY: -1, LT: 0x80, RT: 0xFF,
		Buttons: protocol.PadA | protocol.PadLeftShoulder | protocol.PadDPadLeft,
	}))
	require.NoError(t, in.Close())
	receive(t, f.streams["1"])
	receive(t, f.streams["2"])

	pad := receive(t, f.streams["3"])
	assert.Equal(t, []byte{
		0x04, 0x11, 0x00, 0x00, 0x80, 0xFF, 0x00, 0x80, 0x01, 0x00, 0x00, 0x01, 0xFF, 0xFF, 0, 0, 0, 0, 0, 0,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0,
	}, pad)
	assert.ElementsMatch(t, []string{
		"ping", "bus/create", "bus/5/add", "bus/5/add", "bus/5/add", "bus/5/1", "bus/5/2", "bus/5/3", "bus/remove",
	}, f.seen())
}

func TestInjectorPadNotAttached(t *testing.T) {
	f := startFakeViiper(t, "")
	in, err := viiper.Open(context.Background(), testConfig(f.ln.Addr().String(), 0), slog.Default())
	require.NoError(t, err)
	defer in.Close()

	assert.EqualError(t, in.SetPad(protocol.Pad{}), "gamepad not attached")
}

func TestInjectorOpenFailures(t *testing.T) {
	type testCase struct {
		name     string
		failPath string
		wantErr  string
	}
	cases := []testCase{
		{name: "ping", failPath: "ping", wantErr: "ping"},
		{name: "bus create", failPath: "bus/create", wantErr: "create bus"},
		{name: "device add", failPath: "bus/5/add", wantErr: "add keyboard"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := startFakeViiper(t, tc.failPath)
			_, err := viiper.Open(context.Background(), testConfig(f.ln.Addr().String(), 0), slog.Default())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestInjectorUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = inject.New(testConfig(addr, 0), slog.Default())
	assert.Error(t, err)
}
