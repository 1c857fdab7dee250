package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remote-input/hidinject/internal/log"
)

func TestParseLevel(t *testing.T) {
	type testCase struct {
		in   string
		want slog.Level
	}
	cases := []testCase{
		{"trace", log.LevelTrace},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, log.ParseLevel(tc.in))
		})
	}
}

func TestConsoleSplit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(log.NewMultiHandler(log.NewConsoleHandlers(&stdout, &stderr, log.LevelTrace)...))

	logger.Log(context.Background(), log.LevelTrace, "datagram")
	logger.Info("listening")
	logger.Error("inject error")

	assert.Contains(t, stdout.String(), "level=TRACE msg=datagram")
	assert.Contains(t, stdout.String(), "msg=listening")
	assert.NotContains(t, stdout.String(), "inject error")
	assert.Contains(t, stderr.String(), "msg=\"inject error\"")
	assert.NotContains(t, stderr.String(), "listening")
}

func TestConsoleLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(log.NewMultiHandler(log.NewConsoleHandlers(&stdout, &stderr, slog.LevelInfo)...))
	logger.Debug("hidden")
	assert.Empty(t, stdout.String())
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	onlyWarn := func(l slog.Level) bool { return l == slog.LevelWarn }
	h := log.NewLevelFilter(onlyWarn, slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: log.LevelTrace}))
	logger := slog.New(h).With("listener", "pad")

	logger.Info("skipped")
	logger.Warn("kept")
	logger.Error("also skipped")

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "level=WARN msg=kept listener=pad")
}

func TestSetupLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hidinject.log")
	logger, closers, err := log.SetupLogger("debug", path)
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	for _, c := range closers {
		require.NoError(t, c.Close())
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello k=1")
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	raw := log.NewRaw(&buf)
	peer := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 5000}

	raw.Log(true, peer, []byte{0x01, 0x02, 0xAB})
	raw.Log(false, nil, []byte{0xFF})
	raw.Log(true, peer, nil)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "<- 127.0.0.1:5000 3 bytes: 01 02 ab")
	assert.Contains(t, string(lines[1]), "-> - 1 bytes: ff")

	assert.NotPanics(t, func() { log.NewRaw(nil).Log(true, peer, []byte{1}) })
}
