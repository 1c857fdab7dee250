package log

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

// RawLogger dumps datagrams as hex.
type RawLogger interface {
	// Log records one datagram. in is true for received datagrams.
	Log(in bool, peer net.Addr, data []byte)
}

type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a RawLogger writing to w. A nil w discards everything.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

func (r *rawLogger) Log(in bool, peer net.Addr, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	dir := "->"
	if in {
		dir = "<-"
	}
	remote := "-"
	if peer != nil {
		remote = peer.String()
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s %s %d bytes: %s\n",
		time.Now().Format("2006/01/02 15:04:05.000"),
		dir,
		remote,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}
