package apiclient

import (
	"context"
	"encoding"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// ErrStreamClosed is returned by writes on a closed DeviceStream.
var ErrStreamClosed = errors.New("stream closed")

// DeviceStream is a long-lived connection feeding input reports to one device.
type DeviceStream struct {
	conn         net.Conn
	writeTimeout time.Duration
	BusID        uint32
	DevID        string

	mu     sync.Mutex
	closed bool
}

// OpenStream connects to an existing device's stream channel.
func (c *Client) OpenStream(ctx context.Context, busID uint32, devID string) (*DeviceStream, error) {
	if c.transport.mock != nil {
		return nil, fmt.Errorf("stream connections not supported with mock transport")
	}
	conn, err := c.transport.dial(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Write([]byte(fmt.Sprintf("bus/%d/%s\x00", busID, devID))); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write stream path: %w", err)
	}
	return &DeviceStream{
		conn:         conn,
		writeTimeout: c.transport.cfg.WriteTimeout,
		BusID:        busID,
		DevID:        devID,
	}, nil
}

// WriteBinary marshals v and sends it as one report.
func (s *DeviceStream) WriteBinary(v encoding.BinaryMarshaler) error {
	data, err := v.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = s.Write(data)
	return err
}

// Write sends raw bytes to the device.
func (s *DeviceStream) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStreamClosed
	}
	if s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	return s.conn.Write(data)
}

// Close closes the stream connection.
func (s *DeviceStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}
