package protocol

import (
	"errors"
	"fmt"
)

// ErrIgnored is wrapped by every decode error. A packet that fails to decode
// is dropped without side effects.
var ErrIgnored = errors.New("packet ignored")

var (
	ErrTruncated   = fmt.Errorf("%w: truncated", ErrIgnored)
	ErrVersion     = fmt.Errorf("%w: unsupported version", ErrIgnored)
	ErrOpcode      = fmt.Errorf("%w: unknown opcode", ErrIgnored)
	ErrButton      = fmt.Errorf("%w: invalid button", ErrIgnored)
	ErrKeyName     = fmt.Errorf("%w: key name is not valid utf-8", ErrIgnored)
	ErrUnmappedKey = fmt.Errorf("%w: unmapped key", ErrIgnored)
)

// ErrKeyNameTooLong is returned when marshaling a key event whose name does
// not fit the one-byte length prefix.
var ErrKeyNameTooLong = errors.New("key name longer than 255 bytes")
