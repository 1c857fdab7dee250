package protocol

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/remote-input/hidinject/keymap"
)

// Decode validates buf and returns the single event it carries. Every
// failure wraps ErrIgnored; buf is never read past its length. Bytes after
// the opcode's payload are ignored.
func Decode(buf []byte) (Event, error) {
	if len(buf) < headerSize {
		return nil, ErrTruncated
	}
	if buf[0] != Version {
		return nil, ErrVersion
	}

	switch op := buf[1]; op {
	case OpPointerMove:
		if len(buf) < pointerMoveSize {
			return nil, ErrTruncated
		}
		return PointerMove{
			DX: int16(binary.LittleEndian.Uint16(buf[2:4])),
			DY: int16(binary.LittleEndian.Uint16(buf[4:6])),
		}, nil

	case OpButtonDown, OpButtonUp:
		if len(buf) < buttonSize {
			return nil, ErrTruncated
		}
		btn := Button(buf[2])
		if !btn.Valid() {
			return nil, ErrButton
		}
		if op == OpButtonDown {
			return ButtonDown{Button: btn}, nil
		}
		return ButtonUp{Button: btn}, nil

	case OpWheel:
		if len(buf) < wheelSize {
			return nil, ErrTruncated
		}
		return Wheel{Delta: int16(binary.LittleEndian.Uint16(buf[2:4]))}, nil

	case OpKeyDown, OpKeyUp:
		code, usage, err := decodeKey(buf)
		if err != nil {
			return nil, err
		}
		if op == OpKeyDown {
			return KeyDown{Code: code, Usage: usage}, nil
		}
		return KeyUp{Code: code, Usage: usage}, nil

	default:
		return nil, ErrOpcode
	}
}

func decodeKey(buf []byte) (string, keymap.Usage, error) {
	if len(buf) < keyHeaderSize {
		return "", 0, ErrTruncated
	}
	n := int(buf[2])
	if keyHeaderSize+n > len(buf) {
		return "", 0, ErrTruncated
	}
	raw := buf[keyHeaderSize : keyHeaderSize+n]
	if !utf8.Valid(raw) {
		return "", 0, ErrKeyName
	}
	code := string(raw)
	usage, ok := keymap.Resolve(code)
	if !ok {
		return code, 0, ErrUnmappedKey
	}
	return code, usage, nil
}
