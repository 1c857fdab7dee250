// Package protocol implements the version 1 input packet format.
//
// Packet layout (all multi-byte integers little-endian):
//
//	Byte 0: version (0x01)
//	Byte 1: opcode
//	Bytes 2+: opcode payload
//
//	0x01 pointer move  dx:i16 dy:i16         (6 bytes)
//	0x02 button down   button:u8             (3 bytes)
//	0x03 button up     button:u8             (3 bytes)
//	0x04 key down      n:u8 name:utf8[n]     (3+n bytes)
//	0x05 key up        n:u8 name:utf8[n]     (3+n bytes)
//	0x06 wheel         delta:i16             (4 bytes)
//
// Gamepad packets use the same header on their own listener:
//
//	0x10 pad  lx:i16 ly:i16 rx:i16 ry:i16 lt:u8 rt:u8 buttons:u32  (16 bytes)
package protocol

import "fmt"

// Version is the only packet version this package understands.
const Version uint8 = 0x01

// Opcodes
const (
	OpPointerMove uint8 = 0x01
	OpButtonDown  uint8 = 0x02
	OpButtonUp    uint8 = 0x03
	OpKeyDown     uint8 = 0x04
	OpKeyUp       uint8 = 0x05
	OpWheel       uint8 = 0x06

	OpPad uint8 = 0x10
)

// Minimum packet lengths per opcode. Key packets additionally need n name bytes.
const (
	headerSize      = 2
	pointerMoveSize = 6
	buttonSize      = 3
	wheelSize       = 4
	keyHeaderSize   = 3
	padSize         = 16

	// MaxKeyNameLen is the longest key name a single length byte can carry.
	MaxKeyNameLen = 255
)

// Button identifies a pointer button on the wire.
type Button uint8

const (
	ButtonLeft   Button = 0
	ButtonMiddle Button = 1
	ButtonRight  Button = 2
)

// Valid reports whether b is one of the three defined buttons.
func (b Button) Valid() bool { return b <= ButtonRight }

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}

// ParseButton accepts "left", "middle", "right" or the wire values 0-2.
func ParseButton(s string) (Button, error) {
	switch s {
	case "left", "0":
		return ButtonLeft, nil
	case "middle", "1":
		return ButtonMiddle, nil
	case "right", "2":
		return ButtonRight, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}
