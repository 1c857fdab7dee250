package protocol

import (
	"encoding"
	"encoding/binary"
	"fmt"

	"github.com/remote-input/hidinject/keymap"
)

// Event is one decoded packet. The set of implementations is closed: only
// the types in this package satisfy it.
type Event interface {
	encoding.BinaryMarshaler
	Opcode() uint8
	isEvent()
}

// PointerMove moves the pointer by a relative pixel delta.
type PointerMove struct {
	DX, DY int16
}

// ButtonDown presses a pointer button.
type ButtonDown struct {
	Button Button
}

// ButtonUp releases a pointer button.
type ButtonUp struct {
	Button Button
}

// Wheel scrolls vertically. Positive values scroll up, matching the sign
// convention of the OS wheel APIs.
type Wheel struct {
	Delta int16
}

// KeyDown presses a key. Usage is filled in by Decode; MarshalBinary only
// looks at Code.
type KeyDown struct {
	Code  string
	Usage keymap.Usage
}

// KeyUp releases a key.
type KeyUp struct {
	Code  string
	Usage keymap.Usage
}

func (PointerMove) isEvent() {}
func (ButtonDown) isEvent()  {}
func (ButtonUp) isEvent()    {}
func (Wheel) isEvent()       {}
func (KeyDown) isEvent()     {}
func (KeyUp) isEvent()       {}

func (PointerMove) Opcode() uint8 { return OpPointerMove }
func (ButtonDown) Opcode() uint8  { return OpButtonDown }
func (ButtonUp) Opcode() uint8    { return OpButtonUp }
func (Wheel) Opcode() uint8       { return OpWheel }
func (KeyDown) Opcode() uint8     { return OpKeyDown }
func (KeyUp) Opcode() uint8       { return OpKeyUp }

// MarshalBinary encodes the event as a 6-byte packet.
func (e PointerMove) MarshalBinary() ([]byte, error) {
	b := make([]byte, pointerMoveSize)
	b[0], b[1] = Version, OpPointerMove
	binary.LittleEndian.PutUint16(b[2:4], uint16(e.DX))
	binary.LittleEndian.PutUint16(b[4:6], uint16(e.DY))
	return b, nil
}

func (e ButtonDown) MarshalBinary() ([]byte, error) {
	return marshalButton(OpButtonDown, e.Button)
}

func (e ButtonUp) MarshalBinary() ([]byte, error) {
	return marshalButton(OpButtonUp, e.Button)
}

// MarshalBinary encodes the event as a 4-byte packet.
func (e Wheel) MarshalBinary() ([]byte, error) {
	b := make([]byte, wheelSize)
	b[0], b[1] = Version, OpWheel
	binary.LittleEndian.PutUint16(b[2:4], uint16(e.Delta))
	return b, nil
}

func (e KeyDown) MarshalBinary() ([]byte, error) { return marshalKey(OpKeyDown, e.Code) }
func (e KeyUp) MarshalBinary() ([]byte, error)   { return marshalKey(OpKeyUp, e.Code) }

func (e PointerMove) String() string { return fmt.Sprintf("move(%d,%d)", e.DX, e.DY) }
func (e ButtonDown) String() string  { return fmt.Sprintf("button-down(%s)", e.Button) }
func (e ButtonUp) String() string    { return fmt.Sprintf("button-up(%s)", e.Button) }
func (e Wheel) String() string       { return fmt.Sprintf("wheel(%d)", e.Delta) }
func (e KeyDown) String() string     { return fmt.Sprintf("key-down(%s)", e.Code) }
func (e KeyUp) String() string       { return fmt.Sprintf("key-up(%s)", e.Code) }

func marshalButton(op uint8, btn Button) ([]byte, error) {
	if !btn.Valid() {
		return nil, fmt.Errorf("marshal %s: %w", btn, ErrButton)
	}
	return []byte{Version, op, byte(btn)}, nil
}

func marshalKey(op uint8, code string) ([]byte, error) {
	if len(code) > MaxKeyNameLen {
		return nil, ErrKeyNameTooLong
	}
	b := make([]byte, keyHeaderSize+len(code))
	b[0], b[1], b[2] = Version, op, byte(len(code))
	copy(b[keyHeaderSize:], code)
	return b, nil
}

// Encode is shorthand for e.MarshalBinary.
func Encode(e Event) ([]byte, error) { return e.MarshalBinary() }
