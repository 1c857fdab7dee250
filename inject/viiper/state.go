package viiper

import (
	"encoding/binary"

	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

// VIIPER mouse button bits.
const (
	mouseLeft   uint8 = 1 << 0
	mouseRight  uint8 = 1 << 1
	mouseMiddle uint8 = 1 << 2
)

func buttonBit(b protocol.Button) uint8 {
	switch b {
	case protocol.ButtonLeft:
		return mouseLeft
	case protocol.ButtonMiddle:
		return mouseMiddle
	case protocol.ButtonRight:
		return mouseRight
	}
	return 0
}

// keyboardState is the keyboard stream report:
// [modifiers, count, keys...]. Keys are HID usages.
type keyboardState struct {
	modifiers uint8
	bitmap    [32]uint8
}

func (st *keyboardState) set(u keymap.Usage, pressed bool) {
	if keymap.IsModifier(u) {
		if pressed {
			st.modifiers |= keymap.ModifierBit(u)
		} else {
			st.modifiers &^= keymap.ModifierBit(u)
		}
		return
	}
	idx, bit := u/8, uint8(1)<<(u%8)
	if pressed {
		st.bitmap[idx] |= bit
	} else {
		st.bitmap[idx] &^= bit
	}
}

func (st *keyboardState) MarshalBinary() ([]byte, error) {
	b := []byte{st.modifiers, 0}
	for i := 0; i < 256; i++ {
		if st.bitmap[i/8]&(1<<uint(i%8)) != 0 {
			b = append(b, uint8(i))
		}
	}
	b[1] = uint8(len(b) - 2)
	return b, nil
}

// mouseState is the 9 byte mouse stream report. Deltas are relative and
// apply once per report.
type mouseState struct {
	buttons uint8
	dx, dy  int16
	wheel   int16
	pan     int16
}

func (m *mouseState) MarshalBinary() ([]byte, error) {
	b := make([]byte, 9)
	b[0] = m.buttons
	b[1] = byte(m.dx)
	b[2] = byte(m.dx >> 8)
	b[3] = byte(m.dy)
	b[4] = byte(m.dy >> 8)
	b[5] = byte(m.wheel)
	b[6] = byte(m.wheel >> 8)
	b[7] = byte(m.pan)
	b[8] = byte(m.pan >> 8)
	return b, nil
}

// XUSB button flags used by the xbox360 device.
const (
	xusbDPadUp        uint32 = 0x0001
	xusbDPadDown      uint32 = 0x0002
	xusbDPadLeft      uint32 = 0x0004
	xusbDPadRight     uint32 = 0x0008
	xusbStart         uint32 = 0x0010
	xusbBack          uint32 = 0x0020
	xusbLeftThumb     uint32 = 0x0040
	xusbRightThumb    uint32 = 0x0080
	xusbLeftShoulder  uint32 = 0x0100
	xusbRightShoulder uint32 = 0x0200
	xusbA             uint32 = 0x1000
	xusbB             uint32 = 0x2000
	xusbX             uint32 = 0x4000
	xusbY             uint32 = 0x8000
)

var padButtonFlags = []struct {
	wire protocol.PadButtons
	xusb uint32
}{
	{protocol.PadA, xusbA},
	{protocol.PadB, xusbB},
	{protocol.PadX, xusbX},
	{protocol.PadY, xusbY},
	{protocol.PadLeftShoulder, xusbLeftShoulder},
	{protocol.PadRightShoulder, xusbRightShoulder},
	{protocol.PadBack, xusbBack},
	{protocol.PadStart, xusbStart},
	{protocol.PadLeftThumb, xusbLeftThumb},
	{protocol.PadRightThumb, xusbRightThumb},
	{protocol.PadDPadUp, xusbDPadUp},
	{protocol.PadDPadDown, xusbDPadDown},
	{protocol.PadDPadLeft, xusbDPadLeft},
	{protocol.PadDPadRight, xusbDPadRight},
}

// padState is the 20 byte xbox360 stream report:
// buttons:u32 lt:u8 rt:u8 lx ly rx ry:i16, then 6 reserved bytes.
type padState struct {
	buttons        uint32
	lt, rt         uint8
	lx, ly, rx, ry int16
}

func newPadState(p protocol.Pad) padState {
	st := padState{lt: p.LT, rt: p.RT, lx: p.LX, ly: p.LY, rx: p.RX, ry: p.RY}
	for _, f := range padButtonFlags {
		if p.Buttons&f.wire != 0 {
			st.buttons |= f.xusb
		}
	}
	return st
}

func (p *padState) MarshalBinary() ([]byte, error) {
	b := make([]byte, 20)
	binary.LittleEndian.PutUint32(b[0:4], p.buttons)
	b[4] = p.lt
	b[5] = p.rt
	binary.LittleEndian.PutUint16(b[6:8], uint16(p.lx))
	binary.LittleEndian.PutUint16(b[8:10], uint16(p.ly))
	binary.LittleEndian.PutUint16(b[10:12], uint16(p.rx))
	binary.LittleEndian.PutUint16(b[12:14], uint16(p.ry))
	return b, nil
}

// step returns the part of v that fits in one report.
func step(v int) int16 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	}
	return int16(v)
}
