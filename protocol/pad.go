package protocol

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

// PadButtons is the gamepad button mask as sent on the wire.
type PadButtons uint32

const (
	PadA PadButtons = 1 << iota
	PadB
	PadX
	PadY
	PadLeftShoulder
	PadRightShoulder
	PadBack
	PadStart
	PadLeftThumb
	PadRightThumb
	PadDPadUp
	PadDPadDown
	PadDPadLeft
	PadDPadRight
)

var padButtonNames = map[string]PadButtons{
	"a": PadA, "b": PadB, "x": PadX, "y": PadY,
	"lb": PadLeftShoulder, "rb": PadRightShoulder,
	"back": PadBack, "start": PadStart,
	"ls": PadLeftThumb, "rs": PadRightThumb,
	"up": PadDPadUp, "down": PadDPadDown, "left": PadDPadLeft, "right": PadDPadRight,
}

// PadButtonNames lists the names ParsePadButtons accepts, sorted.
func PadButtonNames() []string {
	names := make([]string, 0, len(padButtonNames))
	for n := range padButtonNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParsePadButtons ORs together the named buttons.
func ParsePadButtons(names []string) (PadButtons, error) {
	var mask PadButtons
	for _, n := range names {
		b, ok := padButtonNames[strings.ToLower(n)]
		if !ok {
			return 0, fmt.Errorf("unknown pad button %q (valid: %s)", n, strings.Join(PadButtonNames(), ", "))
		}
		mask |= b
	}
	return mask, nil
}

// Pad is the full state of one gamepad. Every packet replaces the previous
// state; there is no delta encoding.
type Pad struct {
	LX, LY  int16
	RX, RY  int16
	LT, RT  uint8
	Buttons PadButtons
}

func (Pad) isEvent()      {}
func (Pad) Opcode() uint8 { return OpPad }
func (p Pad) String() string {
	return fmt.Sprintf("pad(l=%d,%d r=%d,%d t=%d,%d buttons=%#x)", p.LX, p.LY, p.RX, p.RY, p.LT, p.RT, uint32(p.Buttons))
}

// MarshalBinary encodes the pad state as a 16-byte packet.
func (p Pad) MarshalBinary() ([]byte, error) {
	b := make([]byte, padSize)
	b[0], b[1] = Version, OpPad
	binary.LittleEndian.PutUint16(b[2:4], uint16(p.LX))
	binary.LittleEndian.PutUint16(b[4:6], uint16(p.LY))
	binary.LittleEndian.PutUint16(b[6:8], uint16(p.RX))
	binary.LittleEndian.PutUint16(b[8:10], uint16(p.RY))
	b[10], b[11] = p.LT, p.RT
	binary.LittleEndian.PutUint32(b[12:16], uint32(p.Buttons))
	return b, nil
}

// DecodePad decodes a gamepad packet. Keyboard and mouse opcodes are not
// accepted here, just as Decode rejects OpPad. Errors wrap ErrIgnored.
func DecodePad(buf []byte) (Event, error) {
	if len(buf) < headerSize {
		return nil, ErrTruncated
	}
	if buf[0] != Version {
		return nil, ErrVersion
	}
	if buf[1] != OpPad {
		return nil, ErrOpcode
	}
	if len(buf) < padSize {
		return nil, ErrTruncated
	}
	return Pad{
		LX:      int16(binary.LittleEndian.Uint16(buf[2:4])),
		LY:      int16(binary.LittleEndian.Uint16(buf[4:6])),
		RX:      int16(binary.LittleEndian.Uint16(buf[6:8])),
		RY:      int16(binary.LittleEndian.Uint16(buf[8:10])),
		LT:      buf[10],
		RT:      buf[11],
		Buttons: PadButtons(binary.LittleEndian.Uint32(buf[12:16])),
	}, nil
}
