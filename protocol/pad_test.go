package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remote-input/hidinject/protocol"
)

func TestDecodePad(t *testing.T) {
	full := []byte{
		0x01, 0x10,
		0x00, 0x80, // lx -32768
		0xFF, 0x7F, // ly 32767
		0x01, 0x00, // rx 1
		0xFE, 0xFF, // ry -2
		0x10, 0xFF, // lt, rt
		0x81, 0x20, 0x00, 0x00, // A | Start | DPadDown
	}
	type testCase struct {
		name        string
		input       []byte
		expected    protocol.Event
		expectedErr error
	}
	cases := []testCase{
		{
			name:  "full state",
			input: full,
			expected: protocol.Pad{
				LX: -32768, LY: 32767, RX: 1, RY: -2, LT: 0x10, RT: 0xFF,
				Buttons: protocol.PadA | protocol.PadStart | protocol.PadDPadDown,
			},
		},
		{name: "one byte short", input: full[:15], expectedErr: protocol.ErrTruncated},
		{name: "header only", input: full[:2], expectedErr: protocol.ErrTruncated},
		{name: "empty", input: nil, expectedErr: protocol.ErrTruncated},
		{name: "wrong version", input: append([]byte{0x02}, full[1:]...), expectedErr: protocol.ErrVersion},
		{name: "keyboard opcode", input: []byte{0x01, 0x01, 0, 0, 0, 0}, expectedErr: protocol.ErrOpcode},
		{name: "trailing bytes tolerated", input: append(append([]byte(nil), full...), 0xAA), expected: protocol.Pad{
			LX: -32768, LY: 32767, RX: 1, RY: -2, LT: 0x10, RT: 0xFF,
			Buttons: protocol.PadA | protocol.PadStart | protocol.PadDPadDown,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := protocol.DecodePad(tc.input)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.ErrorIs(t, err, protocol.ErrIgnored)
				assert.Nil(t, ev)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ev)
		})
	}
}

func TestDecodeRejectsPadOpcode(t *testing.T) {
	b, err := protocol.Pad{LX: 5}.MarshalBinary()
	require.NoError(t, err)
	_, err = protocol.Decode(b)
	assert.ErrorIs(t, err, protocol.ErrOpcode)
}

func TestPadRoundTrip(t *testing.T) {
	p := protocol.Pad{LX: -1, LY: 2, RX: -300, RY: 400, LT: 1, RT: 2, Buttons: protocol.PadY | protocol.PadRightThumb}
	b, err := protocol.Encode(p)
	require.NoError(t, err)
	assert.Len(t, b, 16)
	got, err := protocol.DecodePad(b)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParsePadButtons(t *testing.T) {
	mask, err := protocol.ParsePadButtons([]string{"A", "lb", "right"})
	require.NoError(t, err)
	assert.Equal(t, protocol.PadA|protocol.PadLeftShoulder|protocol.PadDPadRight, mask)

	mask, err = protocol.ParsePadButtons(nil)
	require.NoError(t, err)
	assert.Zero(t, mask)

	_, err = protocol.ParsePadButtons([]string{"guide"})
	assert.ErrorContains(t, err, `unknown pad button "guide"`)
	assert.Len(t, protocol.PadButtonNames(), 14)
}
