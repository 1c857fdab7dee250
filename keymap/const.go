package keymap

import "fmt"

// Usage is a USB HID keyboard usage code (usage page 0x07). It is the native
// key identifier handed to injection backends.
type Usage uint8

// String returns the usage as a hex literal, e.g. "0x04".
func (u Usage) String() string { return fmt.Sprintf("0x%02X", uint8(u)) }

// Modifier key bitmasks as laid out in the HID boot keyboard report.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08 // Windows/Command key
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// HID usage codes for the keys the protocol vocabulary covers.
const (
	UsageNone Usage = 0x00

	// Letters A-Z
	KeyA Usage = 0x04
	KeyB Usage = 0x05
	KeyC Usage = 0x06
	KeyD Usage = 0x07
	KeyE Usage = 0x08
	KeyF Usage = 0x09
	KeyG Usage = 0x0A
	KeyH Usage = 0x0B
	KeyI Usage = 0x0C
	KeyJ Usage = 0x0D
	KeyK Usage = 0x0E
	KeyL Usage = 0x0F
	KeyM Usage = 0x10
	KeyN Usage = 0x11
	KeyO Usage = 0x12
	KeyP Usage = 0x13
	KeyQ Usage = 0x14
	KeyR Usage = 0x15
	KeyS Usage = 0x16
	KeyT Usage = 0x17
	KeyU Usage = 0x18
	KeyV Usage = 0x19
	KeyW Usage = 0x1A
	KeyX Usage = 0x1B
	KeyY Usage = 0x1C
	KeyZ Usage = 0x1D

	// Top row digits
	Key1 Usage = 0x1E
	Key2 Usage = 0x1F
	Key3 Usage = 0x20
	Key4 Usage = 0x21
	Key5 Usage = 0x22
	Key6 Usage = 0x23
	Key7 Usage = 0x24
	Key8 Usage = 0x25
	Key9 Usage = 0x26
	Key0 Usage = 0x27

	KeyEnter      Usage = 0x28
	KeyEscape     Usage = 0x29
	KeyBackspace  Usage = 0x2A
	KeyTab        Usage = 0x2B
	KeySpace      Usage = 0x2C
	KeyMinus      Usage = 0x2D // - and _
	KeyEqual      Usage = 0x2E // = and +
	KeyLeftBrace  Usage = 0x2F // [ and {
	KeyRightBrace Usage = 0x30 // ] and }
	KeyBackslash  Usage = 0x31 // \ and |
	KeySemicolon  Usage = 0x33 // ; and :
	KeyApostrophe Usage = 0x34 // ' and "
	KeyGrave      Usage = 0x35 // ` and ~
	KeyComma      Usage = 0x36 // , and <
	KeyPeriod     Usage = 0x37 // . and >
	KeySlash      Usage = 0x38 // / and ?
	KeyCapsLock   Usage = 0x39

	KeyF1  Usage = 0x3A
	KeyF2  Usage = 0x3B
	KeyF3  Usage = 0x3C
	KeyF4  Usage = 0x3D
	KeyF5  Usage = 0x3E
	KeyF6  Usage = 0x3F
	KeyF7  Usage = 0x40
	KeyF8  Usage = 0x41
	KeyF9  Usage = 0x42
	KeyF10 Usage = 0x43
	KeyF11 Usage = 0x44
	KeyF12 Usage = 0x45

	KeyPrintScreen Usage = 0x46
	KeyScrollLock  Usage = 0x47
	KeyPause       Usage = 0x48
	KeyInsert      Usage = 0x49
	KeyHome        Usage = 0x4A
	KeyPageUp      Usage = 0x4B
	KeyDelete      Usage = 0x4C
	KeyEnd         Usage = 0x4D
	KeyPageDown    Usage = 0x4E

	KeyRight Usage = 0x4F
	KeyLeft  Usage = 0x50
	KeyDown  Usage = 0x51
	KeyUp    Usage = 0x52

	// Numpad
	KeyNumLock    Usage = 0x53
	KeyKpSlash    Usage = 0x54
	KeyKpAsterisk Usage = 0x55
	KeyKpMinus    Usage = 0x56
	KeyKpPlus     Usage = 0x57
	KeyKpEnter    Usage = 0x58
	KeyKp1        Usage = 0x59
	KeyKp2        Usage = 0x5A
	KeyKp3        Usage = 0x5B
	KeyKp4        Usage = 0x5C
	KeyKp5        Usage = 0x5D
	KeyKp6        Usage = 0x5E
	KeyKp7        Usage = 0x5F
	KeyKp8        Usage = 0x60
	KeyKp9        Usage = 0x61
	KeyKp0        Usage = 0x62
	KeyKpDot      Usage = 0x63

	KeyF13 Usage = 0x68
	KeyF14 Usage = 0x69
	KeyF15 Usage = 0x6A
	KeyF16 Usage = 0x6B
	KeyF17 Usage = 0x6C
	KeyF18 Usage = 0x6D
	KeyF19 Usage = 0x6E
	KeyF20 Usage = 0x6F
	KeyF21 Usage = 0x70
	KeyF22 Usage = 0x71
	KeyF23 Usage = 0x72
	KeyF24 Usage = 0x73

	// Modifiers. These travel in the report's modifier byte, not the key array.
	KeyLeftCtrl   Usage = 0xE0
	KeyLeftShift  Usage = 0xE1
	KeyLeftAlt    Usage = 0xE2
	KeyLeftGUI    Usage = 0xE3
	KeyRightCtrl  Usage = 0xE4
	KeyRightShift Usage = 0xE5
	KeyRightAlt   Usage = 0xE6
	KeyRightGUI   Usage = 0xE7
)

// IsModifier reports whether u is one of the eight modifier usages.
func IsModifier(u Usage) bool { return u >= KeyLeftCtrl && u <= KeyRightGUI }

// ModifierBit returns the modifier byte bit for u, or 0 if u is not a modifier.
func ModifierBit(u Usage) uint8 {
	if !IsModifier(u) {
		return 0
	}
	return 1 << (u - KeyLeftCtrl)
}
