package robotgo

import (
	"github.com/remote-input/hidinject/keymap"
	"github.com/remote-input/hidinject/protocol"
)

var buttonNames = map[protocol.Button]string{
	protocol.ButtonLeft:   "left",
	protocol.ButtonMiddle: "center",
	protocol.ButtonRight:  "right",
}

// usageToKey maps HID usages to robotgo key names. Usages robotgo cannot
// toggle (Scroll Lock, Pause) are absent.
var usageToKey = map[keymap.Usage]string{
	keymap.KeyA: "a", keymap.KeyB: "b", keymap.KeyC: "c", keymap.KeyD: "d",
	keymap.KeyE: "e", keymap.KeyF: "f", keymap.KeyG: "g", keymap.KeyH: "h",
	keymap.KeyI: "i", keymap.KeyJ: "j", keymap.KeyK: "k", keymap.KeyL: "l",
	keymap.KeyM: "m", keymap.KeyN: "n", keymap.KeyO: "o", keymap.KeyP: "p",
	keymap.KeyQ: "q", keymap.KeyR: "r", keymap.KeyS: "s", keymap.KeyT: "t",
	keymap.KeyU: "u", keymap.KeyV: "v", keymap.KeyW: "w", keymap.KeyX: "x",
	keymap.KeyY: "y", keymap.KeyZ: "z",

	keymap.Key1: "1", keymap.Key2: "2", keymap.Key3: "3", keymap.Key4: "4", keymap.Key5: "5",
	keymap.Key6: "6", keymap.Key7: "7", keymap.Key8: "8", keymap.Key9: "9", keymap.Key0: "0",

	keymap.KeyEnter:      "enter",
	keymap.KeyEscape:     "esc",
	keymap.KeyBackspace:  "backspace",
	keymap.KeyTab:        "tab",
	keymap.KeySpace:      "space",
	keymap.KeyMinus:      "-",
	keymap.KeyEqual:      "=",
	keymap.KeyLeftBrace:  "[",
	keymap.KeyRightBrace: "]",
	keymap.KeyBackslash:  "\\",
	keymap.KeySemicolon:  ";",
	keymap.KeyApostrophe: "'",
	keymap.KeyGrave:      "`",
	keymap.KeyComma:      ",",
	keymap.KeyPeriod:     ".",
	keymap.KeySlash:      "/",
	keymap.KeyCapsLock:   "capslock",

	keymap.KeyF1: "f1", keymap.KeyF2: "f2", keymap.KeyF3: "f3", keymap.KeyF4: "f4",
	keymap.KeyF5: "f5", keymap.KeyF6: "f6", keymap.KeyF7: "f7", keymap.KeyF8: "f8",
	keymap.KeyF9: "f9", keymap.KeyF10: "f10", keymap.KeyF11: "f11", keymap.KeyF12: "f12",
	keymap.KeyF13: "f13", keymap.KeyF14: "f14", keymap.KeyF15: "f15", keymap.KeyF16: "f16",
	keymap.KeyF17: "f17", keymap.KeyF18: "f18", keymap.KeyF19: "f19", keymap.KeyF20: "f20",
	keymap.KeyF21: "f21", keymap.KeyF22: "f22", keymap.KeyF23: "f23", keymap.KeyF24: "f24",

	keymap.KeyPrintScreen: "printscreen",
	keymap.KeyInsert:      "insert",
	keymap.KeyHome:        "home",
	keymap.KeyPageUp:      "pageup",
	keymap.KeyDelete:      "delete",
	keymap.KeyEnd:         "end",
	keymap.KeyPageDown:    "pagedown",

	keymap.KeyRight: "right",
	keymap.KeyLeft:  "left",
	keymap.KeyDown:  "down",
	keymap.KeyUp:    "up",

	keymap.KeyNumLock:    "num_lock",
	keymap.KeyKpSlash:    "num/",
	keymap.KeyKpAsterisk: "num*",
	keymap.KeyKpMinus:    "num-",
	keymap.KeyKpPlus:     "num+",
	keymap.KeyKpEnter:    "num_enter",
	keymap.KeyKp1:        "num1",
	keymap.KeyKp2:        "num2",
	keymap.KeyKp3:        "num3",
	keymap.KeyKp4:        "num4",
	keymap.KeyKp5:        "num5",
	keymap.KeyKp6:        "num6",
	keymap.KeyKp7:        "num7",
	keymap.KeyKp8:        "num8",
	keymap.KeyKp9:        "num9",
	keymap.KeyKp0:        "num0",
	keymap.KeyKpDot:      "num.",

	keymap.KeyLeftCtrl:   "lctrl",
	keymap.KeyLeftShift:  "lshift",
	keymap.KeyLeftAlt:    "lalt",
	keymap.KeyLeftGUI:    "lcmd",
	keymap.KeyRightCtrl:  "rctrl",
	keymap.KeyRightShift: "rshift",
	keymap.KeyRightAlt:   "ralt",
	keymap.KeyRightGUI:   "rcmd",
}

// KeyName returns the robotgo key name for u.
func KeyName(u keymap.Usage) (string, bool) {
	name, ok := usageToKey[u]
	return name, ok
}
