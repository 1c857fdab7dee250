// Package keymap resolves protocol key names (KeyboardEvent.code style, e.g.
// "KeyA", "ShiftLeft") to USB HID keyboard usages.
//
// The vocabulary is part of the wire contract: adding or removing a name
// changes what senders can rely on.
package keymap

import "sort"

var codeToUsage = map[string]Usage{
	// Letters
	"KeyA": KeyA, "KeyB": KeyB, "KeyC": KeyC, "KeyD": KeyD,
	"KeyE": KeyE, "KeyF": KeyF, "KeyG": KeyG, "KeyH": KeyH,
	"KeyI": KeyI, "KeyJ": KeyJ, "KeyK": KeyK, "KeyL": KeyL,
	"KeyM": KeyM, "KeyN": KeyN, "KeyO": KeyO, "KeyP": KeyP,
	"KeyQ": KeyQ, "KeyR": KeyR, "KeyS": KeyS, "KeyT": KeyT,
	"KeyU": KeyU, "KeyV": KeyV, "KeyW": KeyW, "KeyX": KeyX,
	"KeyY": KeyY, "KeyZ": KeyZ,

	// Top-row digits
	"Digit0": Key0, "Digit1": Key1, "Digit2": Key2,
	"Digit3": Key3, "Digit4": Key4, "Digit5": Key5,
	"Digit6": Key6, "Digit7": Key7, "Digit8": Key8,
	"Digit9": Key9,

	// Function keys
	"F1": KeyF1, "F2": KeyF2, "F3": KeyF3, "F4": KeyF4,
	"F5": KeyF5, "F6": KeyF6, "F7": KeyF7, "F8": KeyF8,
	"F9": KeyF9, "F10": KeyF10, "F11": KeyF11, "F12": KeyF12,
	"F13": KeyF13, "F14": KeyF14, "F15": KeyF15, "F16": KeyF16,
	"F17": KeyF17, "F18": KeyF18, "F19": KeyF19, "F20": KeyF20,
	"F21": KeyF21, "F22": KeyF22, "F23": KeyF23, "F24": KeyF24,

	// Modifiers
	"ShiftLeft": KeyLeftShift, "ShiftRight": KeyRightShift,
	"ControlLeft": KeyLeftCtrl, "ControlRight": KeyRightCtrl,
	"AltLeft": KeyLeftAlt, "AltRight": KeyRightAlt,
	"MetaLeft": KeyLeftGUI, "MetaRight": KeyRightGUI,

	// Navigation
	"ArrowUp": KeyUp, "ArrowDown": KeyDown,
	"ArrowLeft": KeyLeft, "ArrowRight": KeyRight,
	"Home": KeyHome, "End": KeyEnd,
	"PageUp": KeyPageUp, "PageDown": KeyPageDown,
	"Insert": KeyInsert, "Delete": KeyDelete,

	// Editing
	"Backspace": KeyBackspace, "Tab": KeyTab, "Enter": KeyEnter,
	"Escape": KeyEscape, "CapsLock": KeyCapsLock,

	// Symbols (US layout)
	"Space": KeySpace,
	"Minus": KeyMinus, "Equal": KeyEqual,
	"BracketLeft": KeyLeftBrace, "BracketRight": KeyRightBrace,
	"Backslash": KeyBackslash, "Semicolon": KeySemicolon,
	"Quote": KeyApostrophe, "Backquote": KeyGrave,
	"Comma": KeyComma, "Period": KeyPeriod,
	"Slash": KeySlash,

	// Numpad
	"Numpad0": KeyKp0, "Numpad1": KeyKp1,
	"Numpad2": KeyKp2, "Numpad3": KeyKp3,
	"Numpad4": KeyKp4, "Numpad5": KeyKp5,
	"Numpad6": KeyKp6, "Numpad7": KeyKp7,
	"Numpad8": KeyKp8, "Numpad9": KeyKp9,
	"NumpadAdd": KeyKpPlus, "NumpadSubtract": KeyKpMinus,
	"NumpadMultiply": KeyKpAsterisk, "NumpadDivide": KeyKpSlash,
	"NumpadDecimal": KeyKpDot, "NumpadEnter": KeyKpEnter,

	// Locks & misc
	"NumLock": KeyNumLock, "ScrollLock": KeyScrollLock,
	"PrintScreen": KeyPrintScreen, "Pause": KeyPause,

	// Usually sits next to Enter; shares the Backslash key.
	"IntlBackslash": KeyBackslash,
}

// Names that are valid on the wire but have no injectable key. Pressing them
// is a no-op (IME toggles, JIS-only keys).
var unmapped = map[string]struct{}{
	"IntlRo":     {},
	"IntlYen":    {},
	"KanaMode":   {},
	"NonConvert": {},
	"Convert":    {},
	"HangulMode": {},
	"Hanja":      {},
}

var usageToCode = func() map[Usage]string {
	m := make(map[Usage]string, len(codeToUsage))
	for name, u := range codeToUsage {
		// IntlBackslash aliases Backslash; keep the canonical name.
		if name == "IntlBackslash" {
			continue
		}
		m[u] = name
	}
	return m
}()

// Resolve maps a key name to its HID usage. It reports false for unknown
// names and for recognized names that have no native key.
func Resolve(name string) (Usage, bool) {
	u, ok := codeToUsage[name]
	return u, ok
}

// IsRecognized reports whether name is part of the vocabulary, mapped or not.
func IsRecognized(name string) bool {
	if _, ok := codeToUsage[name]; ok {
		return true
	}
	_, ok := unmapped[name]
	return ok
}

// Name returns the canonical key name for u, or "" if u is not in the table.
func Name(u Usage) string { return usageToCode[u] }

// Names returns the mapped key names in sorted order.
func Names() []string {
	out := make([]string, 0, len(codeToUsage))
	for name := range codeToUsage {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// UnmappedNames returns the recognized names that resolve to no key, sorted.
func UnmappedNames() []string {
	out := make([]string, 0, len(unmapped))
	for name := range unmapped {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
