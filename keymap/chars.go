package keymap

// charToName maps printable ASCII (US layout) to the key name that produces it.
var charToName = map[byte]string{
	// Lowercase letters
	'a': "KeyA", 'b': "KeyB", 'c': "KeyC", 'd': "KeyD", 'e': "KeyE", 'f': "KeyF", 'g': "KeyG",
	'h': "KeyH", 'i': "KeyI", 'j': "KeyJ", 'k': "KeyK", 'l': "KeyL", 'm': "KeyM", 'n': "KeyN",
	'o': "KeyO", 'p': "KeyP", 'q': "KeyQ", 'r': "KeyR", 's': "KeyS", 't': "KeyT", 'u': "KeyU",
	'v': "KeyV", 'w': "KeyW", 'x': "KeyX", 'y': "KeyY", 'z': "KeyZ",

	// Uppercase letters (same keys, need shift)
	'A': "KeyA", 'B': "KeyB", 'C': "KeyC", 'D': "KeyD", 'E': "KeyE", 'F': "KeyF", 'G': "KeyG",
	'H': "KeyH", 'I': "KeyI", 'J': "KeyJ", 'K': "KeyK", 'L': "KeyL", 'M': "KeyM", 'N': "KeyN",
	'O': "KeyO", 'P': "KeyP", 'Q': "KeyQ", 'R': "KeyR", 'S': "KeyS", 'T': "KeyT", 'U': "KeyU",
	'V': "KeyV", 'W': "KeyW", 'X': "KeyX", 'Y': "KeyY", 'Z': "KeyZ",

	'1': "Digit1", '2': "Digit2", '3': "Digit3", '4': "Digit4", '5': "Digit5",
	'6': "Digit6", '7': "Digit7", '8': "Digit8", '9': "Digit9", '0': "Digit0",

	'!': "Digit1", '@': "Digit2", '#': "Digit3", '$': "Digit4", '%': "Digit5",
	'^': "Digit6", '&': "Digit7", '*': "Digit8", '(': "Digit9", ')': "Digit0",

	'-': "Minus", '=': "Equal", '[': "BracketLeft", ']': "BracketRight",
	'\\': "Backslash", ';': "Semicolon", '\'': "Quote", '`': "Backquote",
	',': "Comma", '.': "Period", '/': "Slash",

	'_': "Minus", '+': "Equal", '{': "BracketLeft", '}': "BracketRight",
	'|': "Backslash", ':': "Semicolon", '"': "Quote", '~': "Backquote",
	'<': "Comma", '>': "Period", '?': "Slash",

	' ':  "Space",
	'\n': "Enter",
	'\r': "Enter",
	'\t': "Tab",
	0x08: "Backspace",
	0x7F: "Backspace",
	0x1B: "Escape",
}

var shiftChars = map[byte]bool{
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,

	'!': true, '@': true, '#': true, '$': true, '%': true,
	'^': true, '&': true, '*': true, '(': true, ')': true,

	'_': true, '+': true, '{': true, '}': true, '|': true,
	':': true, '"': true, '~': true, '<': true, '>': true, '?': true,
}

// CharName returns the key name that types c on a US layout and whether
// ShiftLeft must be held. ok is false for characters with no key.
func CharName(c byte) (name string, shift bool, ok bool) {
	name, ok = charToName[c]
	return name, shiftChars[c], ok
}
