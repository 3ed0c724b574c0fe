package key

import (
	"fmt"
	"strings"
)

// Token identifies a physical key.
type Token uint16

const (
	// None represents no key.
	None Token = iota

	// Letters
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	// Digits
	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// Modifier keys
	LShift
	RShift
	LControl
	RControl
	LMenu
	RMenu
	LMeta
	RMeta

	// Special keys
	Space
	Return
	Escape
	Tab
	Back
	Delete
	Insert
	Home
	End
	Prior
	Next
	Up
	Down
	Left
	Right
	Capital

	// Keypad keys
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9

	// Punctuation
	Comma
	Period
	Minus
	Equals
	Slash
	Semicolon
	Apostrophe
	LBracket
	RBracket
	Backslash
	Grave

	tokenCount
)

// tokenNames holds the canonical name of every token, indexed by Token.
var tokenNames = [tokenCount]string{
	None: "NONE",
	A:    "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H", I: "I",
	J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P", Q: "Q", R: "R",
	S: "S", T: "T", U: "U", V: "V", W: "W", X: "X", Y: "Y", Z: "Z",
	Num0: "0", Num1: "1", Num2: "2", Num3: "3", Num4: "4",
	Num5: "5", Num6: "6", Num7: "7", Num8: "8", Num9: "9",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	LShift:   "LSHIFT",
	RShift:   "RSHIFT",
	LControl: "LCONTROL",
	RControl: "RCONTROL",
	LMenu:    "LMENU",
	RMenu:    "RMENU",
	LMeta:    "LMETA",
	RMeta:    "RMETA",
	Space:    "SPACE",
	Return:   "RETURN",
	Escape:   "ESCAPE",
	Tab:      "TAB",
	Back:     "BACK",
	Delete:   "DELETE",
	Insert:   "INSERT",
	Home:     "HOME",
	End:      "END",
	Prior:    "PRIOR",
	Next:     "NEXT",
	Up:       "UP",
	Down:     "DOWN",
	Left:     "LEFT",
	Right:    "RIGHT",
	Capital:  "CAPITAL",
	Numpad0:  "NUMPAD0", Numpad1: "NUMPAD1", Numpad2: "NUMPAD2", Numpad3: "NUMPAD3",
	Numpad4: "NUMPAD4", Numpad5: "NUMPAD5", Numpad6: "NUMPAD6", Numpad7: "NUMPAD7",
	Numpad8: "NUMPAD8", Numpad9: "NUMPAD9",
	Comma:      "COMMA",
	Period:     "PERIOD",
	Minus:      "MINUS",
	Equals:     "EQUALS",
	Slash:      "SLASH",
	Semicolon:  "SEMICOLON",
	Apostrophe: "APOSTROPHE",
	LBracket:   "LBRACKET",
	RBracket:   "RBRACKET",
	Backslash:  "BACKSLASH",
	Grave:      "GRAVE",
}

// aliases maps alternative spellings (upper case) to tokens.
var aliases = map[string]Token{
	"LALT":      LMenu,
	"RALT":      RMenu,
	"LCTRL":     LControl,
	"RCTRL":     RControl,
	"LSUPER":    LMeta,
	"RSUPER":    RMeta,
	"LWIN":      LMeta,
	"RWIN":      RMeta,
	"ENTER":     Return,
	"ESC":       Escape,
	"BACKSPACE": Back,
	"DEL":       Delete,
	"INS":       Insert,
	"PGUP":      Prior,
	"PAGEUP":    Prior,
	"PGDN":      Next,
	"PAGEDOWN":  Next,
	"CAPSLOCK":  Capital,
}

// nameMap maps canonical names and aliases to tokens.
var nameMap = buildNameMap()

func buildNameMap() map[string]Token {
	m := make(map[string]Token, len(tokenNames)+len(aliases))
	for t := A; t < tokenCount; t++ {
		m[tokenNames[t]] = t
	}
	for name, t := range aliases {
		m[name] = t
	}
	return m
}

// Lookup returns the token for a key name (case-insensitive).
// The second result is false if the name is not recognized.
// "NONE" is not a valid key name.
func Lookup(name string) (Token, bool) {
	t, ok := nameMap[strings.ToUpper(strings.TrimSpace(name))]
	return t, ok
}

// String returns the canonical name of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("Token(%d)", t)
}

// IsValid returns true for any real key (not None, not out of range).
func (t Token) IsValid() bool {
	return t > None && t < tokenCount
}

// IsModifier returns true for the shift, control, menu and meta keys.
func (t Token) IsModifier() bool {
	return t >= LShift && t <= RMeta
}

// IsLetter returns true for A-Z.
func (t Token) IsLetter() bool {
	return t >= A && t <= Z
}

// IsFunctionKey returns true for F1-F12.
func (t Token) IsFunctionKey() bool {
	return t >= F1 && t <= F12
}

// All returns every valid token in declaration order.
func All() []Token {
	result := make([]Token, 0, tokenCount-1)
	for t := A; t < tokenCount; t++ {
		result = append(result, t)
	}
	return result
}
