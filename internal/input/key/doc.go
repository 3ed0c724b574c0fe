// Package key defines the physical key tokens used in chord specifications.
//
// A token is a named key such as "LSHIFT", "X" or "F3". Names follow the
// host's key naming, are matched case-insensitively and are always
// written back in their canonical upper-case spelling:
//
//   - Letters and digits: "A" .. "Z", "0" .. "9"
//   - Function keys: "F1" .. "F12"
//   - Modifiers: "LSHIFT", "RSHIFT", "LCONTROL", "RCONTROL", "LMENU", "RMENU", "LMETA", "RMETA"
//   - Navigation: "UP", "DOWN", "LEFT", "RIGHT", "HOME", "END", "PRIOR", "NEXT"
//   - Keypad: "NUMPAD0" .. "NUMPAD9"
//
// Common aliases ("LALT", "LCTRL", "ENTER", "ESC", "PGUP") resolve to the
// canonical token.
package key
