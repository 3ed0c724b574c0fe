package entry

import (
	"strings"
	"unicode"
)

// DisplayPrefixLen is the length of the category tag ("tweak") stripped
// from a key before deriving its display name.
const DisplayPrefixLen = 5

// DeriveDisplayName strips the category prefix from key and splits the
// rest into words: "tweakFastBlockPlacement" becomes "Fast Block Placement".
func DeriveDisplayName(key string) (string, error) {
	runes := []rune(key)
	if len(runes) < DisplayPrefixLen {
		return "", &InvalidKeyError{
			Key:    key,
			Reason: "too short to derive a display name",
		}
	}
	return SplitCamelCase(string(runes[DisplayPrefixLen:])), nil
}

// SplitCamelCase inserts spaces at case boundaries:
//
//	"NoLightUpdates"  -> "No Light Updates"
//	"HTMLParser"      -> "HTML Parser"
//	"F3Screen"        -> "F 3 Screen"
//
// A boundary falls between a lower-case (or other non-upper) rune and an
// upper-case rune, before the last upper-case rune of a run that is
// followed by a lower-case rune, after a letter followed by a non-letter,
// and before an upper-case letter that follows a non-letter.
func SplitCamelCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i, r := range runes {
		if i > 0 && isBoundary(runes[i-1], r, runes[i+1:]) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isBoundary(prev, cur rune, rest []rune) bool {
	prevUpper := unicode.IsUpper(prev)
	curUpper := unicode.IsUpper(cur)

	// "HTMLParser": split before the P of "Pa".
	if prevUpper && curUpper && len(rest) > 0 && unicode.IsLower(rest[0]) {
		return true
	}
	if !prevUpper && curUpper && unicode.IsLetter(prev) {
		return true
	}
	if unicode.IsLetter(prev) && !unicode.IsLetter(cur) {
		return !unicode.IsSpace(cur)
	}
	// "F3Screen": split before the S, but not before the d of "3d".
	if !unicode.IsLetter(prev) && curUpper {
		return !unicode.IsSpace(prev)
	}
	return false
}
