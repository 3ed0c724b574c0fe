// Package chord parses and matches multi-key chords.
//
// A chord specification is a comma-separated list of key tokens:
//
//	"LSHIFT,X,F"  - modifiers LSHIFT and X, primary key F
//	"X,C"         - modifier X, primary key C
//	"F3"          - no modifiers, primary key F3
//	""            - unbound, never matches
//
// Every token except the last is a modifier, in the order written. The last
// token is the primary key. A key may appear only once in a chord.
package chord

import (
	"strings"

	"github.com/dshills/tweakreg/internal/input/key"
)

// separator joins tokens in a chord specification.
const separator = ","

// Chord is an immutable combination of modifier keys and a primary key.
// The zero value is the unbound chord.
type Chord struct {
	modifiers []key.Token
	primary   key.Token
}

// Unbound is the chord that never matches any input.
var Unbound = Chord{}

// Parse parses a chord specification.
// Empty or whitespace-only input yields the unbound chord.
func Parse(spec string) (Chord, error) {
	if strings.TrimSpace(spec) == "" {
		return Unbound, nil
	}

	parts := strings.Split(spec, separator)
	tokens := make([]key.Token, 0, len(parts))
	seen := make(map[key.Token]bool, len(parts))

	for _, part := range parts {
		tok, ok := key.Lookup(part)
		if !ok {
			return Unbound, &InvalidTokenError{Token: strings.TrimSpace(part), Spec: spec}
		}
		if seen[tok] {
			return Unbound, &DuplicateModifierError{Token: tok.String(), Spec: spec}
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}

	last := len(tokens) - 1
	c := Chord{primary: tokens[last]}
	if last > 0 {
		c.modifiers = tokens[:last:last]
	}
	return c, nil
}

// MustParse parses a chord specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid chord specification: " + err.Error())
	}
	return c
}

// Modifiers returns a copy of the modifier keys in order.
func (c Chord) Modifiers() []key.Token {
	if len(c.modifiers) == 0 {
		return nil
	}
	result := make([]key.Token, len(c.modifiers))
	copy(result, c.modifiers)
	return result
}

// Primary returns the primary key, or key.None for the unbound chord.
func (c Chord) Primary() key.Token {
	return c.primary
}

// IsBound returns true if the chord has a primary key.
func (c Chord) IsBound() bool {
	return c.primary != key.None
}

// Keys returns the modifiers followed by the primary key.
func (c Chord) Keys() []key.Token {
	if !c.IsBound() {
		return nil
	}
	keys := make([]key.Token, 0, len(c.modifiers)+1)
	keys = append(keys, c.modifiers...)
	return append(keys, c.primary)
}

// Equal reports whether two chords have the same keys in the same order.
func (c Chord) Equal(other Chord) bool {
	if c.primary != other.primary || len(c.modifiers) != len(other.modifiers) {
		return false
	}
	for i, m := range c.modifiers {
		if other.modifiers[i] != m {
			return false
		}
	}
	return true
}

// Serialize formats the chord as a specification that Parse accepts.
// The unbound chord serializes to the empty string.
func (c Chord) Serialize() string {
	if !c.IsBound() {
		return ""
	}
	names := make([]string, 0, len(c.modifiers)+1)
	for _, m := range c.modifiers {
		names = append(names, m.String())
	}
	names = append(names, c.primary.String())
	return strings.Join(names, separator)
}

// String implements fmt.Stringer.
func (c Chord) String() string {
	return c.Serialize()
}

// Matches reports whether the held keys trigger the chord.
// The held keys must be exactly the chord's keys, and the primary key must
// be the most recently pressed (last) one. Modifier order is not checked.
// The unbound chord never matches.
func (c Chord) Matches(held []key.Token) bool {
	if !c.IsBound() || len(held) != len(c.modifiers)+1 {
		return false
	}
	if held[len(held)-1] != c.primary {
		return false
	}

	pending := make(map[key.Token]bool, len(c.modifiers))
	for _, m := range c.modifiers {
		pending[m] = true
	}
	for _, h := range held[:len(held)-1] {
		if !pending[h] {
			return false
		}
		delete(pending, h)
	}
	return len(pending) == 0
}
