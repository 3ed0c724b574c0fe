package chord

import (
	"errors"
	"fmt"
)

// Parse errors
var (
	ErrInvalidToken      = errors.New("invalid key token")
	ErrDuplicateModifier = errors.New("duplicate modifier")
)

// InvalidTokenError reports a token that does not name a known key.
type InvalidTokenError struct {
	// Token is the offending token as written.
	Token string
	// Spec is the full chord specification.
	Spec string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid key token %q in chord %q", e.Token, e.Spec)
}

func (e *InvalidTokenError) Unwrap() error {
	return ErrInvalidToken
}

// DuplicateModifierError reports a key that appears more than once in a chord.
type DuplicateModifierError struct {
	// Token is the canonical name of the repeated key.
	Token string
	// Spec is the full chord specification.
	Spec string
}

func (e *DuplicateModifierError) Error() string {
	return fmt.Sprintf("duplicate modifier %s in chord %q", e.Token, e.Spec)
}

func (e *DuplicateModifierError) Unwrap() error {
	return ErrDuplicateModifier
}
