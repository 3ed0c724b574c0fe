package entry

import (
	"errors"
	"fmt"
)

// Errors returned by entry operations.
var (
	// ErrInvalidKey indicates a key that cannot identify an entry.
	ErrInvalidKey = errors.New("invalid entry key")

	// ErrTypeMismatch indicates the value's Go type doesn't match the entry type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfDomain indicates a well-typed value outside the entry's domain.
	ErrOutOfDomain = errors.New("value out of domain")

	// ErrInvalidSpec indicates a malformed entry declaration.
	ErrInvalidSpec = errors.New("invalid entry spec")
)

// InvalidKeyError is returned when an entry is declared with an unusable key.
type InvalidKeyError struct {
	// Key is the offending key.
	Key string
	// Reason describes why the key was rejected.
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %q: %s", e.Key, e.Reason)
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}

// DomainError is returned when a value is rejected by Set or at construction.
// It unwraps to ErrTypeMismatch or ErrOutOfDomain.
type DomainError struct {
	// Key is the entry key.
	Key string
	// Value is the rejected value.
	Value any
	// Message describes the failure.
	Message string
	// Err is ErrTypeMismatch or ErrOutOfDomain.
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Key, e.Message, e.Value)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// DeserializeWarning describes a persisted value that could not be applied.
// It is logged, never returned to callers of FromSerializable.
type DeserializeWarning struct {
	// Key is the entry key.
	Key string
	// Value is the raw persisted value.
	Value any
	// Reason describes the failure.
	Reason string
}

func (w *DeserializeWarning) Error() string {
	return fmt.Sprintf("cannot set %s from %v: %s", w.Key, w.Value, w.Reason)
}

// TypeError is returned by the typed getters when the entry has another type.
type TypeError struct {
	// Key is the entry key.
	Key string
	// Expected is the requested type.
	Expected Type
	// Actual is the entry's type.
	Actual Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Key, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
