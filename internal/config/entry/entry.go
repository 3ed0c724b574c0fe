// Package entry implements typed, defaulted, observable configuration
// entries.
//
// An entry has a stable key, a value type fixed at construction, an
// immutable default and a current value. Setting a value validates it
// against the type's domain and notifies the entry's observer exactly once
// when, and only when, the stored value changes.
//
// Entries do no locking. They are meant to be used from the host's single
// control goroutine; callers that touch entries from several goroutines
// must serialize access themselves.
package entry

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/tweakreg/internal/input/chord"
)

// Spec declares an entry.
type Spec struct {
	// Key is the stable identifier (e.g., "tweakFastBlockPlacement").
	Key string

	// Type is the value type.
	Type Type

	// Default is the default value. Integers may be any Go integer kind.
	// Nil means the zero value of the type (the first option of an enum).
	Default any

	// Chord is the default key chord specification (e.g., "X,F").
	// Empty means unbound.
	Chord string

	// Description is the help text shown to users.
	Description string

	// DisplayName is the label shown to users. Derived from Key if empty.
	DisplayName string

	// Min and Max bound integer values (nil means unbounded).
	Min *int64
	Max *int64

	// Options lists the allowed values of an enum.
	Options []string

	// MaxLength limits string values in runes (0 means unlimited).
	MaxLength int
}

// Entry is a named, typed configuration value.
type Entry struct {
	key         string
	displayName string
	description string
	domain      domain

	def   any
	value any

	binding   *chord.Binding
	observer  Observer
	messenger Messenger
}

// New creates an entry from its declaration.
//
// Construction errors are programming errors in a static definition table:
// an empty key, a key too short to derive a display name, a default outside
// the type's domain, or a malformed default chord.
func New(spec Spec) (*Entry, error) {
	if strings.TrimSpace(spec.Key) == "" {
		return nil, &InvalidKeyError{Key: spec.Key, Reason: "key is empty"}
	}

	displayName := spec.DisplayName
	if displayName == "" {
		var err error
		displayName, err = DeriveDisplayName(spec.Key)
		if err != nil {
			return nil, err
		}
	}

	d := domain{
		typ:       spec.Type,
		min:       spec.Min,
		max:       spec.Max,
		options:   append([]string(nil), spec.Options...),
		maxLength: spec.MaxLength,
	}
	if err := validateDomain(spec, &d); err != nil {
		return nil, err
	}

	e := &Entry{
		key:         spec.Key,
		displayName: displayName,
		description: spec.Description,
		domain:      d,
	}

	initial := spec.Default
	if initial == nil {
		initial = d.zero()
	}
	def, err := e.validate(initial)
	if err != nil {
		return nil, fmt.Errorf("default value: %w", err)
	}
	e.def = def
	e.value = def

	c, err := chord.Parse(spec.Chord)
	if err != nil {
		return nil, fmt.Errorf("%s: default chord: %w", spec.Key, err)
	}
	e.binding = chord.NewBinding(c)
	if d.typ == TypeBool {
		e.binding.SetCallback(e.toggleWithMessage)
	}

	return e, nil
}

// MustNew creates an entry and panics on error.
// Useful for built-in definitions at init time.
func MustNew(spec Spec) *Entry {
	e, err := New(spec)
	if err != nil {
		panic(err)
	}
	return e
}

// validateDomain checks that the type's constraints are coherent.
func validateDomain(spec Spec, d *domain) error {
	switch d.typ {
	case TypeBool, TypeString:
	case TypeInt:
		if d.min != nil && d.max != nil && *d.min > *d.max {
			return fmt.Errorf("%w: %s: minimum %d greater than maximum %d", ErrInvalidSpec, spec.Key, *d.min, *d.max)
		}
	case TypeEnum:
		if len(d.options) == 0 {
			return fmt.Errorf("%w: %s: enum without options", ErrInvalidSpec, spec.Key)
		}
	default:
		return fmt.Errorf("%w: %s: unknown type %d", ErrInvalidSpec, spec.Key, d.typ)
	}
	return nil
}

// Key returns the stable identifier.
func (e *Entry) Key() string {
	return e.key
}

// Type returns the value type.
func (e *Entry) Type() Type {
	return e.domain.typ
}

// DisplayName returns the human-readable label.
func (e *Entry) DisplayName() string {
	return e.displayName
}

// Description returns the help text, possibly empty.
func (e *Entry) Description() string {
	return e.description
}

// Options returns the allowed values of an enum entry.
func (e *Entry) Options() []string {
	return append([]string(nil), e.domain.options...)
}

// Bounds returns the integer bounds (nil means unbounded).
func (e *Entry) Bounds() (minimum, maximum *int64) {
	return e.domain.min, e.domain.max
}

// Binding returns the entry's key binding. Entries declared without a chord
// have an unbound binding.
func (e *Entry) Binding() *chord.Binding {
	return e.binding
}

// Default returns the default value (bool, int64 or string).
func (e *Entry) Default() any {
	return e.def
}

// Get returns the current value (bool, int64 or string).
func (e *Entry) Get() any {
	return e.value
}

// GetBool returns the value of a boolean entry.
func (e *Entry) GetBool() (bool, error) {
	b, ok := e.value.(bool)
	if !ok {
		return false, &TypeError{Key: e.key, Expected: TypeBool, Actual: e.domain.typ}
	}
	return b, nil
}

// GetInt returns the value of an integer entry.
func (e *Entry) GetInt() (int64, error) {
	n, ok := e.value.(int64)
	if !ok {
		return 0, &TypeError{Key: e.key, Expected: TypeInt, Actual: e.domain.typ}
	}
	return n, nil
}

// GetString returns the value of a string or enum entry.
func (e *Entry) GetString() (string, error) {
	s, ok := e.value.(string)
	if !ok {
		return "", &TypeError{Key: e.key, Expected: TypeString, Actual: e.domain.typ}
	}
	return s, nil
}

// StringValue returns the current value as text.
func (e *Entry) StringValue() string {
	return format(e.value)
}

// SetObserver installs the observer, replacing any previous one.
// A nil observer clears the slot.
func (e *Entry) SetObserver(o Observer) {
	e.observer = o
}

// SetMessenger installs the receiver of toggle messages.
func (e *Entry) SetMessenger(m Messenger) {
	e.messenger = m
}

// Set validates and stores a value.
//
// A value of the wrong type or outside the domain is rejected with a
// *DomainError; the stored value is left unchanged and the observer is not
// called. If the value differs from the stored one it is stored and the
// observer is notified once. Setting the current value is a no-op.
func (e *Entry) Set(value any) error {
	v, err := e.validate(value)
	if err != nil {
		return err
	}
	e.store(v)
	return nil
}

// SetBool sets a boolean entry.
func (e *Entry) SetBool(v bool) error {
	return e.Set(v)
}

// SetInt sets an integer entry.
func (e *Entry) SetInt(v int64) error {
	return e.Set(v)
}

// SetString sets a string or enum entry.
func (e *Entry) SetString(v string) error {
	return e.Set(v)
}

// Reset restores the default value. The observer is notified only if the
// value actually changes.
func (e *Entry) Reset() {
	e.store(e.def)
}

// Toggle flips a boolean entry and returns the new value.
func (e *Entry) Toggle() (bool, error) {
	b, err := e.GetBool()
	if err != nil {
		return false, err
	}
	e.store(!b)
	return !b, nil
}

// IsModified reports whether the current value differs from the default.
func (e *Entry) IsModified() bool {
	return e.value != e.def
}

// IsModifiedFrom reports whether setting the entry from the textual
// candidate would leave it different from the default. It does not change
// the entry. An integer candidate that does not parse counts as modified.
func (e *Entry) IsModifiedFrom(candidate string) bool {
	v, err := e.domain.parseText(candidate)
	if err != nil {
		return true
	}
	return v != e.def
}

// ToSerializable returns the value in its persisted form: a bool, an int64
// or a string.
func (e *Entry) ToSerializable() any {
	return e.value
}

// FromSerializable sets the value from its persisted form.
//
// A value of the wrong kind, a non-integral number for an integer entry,
// or a value outside the domain is not applied: a warning is logged and the
// current value is kept. Errors are never returned, so a corrupt settings
// file cannot abort loading.
func (e *Entry) FromSerializable(value any, log zerolog.Logger) {
	v, err := e.domain.decode(value)
	if err == nil {
		err = e.domain.check(v)
	}
	if err != nil {
		warning := &DeserializeWarning{Key: e.key, Value: value, Reason: err.Error()}
		log.Warn().
			Str("key", e.key).
			Interface("value", value).
			Err(warning).
			Msg("failed to set config value from serialized form")
		return
	}
	e.store(v)
}

// validate normalizes a value and checks it against the domain.
func (e *Entry) validate(value any) (any, error) {
	v, err := e.domain.normalize(value)
	if err != nil {
		return nil, &DomainError{Key: e.key, Value: value, Message: err.Error(), Err: ErrTypeMismatch}
	}
	if err := e.domain.check(v); err != nil {
		return nil, &DomainError{Key: e.key, Value: value, Message: err.Error(), Err: ErrOutOfDomain}
	}
	return v, nil
}

// store writes an already validated value and notifies on change.
func (e *Entry) store(v any) {
	if v == e.value {
		return
	}
	e.value = v
	if e.observer != nil {
		e.observer.OnValueChange(e)
	}
}

// toggleWithMessage is the default chord action of boolean entries.
func (e *Entry) toggleWithMessage() {
	on, err := e.Toggle()
	if err != nil || e.messenger == nil {
		return
	}
	state := "OFF"
	if on {
		state = "ON"
	}
	e.messenger.Message(fmt.Sprintf("%s %s", e.displayName, state))
}

// String implements fmt.Stringer for diagnostics.
func (e *Entry) String() string {
	return fmt.Sprintf("%s=%s", e.key, format(e.value))
}
