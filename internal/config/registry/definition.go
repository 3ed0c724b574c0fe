package registry

import (
	"github.com/dshills/tweakreg/internal/config/entry"
)

// Definition is one row of a declarative entry table.
type Definition struct {
	// Key is the stable identifier, unique within a registry.
	Key string

	// Type is the value type. The zero value is boolean.
	Type entry.Type

	// Default is the default value.
	Default any

	// Chord is the default key chord specification ("" for unbound).
	Chord string

	// Description is the help text.
	Description string

	// DisplayName overrides the label derived from Key.
	DisplayName string

	// Min and Max bound integer values.
	Min *int64
	Max *int64

	// Options lists the allowed values of an enum.
	Options []string

	// MaxLength limits string values in runes.
	MaxLength int

	// Tags group entries for filtering.
	Tags []string
}

// Toggle declares a boolean entry with a default chord.
func Toggle(key string, def bool, chord, description string) Definition {
	return Definition{
		Key:         key,
		Type:        entry.TypeBool,
		Default:     def,
		Chord:       chord,
		Description: description,
	}
}

// WithDisplayName sets an explicit display name.
func (d Definition) WithDisplayName(name string) Definition {
	d.DisplayName = name
	return d
}

// WithTags sets the tags.
func (d Definition) WithTags(tags ...string) Definition {
	d.Tags = tags
	return d
}

// Spec converts the definition into an entry declaration.
func (d Definition) Spec() entry.Spec {
	return entry.Spec{
		Key:         d.Key,
		Type:        d.Type,
		Default:     d.Default,
		Chord:       d.Chord,
		Description: d.Description,
		DisplayName: d.DisplayName,
		Min:         d.Min,
		Max:         d.Max,
		Options:     d.Options,
		MaxLength:   d.MaxLength,
	}
}
