// Package registry holds the ordered collection of configuration entries.
//
// Entries are registered from declarative Definition rows, usually once at
// startup, and kept in declaration order for listing and serialization.
// Keys are unique within a registry.
//
// Like the entries it holds, a Registry does no locking.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/tweakreg/internal/config/entry"
)

// ErrDuplicateKey is returned when a key is registered twice.
var ErrDuplicateKey = errors.New("entry already registered")

// Registry maintains entries in declaration order, indexed by key.
type Registry struct {
	entries []*entry.Entry
	byKey   map[string]*entry.Entry
	tags    map[string][]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byKey: make(map[string]*entry.Entry),
		tags:  make(map[string][]string),
	}
}

// FromDefinitions creates a registry from a definition table.
// The first invalid or duplicate definition aborts construction.
func FromDefinitions(defs []Definition) (*Registry, error) {
	r := New()
	if err := r.RegisterAll(defs); err != nil {
		return nil, err
	}
	return r, nil
}

// NewWithDefaults creates a registry with the built-in feature toggles.
func NewWithDefaults() *Registry {
	r := New()
	for _, def := range Defaults() {
		r.MustRegister(def)
	}
	return r
}

// Register creates an entry from the definition and adds it.
func (r *Registry) Register(def Definition) (*entry.Entry, error) {
	if _, exists := r.byKey[def.Key]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, def.Key)
	}

	e, err := entry.New(def.Spec())
	if err != nil {
		return nil, fmt.Errorf("registering %q: %w", def.Key, err)
	}

	r.entries = append(r.entries, e)
	r.byKey[def.Key] = e
	if len(def.Tags) > 0 {
		r.tags[def.Key] = append([]string(nil), def.Tags...)
	}
	return e, nil
}

// MustRegister registers a definition and panics on error.
// Useful for registering built-in entries at init time.
func (r *Registry) MustRegister(def Definition) *entry.Entry {
	e, err := r.Register(def)
	if err != nil {
		panic(err)
	}
	return e
}

// RegisterAll registers every definition in order, stopping at the first error.
func (r *Registry) RegisterAll(defs []Definition) error {
	for _, def := range defs {
		if _, err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the entry for the given key, or nil if not registered.
func (r *Registry) Get(key string) *entry.Entry {
	return r.byKey[key]
}

// Has checks if a key is registered.
func (r *Registry) Has(key string) bool {
	_, exists := r.byKey[key]
	return exists
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// All returns all entries in declaration order.
func (r *Registry) All() []*entry.Entry {
	return slices.Clone(r.entries)
}

// Keys returns all keys in declaration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key()
	}
	return keys
}

// Tags returns the tags of an entry.
func (r *Registry) Tags(key string) []string {
	return slices.Clone(r.tags[key])
}

// Modified returns the entries whose value differs from the default.
func (r *Registry) Modified() []*entry.Entry {
	var result []*entry.Entry
	for _, e := range r.entries {
		if e.IsModified() {
			result = append(result, e)
		}
	}
	return result
}

// ByTag returns all entries with the given tag, in declaration order.
func (r *Registry) ByTag(tag string) []*entry.Entry {
	var result []*entry.Entry
	for _, e := range r.entries {
		if slices.Contains(r.tags[e.Key()], tag) {
			result = append(result, e)
		}
	}
	return result
}

// Search finds entries matching a query string (case-insensitive).
// Searches key, display name, description, and tags.
func (r *Registry) Search(query string) []*entry.Entry {
	query = strings.ToLower(query)
	var result []*entry.Entry
	for _, e := range r.entries {
		if r.matches(e, query) {
			result = append(result, e)
		}
	}
	return result
}

// matches checks if an entry matches a lower-cased search query.
func (r *Registry) matches(e *entry.Entry, query string) bool {
	if strings.Contains(strings.ToLower(e.Key()), query) ||
		strings.Contains(strings.ToLower(e.DisplayName()), query) ||
		strings.Contains(strings.ToLower(e.Description()), query) {
		return true
	}
	for _, tag := range r.tags[e.Key()] {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// ResetAll resets every entry to its default. Each entry notifies its
// observer only if its value changed.
func (r *Registry) ResetAll() {
	for _, e := range r.entries {
		e.Reset()
	}
}

// SetObserver installs the observer on every entry, replacing theirs.
func (r *Registry) SetObserver(o entry.Observer) {
	for _, e := range r.entries {
		e.SetObserver(o)
	}
}

// SetMessenger installs the toggle message receiver on every entry.
func (r *Registry) SetMessenger(m entry.Messenger) {
	for _, e := range r.entries {
		e.SetMessenger(m)
	}
}

// Snapshot returns the persisted form of every entry, keyed by entry key.
func (r *Registry) Snapshot() map[string]any {
	values := make(map[string]any, len(r.entries))
	for _, e := range r.entries {
		values[e.Key()] = e.ToSerializable()
	}
	return values
}

// Apply sets entries from persisted values.
//
// Keys absent from values are left as they are. Unknown keys are ignored.
// Malformed values are logged by the entry and skipped; Apply never fails.
func (r *Registry) Apply(values map[string]any, log zerolog.Logger) {
	for _, e := range r.entries {
		if v, ok := values[e.Key()]; ok {
			e.FromSerializable(v, log)
		}
	}

	for k := range values {
		if !r.Has(k) {
			log.Debug().Str("key", k).Msg("ignoring unknown config key")
		}
	}
}
