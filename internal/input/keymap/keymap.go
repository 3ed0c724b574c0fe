package keymap

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/tweakreg/internal/input/chord"
	"github.com/dshills/tweakreg/internal/input/key"
)

// ErrDuplicateName is returned when a binding name is added twice.
var ErrDuplicateName = errors.New("binding name already in keymap")

// Named is a binding together with the name it was added under.
type Named struct {
	Name    string
	Binding *chord.Binding
}

// Conflict is a pair of bindings sharing the same bound chord.
type Conflict struct {
	First  string
	Second string
	Chord  chord.Chord
}

// String returns a readable description of the conflict.
func (c Conflict) String() string {
	return fmt.Sprintf("%s and %s both bound to %s", c.First, c.Second, c.Chord)
}

// Keymap holds named bindings in registration order.
type Keymap struct {
	bindings []Named
	byName   map[string]*chord.Binding
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{
		byName: make(map[string]*chord.Binding),
	}
}

// Add adds a binding under a unique name.
func (k *Keymap) Add(name string, b *chord.Binding) error {
	if b == nil {
		return fmt.Errorf("binding %q is nil", name)
	}
	if _, exists := k.byName[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	k.bindings = append(k.bindings, Named{Name: name, Binding: b})
	k.byName[name] = b
	return nil
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Bindings returns all bindings in registration order.
func (k *Keymap) Bindings() []Named {
	result := make([]Named, len(k.bindings))
	copy(result, k.bindings)
	return result
}

// Lookup returns the binding added under name, or nil.
func (k *Keymap) Lookup(name string) *chord.Binding {
	return k.byName[name]
}

// Match returns the names of bindings whose current chord matches the
// held keys, without triggering them.
func (k *Keymap) Match(held []key.Token) []string {
	var names []string
	for _, nb := range k.bindings {
		if nb.Binding.Chord().Matches(held) {
			names = append(names, nb.Name)
		}
	}
	return names
}

// Dispatch triggers every binding matching the held keys and returns the
// names of the bindings that ran an action, in registration order.
func (k *Keymap) Dispatch(held []key.Token) []string {
	var fired []string
	for _, name := range k.Match(held) {
		if k.byName[name].Trigger() {
			fired = append(fired, name)
		}
	}
	return fired
}

// Conflicts returns every pair of bindings whose current chords are bound
// and fire on the same held keys. Modifier order is ignored.
func (k *Keymap) Conflicts() []Conflict {
	var conflicts []Conflict
	for i, a := range k.bindings {
		ca := a.Binding.Chord()
		if !ca.IsBound() {
			continue
		}
		for _, b := range k.bindings[i+1:] {
			if sameKeys(ca, b.Binding.Chord()) {
				conflicts = append(conflicts, Conflict{First: a.Name, Second: b.Name, Chord: ca})
			}
		}
	}
	return conflicts
}

// sameKeys reports whether two chords have the same primary key and the
// same set of modifiers.
func sameKeys(a, b chord.Chord) bool {
	if a.Primary() != b.Primary() {
		return false
	}
	am, bm := a.Modifiers(), b.Modifiers()
	if len(am) != len(bm) {
		return false
	}
	for _, m := range am {
		if !slices.Contains(bm, m) {
			return false
		}
	}
	return true
}
