package chord

// Action is run when a binding's chord is detected by the input layer.
type Action func()

// Binding pairs a chord with a single action slot.
//
// The chord starts at its default and can be rebound by the user. The
// action slot holds at most one action: SetCallback replaces whatever was
// there before.
type Binding struct {
	def    Chord
	chord  Chord
	action Action
}

// NewBinding creates a binding whose current chord is the given default.
func NewBinding(def Chord) *Binding {
	return &Binding{
		def:   def,
		chord: def,
	}
}

// Chord returns the current chord.
func (b *Binding) Chord() Chord {
	return b.chord
}

// Default returns the default chord.
func (b *Binding) Default() Chord {
	return b.def
}

// Rebind replaces the current chord.
func (b *Binding) Rebind(c Chord) {
	b.chord = c
}

// IsModified returns true if the current chord differs from the default.
func (b *Binding) IsModified() bool {
	return !b.chord.Equal(b.def)
}

// Reset restores the default chord.
func (b *Binding) Reset() {
	b.chord = b.def
}

// SetCallback installs the action, discarding any previous one.
// A nil action clears the slot.
func (b *Binding) SetCallback(action Action) {
	b.action = action
}

// HasCallback returns true if an action is installed.
func (b *Binding) HasCallback() bool {
	return b.action != nil
}

// Trigger runs the action if one is installed.
// Returns false if the slot is empty.
func (b *Binding) Trigger() bool {
	if b.action == nil {
		return false
	}
	b.action()
	return true
}
