// Package keymap dispatches held key chords to named bindings.
//
// A Keymap is the input layer's view of the configuration: every entry
// contributes its chord binding under the entry key. The host feeds the
// set of currently held keys, in press order, to Dispatch each time a key
// goes down.
//
// # Matching
//
// A binding fires when the held keys are exactly its chord's keys, with
// the chord's primary key pressed last. Modifier order does not matter:
//
//	km := keymap.New()
//	km.Add("tweakFastBlockPlacement", entry.Binding())
//
//	// X held, then F pressed
//	fired := km.Dispatch([]key.Token{key.X, key.F})
//	// fired == []string{"tweakFastBlockPlacement"}
//
// # Conflicts
//
// Two bindings with the same chord both fire. Conflicts lists such pairs
// so a settings UI can point them out.
package keymap
