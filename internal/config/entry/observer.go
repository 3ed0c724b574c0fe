package entry

// Observer is notified after an entry's value changes.
//
// OnValueChange runs synchronously inside Set, Reset, Toggle or
// FromSerializable. The observer reads the new value with Get. It must not
// set the same entry from within the callback.
type Observer interface {
	OnValueChange(e *Entry)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e *Entry)

// OnValueChange calls f(e).
func (f ObserverFunc) OnValueChange(e *Entry) {
	f(e)
}

// Messenger receives the short user-facing messages emitted when a toggle
// is flipped from its key chord. Displaying them is up to the host.
type Messenger interface {
	Message(text string)
}

// MessengerFunc adapts a function to the Messenger interface.
type MessengerFunc func(text string)

// Message calls f(text).
func (f MessengerFunc) Message(text string) {
	f(text)
}
