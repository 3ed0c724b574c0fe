// Package notify fans configuration entry changes out to subscribers.
//
// A Notifier is installed as the single observer of every entry in a
// registry. Each effective change of an entry reaches the notifier once,
// and the notifier forwards it to every subscriber interested in the key.
package notify

import (
	"sync"

	"github.com/dshills/tweakreg/internal/config/entry"
)

// Change represents a configuration change event.
type Change struct {
	// Key is the key of the changed entry.
	Key string

	// Value is the new value in its persisted form.
	Value any

	// Modified reports whether the new value differs from the default.
	Modified bool

	// Source identifies where the change came from (e.g., "cli", "file").
	Source string
}

// Handler is called when a configuration change occurs.
type Handler func(change Change)

// Subscription represents an active subscription.
type Subscription struct {
	id       uint64
	key      string
	notifier *Notifier
}

// Unsubscribe removes this subscription. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

type subscriber struct {
	id      uint64
	key     string
	handler Handler
}

// Notifier manages change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	// subscribers in subscription order; key "" receives every change
	subscribers []subscriber

	nextID uint64
	source string
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers a handler for changes to any key.
func (n *Notifier) Subscribe(handler Handler) *Subscription {
	return n.add("", handler)
}

// SubscribeKey registers a handler for changes to one key.
func (n *Notifier) SubscribeKey(key string, handler Handler) *Subscription {
	return n.add(key, handler)
}

func (n *Notifier) add(key string, handler Handler) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subscribers = append(n.subscribers, subscriber{id: id, key: key, handler: handler})

	return &Subscription{id: id, key: key, notifier: n}
}

// SetSource sets the source recorded in subsequent changes.
func (n *Notifier) SetSource(source string) {
	n.mu.Lock()
	n.source = source
	n.mu.Unlock()
}

// Source returns the current change source.
func (n *Notifier) Source() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.source
}

// OnValueChange implements entry.Observer.
func (n *Notifier) OnValueChange(e *entry.Entry) {
	n.Notify(Change{
		Key:      e.Key(),
		Value:    e.ToSerializable(),
		Modified: e.IsModified(),
		Source:   n.Source(),
	})
}

// Notify delivers a change to every matching subscriber in subscription
// order. Handlers run synchronously, outside the lock.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	var handlers []Handler
	for _, s := range n.subscribers {
		if s.key == "" || s.key == change.Key {
			handlers = append(handlers, s.handler)
		}
	}
	n.mu.RUnlock()

	for _, h := range handlers {
		h(change)
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subscribers)
}

// unsubscribe removes a subscriber by ID.
func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, s := range n.subscribers {
		if s.id == id {
			n.subscribers = append(n.subscribers[:i], n.subscribers[i+1:]...)
			return
		}
	}
}

var _ entry.Observer = (*Notifier)(nil)
