// Package watcher reports changes to a settings file for live reload.
//
// The watcher observes the file's directory with fsnotify, so it keeps
// working when editors or the store replace the file by rename. Bursts of
// events are debounced into a single event.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ErrAlreadyRunning is returned by Start on a running watcher.
var ErrAlreadyRunning = errors.New("watcher already running")

// DefaultDebounce is the default quiet period before an event is emitted.
const DefaultDebounce = 100 * time.Millisecond

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the last coalesced event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates the file was created or renamed into place.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
// It runs on the watcher goroutine.
type Handler func(event Event)

// Watcher monitors one file for changes.
type Watcher struct {
	path     string
	handler  Handler
	debounce time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
// Zero delivers every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watch errors.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Watcher) {
		w.log = log
	}
}

// New creates a watcher for path. It does not start watching.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		handler:  handler,
		debounce: DefaultDebounce,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching. The watcher stops when ctx is cancelled or Stop
// is called. The file itself need not exist yet; its directory must.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrAlreadyRunning
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})
	w.running = true

	go w.loop(ctx, fsw, w.done)
	return nil
}

// Stop stops watching and waits for the watcher goroutine to exit.
// It is safe to call Stop more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	done := w.done
	w.running = false
	w.mu.Unlock()

	<-done
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	defer fsw.Close()

	var (
		pending *Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			op, ok := convertOp(ev.Op)
			if !ok {
				continue
			}

			pending = coalesce(pending, Event{Path: w.path, Op: op, Time: time.Now()})
			if w.debounce == 0 {
				w.emit(*pending)
				pending = nil
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if pending != nil {
				w.emit(*pending)
				pending = nil
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Str("path", w.path).Msg("file watch error")
		}
	}
}

// convertOp maps an fsnotify operation to an Operation.
// Chmod-only events are ignored.
func convertOp(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}

// coalesce merges an event into the pending one:
//   - remove or rename followed by create => create (file replaced)
//   - create + write => create
//   - write + write => write (latest time)
//   - any + remove => remove
func coalesce(pending *Event, event Event) *Event {
	if pending == nil {
		return &event
	}

	merged := *pending
	merged.Time = event.Time
	switch event.Op {
	case OpRemove, OpRename, OpCreate:
		merged.Op = event.Op
	case OpWrite:
		if merged.Op == OpRemove || merged.Op == OpRename {
			merged.Op = OpWrite
		}
	}
	return &merged
}

// emit calls the handler with panic recovery so a panicking handler does
// not stop the watcher.
func (w *Watcher) emit(event Event) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error().Interface("panic", r).Str("path", event.Path).Msg("watch handler panicked")
		}
	}()
	w.handler(event)
}
