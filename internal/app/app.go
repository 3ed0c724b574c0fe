// Package app wires the configuration registry to persistence, key
// dispatch and live reload.
//
// The registry and its entries do no locking. App owns them and
// serializes every access behind one mutex, so a CLI command and the
// settings file watcher can safely run at the same time.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/tweakreg/internal/config/defs"
	"github.com/dshills/tweakreg/internal/config/entry"
	"github.com/dshills/tweakreg/internal/config/notify"
	"github.com/dshills/tweakreg/internal/config/registry"
	"github.com/dshills/tweakreg/internal/config/store"
	"github.com/dshills/tweakreg/internal/config/watcher"
	"github.com/dshills/tweakreg/internal/input/chord"
	"github.com/dshills/tweakreg/internal/input/keymap"
	"github.com/dshills/tweakreg/internal/logging"
)

// Change sources recorded in notifications.
const (
	SourceLoad   = "load"
	SourceCLI    = "cli"
	SourceChord  = "chord"
	SourceFile   = "file"
	SourceReset  = "reset"
	SourceToggle = "toggle"
)

// Options configures the application.
type Options struct {
	// SettingsPath is the settings file. Its extension selects the format.
	SettingsPath string

	// DefinitionsPath is an optional YAML or Lua table of extra entries,
	// registered after the built-in toggles.
	DefinitionsPath string

	// Logger receives application logs. Defaults to a no-op logger.
	Logger *zerolog.Logger

	// Messenger receives toggle messages. Defaults to logging them.
	Messenger entry.Messenger

	// Debounce is the live reload debounce. Zero uses the watcher default.
	Debounce time.Duration
}

// EntryInfo is a point-in-time view of one entry.
type EntryInfo struct {
	Key         string
	DisplayName string
	Description string
	Type        entry.Type
	Value       string
	Default     string
	Modified    bool
	Chord       string
	Tags        []string
}

// App coordinates the registry, settings store, keymap and watcher.
type App struct {
	mu sync.Mutex

	reg      *registry.Registry
	store    *store.Store
	keymap   *keymap.Keymap
	notifier *notify.Notifier
	log      zerolog.Logger

	debounce time.Duration
	watcher  *watcher.Watcher
}

// New builds the registry, loads the settings file and wires dispatch.
func New(opts Options) (*App, error) {
	log := logging.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	a := &App{
		reg:      registry.NewWithDefaults(),
		keymap:   keymap.New(),
		notifier: notify.New(),
		log:      logging.Component(log, "app"),
		debounce: opts.Debounce,
	}

	if opts.DefinitionsPath != "" {
		table, err := defs.LoadFile(opts.DefinitionsPath)
		if err != nil {
			return nil, &ComponentError{Component: "definitions", Err: err}
		}
		if err := a.reg.RegisterAll(table); err != nil {
			return nil, &ComponentError{Component: "definitions", Err: err}
		}
		a.log.Debug().Str("path", opts.DefinitionsPath).Int("entries", len(table)).Msg("definitions loaded")
	}

	st, err := store.New(opts.SettingsPath)
	if err != nil {
		return nil, &ComponentError{Component: "store", Err: err}
	}
	a.store = st

	for _, e := range a.reg.All() {
		if err := a.keymap.Add(e.Key(), e.Binding()); err != nil {
			return nil, &ComponentError{Component: "keymap", Err: err}
		}
	}
	for _, c := range a.keymap.Conflicts() {
		a.log.Debug().Str("first", c.First).Str("second", c.Second).Str("chord", c.Chord.String()).Msg("chord conflict")
	}

	messenger := opts.Messenger
	if messenger == nil {
		messenger = entry.MessengerFunc(func(text string) {
			a.log.Info().Msg(text)
		})
	}
	a.reg.SetMessenger(messenger)
	a.reg.SetObserver(a.notifier)

	a.notifier.SetSource(SourceLoad)
	if err := a.store.Load(a.reg, logging.Component(log, "store")); err != nil {
		return nil, &ComponentError{Component: "store", Err: err}
	}

	return a, nil
}

// SettingsPath returns the settings file path.
func (a *App) SettingsPath() string {
	return a.store.Path()
}

// Subscribe registers a handler for every change. Handlers run while the
// application lock is held and must not call back into App.
func (a *App) Subscribe(h notify.Handler) *notify.Subscription {
	return a.notifier.Subscribe(h)
}

// SubscribeKey registers a handler for changes to one key.
func (a *App) SubscribeKey(key string, h notify.Handler) *notify.Subscription {
	return a.notifier.SubscribeKey(key, h)
}

// Entries returns a view of every entry in declaration order.
func (a *App) Entries() []EntryInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.infos(a.reg.All())
}

// Modified returns a view of the entries that differ from their default.
func (a *App) Modified() []EntryInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.infos(a.reg.Modified())
}

// ByTag returns a view of the entries with the given tag.
func (a *App) ByTag(tag string) []EntryInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.infos(a.reg.ByTag(tag))
}

// Search returns a view of the entries matching the query.
func (a *App) Search(query string) []EntryInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.infos(a.reg.Search(query))
}

// Lookup returns a view of one entry.
func (a *App) Lookup(key string) (EntryInfo, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.entry(key)
	if err != nil {
		return EntryInfo{}, err
	}
	return a.info(e), nil
}

// Set parses text for the entry's type and sets it.
// Booleans accept the forms strconv.ParseBool accepts.
func (a *App) Set(key, text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.entry(key)
	if err != nil {
		return NewOperationError("set", key, err)
	}
	v, err := parseValue(e.Type(), text)
	if err != nil {
		return NewOperationError("set", key, err)
	}

	a.notifier.SetSource(SourceCLI)
	if err := e.Set(v); err != nil {
		return NewOperationError("set", key, err)
	}
	return nil
}

// Reset restores one entry to its default.
func (a *App) Reset(key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.entry(key)
	if err != nil {
		return NewOperationError("reset", key, err)
	}
	a.notifier.SetSource(SourceReset)
	e.Reset()
	return nil
}

// ResetAll restores every entry to its default.
func (a *App) ResetAll() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.notifier.SetSource(SourceReset)
	a.reg.ResetAll()
}

// Toggle flips a boolean entry and returns the new value.
func (a *App) Toggle(key string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, err := a.entry(key)
	if err != nil {
		return false, NewOperationError("toggle", key, err)
	}
	a.notifier.SetSource(SourceToggle)
	on, err := e.Toggle()
	if err != nil {
		return false, NewOperationError("toggle", key, err)
	}
	return on, nil
}

// Press simulates holding the keys of a chord specification, pressed in
// the order written, and dispatches it. It returns the keys of the
// entries whose actions ran.
func (a *App) Press(spec string) ([]string, error) {
	c, err := chord.Parse(spec)
	if err != nil {
		return nil, NewOperationError("press", spec, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.notifier.SetSource(SourceChord)
	return a.keymap.Dispatch(c.Keys()), nil
}

// Conflicts returns bindings that share a chord.
func (a *App) Conflicts() []keymap.Conflict {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.keymap.Conflicts()
}

// Save writes the settings file.
func (a *App) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.Save(a.reg); err != nil {
		return NewOperationError("save", a.store.Path(), err)
	}
	a.log.Debug().Str("path", a.store.Path()).Msg("settings saved")
	return nil
}

// Reload re-reads the settings file. Values that changed notify
// subscribers with source "file".
func (a *App) Reload() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.notifier.SetSource(SourceFile)
	if err := a.store.Load(a.reg, a.log); err != nil {
		return NewOperationError("reload", a.store.Path(), err)
	}
	return nil
}

// Watch starts reloading the settings file when it changes on disk.
// Watching stops when ctx is cancelled or Close is called.
func (a *App) Watch(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.watcher != nil && a.watcher.IsRunning() {
		return ErrAlreadyWatching
	}

	var opts []watcher.Option
	opts = append(opts, watcher.WithLogger(logging.Component(a.log, "watcher")))
	if a.debounce > 0 {
		opts = append(opts, watcher.WithDebounce(a.debounce))
	}

	w, err := watcher.New(a.store.Path(), a.onFileEvent, opts...)
	if err != nil {
		return NewOperationError("watch", a.store.Path(), err)
	}
	if err := w.Start(ctx); err != nil {
		return NewOperationError("watch", a.store.Path(), err)
	}
	a.watcher = w
	return nil
}

// Close stops live reload if it is running.
func (a *App) Close() {
	a.mu.Lock()
	w := a.watcher
	a.watcher = nil
	a.mu.Unlock()

	if w != nil {
		w.Stop()
	}
}

func (a *App) onFileEvent(ev watcher.Event) {
	switch ev.Op {
	case watcher.OpWrite, watcher.OpCreate:
		if err := a.Reload(); err != nil {
			a.log.Warn().Err(err).Msg("reload failed, keeping current values")
		}
	default:
		a.log.Debug().Str("op", ev.Op.String()).Str("path", ev.Path).Msg("settings file gone, keeping current values")
	}
}

func (a *App) entry(key string) (*entry.Entry, error) {
	e := a.reg.Get(key)
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return e, nil
}

func (a *App) infos(entries []*entry.Entry) []EntryInfo {
	result := make([]EntryInfo, len(entries))
	for i, e := range entries {
		result[i] = a.info(e)
	}
	return result
}

func (a *App) info(e *entry.Entry) EntryInfo {
	return EntryInfo{
		Key:         e.Key(),
		DisplayName: e.DisplayName(),
		Description: e.Description(),
		Type:        e.Type(),
		Value:       e.StringValue(),
		Default:     fmt.Sprint(e.Default()),
		Modified:    e.IsModified(),
		Chord:       e.Binding().Chord().Serialize(),
		Tags:        a.reg.Tags(e.Key()),
	}
}

// parseValue converts command line text to a value of the given type.
func parseValue(typ entry.Type, text string) (any, error) {
	switch typ {
	case entry.TypeBool:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, text)
		}
		return b, nil
	case entry.TypeInt:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, text)
		}
		return n, nil
	default:
		return text, nil
	}
}
