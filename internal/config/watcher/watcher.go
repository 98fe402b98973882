// Package watcher provides file watching for configuration live reload.
//
// The watcher monitors the layered language configuration files for
// changes and notifies subscribers, so a host editor can reload the
// registry or re-apply the current language. Events are debounced:
// editors and package managers tend to write files in bursts.
package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dshills/lexstyle/internal/config/datadir"
)

// Event represents a configuration file change.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event was dispatched.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
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

// Handler is called when a configuration file change is detected.
type Handler func(event Event)

// Watcher monitors language configuration files for changes.
type Watcher struct {
	mu       sync.RWMutex
	handlers []Handler
	running  bool

	fsw      *fsnotify.Watcher
	debounce time.Duration
	log      zerolog.Logger
	wg       sync.WaitGroup

	pendingMu sync.Mutex
	pending   map[string]*pendingEvent
}

// pendingEvent holds a debounced event and its delivery timer.
type pendingEvent struct {
	op    Operation
	timer *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Watcher) { w.log = log }
}

// New creates a new configuration watcher.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: 100 * time.Millisecond,
		log:      zerolog.Nop(),
		pending:  make(map[string]*pendingEvent),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch adds a directory (or file) to the watch list.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return w.fsw.Add(absPath)
}

// WatchLanguageDirs watches <layer>/<app> and <layer>/<app>/languages
// in every data directory layer that exists. Layers without the
// directories are skipped; they may appear later only by reinstalling,
// which warrants an editor restart anyway.
func (w *Watcher) WatchLanguageDirs(dirs []datadir.Dir, appName string) error {
	for _, dir := range dirs {
		if dir.Path == "" {
			continue
		}
		for _, sub := range []string{
			filepath.Join(dir.Path, appName),
			filepath.Join(dir.Path, appName, "languages"),
		} {
			if _, err := os.Stat(sub); err != nil {
				continue
			}
			if err := w.Watch(sub); err != nil {
				return err
			}
			w.log.Debug().Stringer("layer", dir.Kind).Str("path", sub).Msg("watching config directory")
		}
	}
	return nil
}

// OnChange registers a handler for configuration change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins dispatching change events. It returns immediately; the
// watcher owns a single background goroutine until Stop is called.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop()
}

// Stop shuts the watcher down and waits for pending dispatches.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	_ = w.fsw.Close()
	w.wg.Wait()

	w.pendingMu.Lock()
	for path, pe := range w.pending {
		pe.timer.Stop()
		delete(w.pending, path)
	}
	w.pendingMu.Unlock()
}

// loop consumes fsnotify events until the underlying watcher closes.
func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("watch error")
		}
	}
}

// handleEvent filters and debounces a raw fsnotify event.
func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if !strings.HasSuffix(ev.Name, ".yaml") {
		return
	}

	var op Operation
	switch {
	case ev.Has(fsnotify.Create):
		op = OpCreate
	case ev.Has(fsnotify.Write):
		op = OpWrite
	case ev.Has(fsnotify.Remove):
		op = OpRemove
	case ev.Has(fsnotify.Rename):
		op = OpRename
	default:
		return // chmod and friends
	}

	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if pe, ok := w.pending[ev.Name]; ok {
		pe.op = op
		pe.timer.Reset(w.debounce)
		return
	}

	pe := &pendingEvent{op: op}
	path := ev.Name
	pe.timer = time.AfterFunc(w.debounce, func() {
		w.dispatch(path)
	})
	w.pending[path] = pe
}

// dispatch delivers the debounced event for path to all handlers.
func (w *Watcher) dispatch(path string) {
	w.pendingMu.Lock()
	pe, ok := w.pending[path]
	delete(w.pending, path)
	w.pendingMu.Unlock()
	if !ok {
		return
	}

	event := Event{Path: path, Op: pe.op, Time: time.Now()}
	w.log.Debug().Str("path", path).Stringer("op", pe.op).Msg("config change")

	w.mu.RLock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
