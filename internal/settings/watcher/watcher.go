// Package watcher provides file watching for preference live reload.
//
// Preference files are user-editable at any time; the watcher polls
// their modification times and triggers reload callbacks when an
// external edit is detected.
package watcher

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// Event represents a file change event.
type Event struct {
	// Path is the path of the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event occurred.
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
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// Watcher monitors preference files for changes.
type Watcher struct {
	mu sync.RWMutex

	// Filesystem used for stat calls
	fs afero.Fs

	// Watched files and their last modification times
	files map[string]time.Time

	// Handlers to call on file changes
	handlers []Handler

	// Polling interval
	interval time.Duration

	// Debounce window for rapid successive edits
	debounce time.Duration

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc

	// Wait group for shutdown
	wg sync.WaitGroup

	// Running state
	running bool

	pendingMu    sync.Mutex
	pendingFiles map[string]Event
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithDebounce sets the debounce duration for rapid changes.
// Zero disables debouncing.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithFs sets the filesystem used for stat calls.
func WithFs(fs afero.Fs) Option {
	return func(w *Watcher) {
		w.fs = fs
	}
}

// New creates a new file watcher.
func New(opts ...Option) *Watcher {
	w := &Watcher{
		fs:           afero.NewOsFs(),
		files:        make(map[string]time.Time),
		handlers:     make([]Handler, 0),
		interval:     500 * time.Millisecond,
		debounce:     100 * time.Millisecond,
		pendingFiles: make(map[string]Event),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Watch adds a file to the watch list. A file that does not exist yet is
// watched for creation.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	info, err := w.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			w.files[path] = time.Time{}
			return nil
		}
		return err
	}

	w.files[path] = info.ModTime()
	return nil
}

// Unwatch removes a file from the watch list.
func (w *Watcher) Unwatch(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// WatchedFiles returns the list of watched files.
func (w *Watcher) WatchedFiles() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	return files
}

// Start begins watching files for changes.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.pollLoop()

	if w.debounce > 0 {
		w.wg.Add(1)
		go w.debounceLoop()
	}
}

// Stop stops watching files.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.running = false
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// pollLoop checks files for changes at regular intervals.
func (w *Watcher) pollLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.checkFiles()
		}
	}
}

// checkFiles checks all watched files for changes.
func (w *Watcher) checkFiles() {
	w.mu.RLock()
	files := make(map[string]time.Time, len(w.files))
	for path, modTime := range w.files {
		files[path] = modTime
	}
	w.mu.RUnlock()

	for path, lastMod := range files {
		event := w.checkFile(path, lastMod)
		if event != nil {
			if w.debounce > 0 {
				w.queueEvent(*event)
			} else {
				w.emitEvent(*event)
			}
		}
	}
}

// checkFile checks a single file for changes.
func (w *Watcher) checkFile(path string, lastMod time.Time) *Event {
	info, err := w.fs.Stat(path)

	// File was deleted
	if os.IsNotExist(err) {
		if !lastMod.IsZero() {
			w.setModTime(path, time.Time{})
			return &Event{Path: path, Op: OpRemove, Time: time.Now()}
		}
		return nil
	}

	if err != nil {
		return nil
	}

	currentMod := info.ModTime()

	// File was created
	if lastMod.IsZero() && !currentMod.IsZero() {
		w.setModTime(path, currentMod)
		return &Event{Path: path, Op: OpCreate, Time: time.Now()}
	}

	// File was modified
	if !currentMod.Equal(lastMod) {
		w.setModTime(path, currentMod)
		return &Event{Path: path, Op: OpWrite, Time: time.Now()}
	}

	return nil
}

func (w *Watcher) setModTime(path string, mod time.Time) {
	w.mu.Lock()
	w.files[path] = mod
	w.mu.Unlock()
}

// queueEvent queues an event for debounced delivery. Later operations
// replace earlier ones except that a remove always wins.
func (w *Watcher) queueEvent(event Event) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	existing, exists := w.pendingFiles[event.Path]
	if exists && existing.Op == OpRemove && event.Op != OpRemove {
		return
	}
	w.pendingFiles[event.Path] = event
}

// debounceLoop flushes pending events after the debounce window.
func (w *Watcher) debounceLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.flushPending()
			return
		case <-ticker.C:
			w.flushPending()
		}
	}
}

// flushPending emits all queued events whose debounce window elapsed.
func (w *Watcher) flushPending() {
	now := time.Now()

	w.pendingMu.Lock()
	ready := make([]Event, 0, len(w.pendingFiles))
	for path, event := range w.pendingFiles {
		if now.Sub(event.Time) >= w.debounce {
			ready = append(ready, event)
			delete(w.pendingFiles, path)
		}
	}
	w.pendingMu.Unlock()

	for _, event := range ready {
		w.emitEvent(event)
	}
}

// emitEvent delivers an event to all handlers.
func (w *Watcher) emitEvent(event Event) {
	w.mu.RLock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
