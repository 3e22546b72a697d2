package settings

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/fontscale/internal/settings/notify"
	"github.com/dshills/fontscale/internal/settings/registry"
	"github.com/dshills/fontscale/internal/settings/storage"
)

// Store owns the settings layers for every scope and provides scoped
// reads, writes, and effective-value resolution.
//
// The store relies on the host's single-threaded event dispatch for
// ordering; the internal mutex only guards against the file watcher
// reloading a layer while a command reads it.
type Store struct {
	mu sync.RWMutex

	registry *registry.Registry
	files    *storage.Files
	notifier *notify.Notifier
	log      zerolog.Logger

	global   *Layer
	windows  map[WindowID]*Layer
	syntaxes map[string]*Layer
	views    map[ViewID]*Layer

	// syntaxPath maps a syntax name to its settings file. Nil disables
	// syntax persistence.
	syntaxPath func(syntax string) string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithRegistry sets the setting definitions registry.
func WithRegistry(r *registry.Registry) StoreOption {
	return func(s *Store) {
		s.registry = r
	}
}

// WithFiles enables persistence through the given file store.
func WithFiles(f *storage.Files) StoreOption {
	return func(s *Store) {
		s.files = f
	}
}

// WithNotifier sets the change notifier.
func WithNotifier(n *notify.Notifier) StoreOption {
	return func(s *Store) {
		s.notifier = n
	}
}

// WithLogger sets the store logger.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// WithGlobalPath sets the backing file for the global preferences layer.
func WithGlobalPath(path string) StoreOption {
	return func(s *Store) {
		s.global.Path = path
	}
}

// WithSyntaxPaths sets the mapping from syntax name to settings file,
// enabling persistence of syntax layers.
func WithSyntaxPaths(fn func(syntax string) string) StoreOption {
	return func(s *Store) {
		s.syntaxPath = fn
	}
}

// NewStore creates a settings store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		registry: registry.New(),
		notifier: notify.New(),
		log:      zerolog.Nop(),
		global:   NewLayer("global", ScopeGlobal),
		windows:  make(map[WindowID]*Layer),
		syntaxes: make(map[string]*Layer),
		views:    make(map[ViewID]*Layer),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Registry returns the setting definitions registry.
func (s *Store) Registry() *registry.Registry {
	return s.registry
}

// Notifier returns the change notifier.
func (s *Store) Notifier() *notify.Notifier {
	return s.notifier
}

// GlobalPath returns the backing file of the global preferences layer.
func (s *Store) GlobalPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.global.Path
}

// LoadGlobal reads the global preferences layer from its backing file.
// A missing file leaves the layer empty. Any other failure is returned
// to the caller; an unreadable preferences store is fatal to activation.
func (s *Store) LoadGlobal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked(s.global)
}

// Reload re-reads the backing file for the target's layer and notifies
// observers. Targets without a backing file reload to their in-memory
// state unchanged.
func (s *Store) Reload(t Target) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	layer, err := s.layerLocked(t)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.reloadLocked(layer)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notifier.NotifyReload(t.String())
	return nil
}

// Get returns the value stored directly in the target's layer, without
// fallback resolution.
func (s *Store) Get(t Target, path string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer, err := s.layerLocked(t)
	if err != nil {
		return nil, false
	}
	return layer.Get(path)
}

// Has reports whether the target's layer has its own value for path.
func (s *Store) Has(t Target, path string) bool {
	_, ok := s.Get(t, path)
	return ok
}

// Resolve returns the effective value of path for the target, walking
// the fallback chain from most to least specific scope and bottoming
// out at the registered default. ok is false only when the path is
// unset in every scope and has no registered default.
func (s *Store) Resolve(t Target, path string) (any, bool) {
	s.mu.Lock()
	for _, link := range t.chain() {
		layer, err := s.layerLocked(link)
		if err != nil {
			continue
		}
		if val, ok := layer.Get(path); ok {
			s.mu.Unlock()
			return val, true
		}
	}
	s.mu.Unlock()

	if def := s.registry.Default(path); def != nil {
		return def, true
	}
	return nil, false
}

// Set writes a value into exactly the target's layer, persists it if the
// layer has a backing file, and notifies observers.
func (s *Store) Set(t Target, path string, value any) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := s.registry.Validate(path, value); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	s.mu.Lock()
	layer, err := s.layerLocked(t)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	old, _ := layer.Get(path)
	layer.Set(path, value)

	if layer.Path != "" && s.files != nil {
		if err := s.files.SetKey(layer.Path, path, value); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.mu.Unlock()

	s.log.Debug().
		Str("target", t.String()).
		Str("setting", path).
		Interface("value", value).
		Msg("setting updated")

	s.notifier.NotifySet(path, old, value, t.String())
	return nil
}

// Erase removes the target's own value for path, so resolution falls
// back through less specific scopes. Erasing an absent value is a no-op.
// Returns true if a value was removed.
func (s *Store) Erase(t Target, path string) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	layer, err := s.layerLocked(t)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}

	old, existed := layer.Get(path)
	if !existed {
		s.mu.Unlock()
		return false, nil
	}
	layer.Delete(path)

	if layer.Path != "" && s.files != nil {
		if err := s.files.DeleteKey(layer.Path, path); err != nil {
			s.mu.Unlock()
			return false, err
		}
	}
	s.mu.Unlock()

	s.log.Debug().
		Str("target", t.String()).
		Str("setting", path).
		Msg("setting erased")

	s.notifier.NotifyErase(path, old, t.String())
	return true, nil
}

// Accessor returns a typed accessor over the target's merged settings
// view. The snapshot is taken when Accessor is called; later writes are
// not reflected.
func (s *Store) Accessor(t Target) *registry.Accessor {
	return registry.NewAccessor(s.registry, registry.NewMapValueStore(s.Merged(t)))
}

// Merged returns the fully merged settings view for a target, least
// specific scope first. The result is a deep copy.
func (s *Store) Merged(t Target) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]any)
	chain := t.chain()
	for i := len(chain) - 1; i >= 0; i-- {
		layer, err := s.layerLocked(chain[i])
		if err != nil {
			continue
		}
		merged = DeepMerge(merged, layer.Data)
	}
	return merged
}

// SetWindowPath associates a window layer with a project file so its
// settings persist. Existing file content is loaded into the layer.
func (s *Store) SetWindowPath(window WindowID, path string) error {
	t := WindowTarget(window)
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	layer, err := s.layerLocked(t)
	if err != nil {
		return err
	}
	layer.Path = path
	return s.reloadLocked(layer)
}

// DropView discards the view layer entirely, e.g. when a view closes.
func (s *Store) DropView(view ViewID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, view)
}

// DropWindow discards the window layer entirely, e.g. when a window
// closes.
func (s *Store) DropWindow(window WindowID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, window)
}

// layerLocked returns the layer for a target, creating it on first use.
// Syntax layers are loaded from their settings file when created.
// Callers must hold s.mu.
func (s *Store) layerLocked(t Target) (*Layer, error) {
	switch t.Scope {
	case ScopeGlobal:
		return s.global, nil
	case ScopeWindow:
		if layer, ok := s.windows[t.Window]; ok {
			return layer, nil
		}
		layer := NewLayer(fmt.Sprintf("window:%d", t.Window), ScopeWindow)
		s.windows[t.Window] = layer
		return layer, nil
	case ScopeSyntax:
		if layer, ok := s.syntaxes[t.Syntax]; ok {
			return layer, nil
		}
		layer := NewLayer("syntax:"+t.Syntax, ScopeSyntax)
		if s.syntaxPath != nil {
			layer.Path = s.syntaxPath(t.Syntax)
			if err := s.reloadLocked(layer); err != nil {
				// A malformed syntax file must not break adjustment;
				// treat it as empty and surface the problem in the log.
				s.log.Warn().Err(err).Str("syntax", t.Syntax).Msg("loading syntax settings failed")
			}
		}
		s.syntaxes[t.Syntax] = layer
		return layer, nil
	case ScopeView:
		if layer, ok := s.views[t.View]; ok {
			return layer, nil
		}
		layer := NewLayer(fmt.Sprintf("view:%d", t.View), ScopeView)
		s.views[t.View] = layer
		return layer, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScope, t.Scope)
	}
}

// reloadLocked replaces a layer's data from its backing file.
// Callers must hold s.mu.
func (s *Store) reloadLocked(layer *Layer) error {
	if layer.Path == "" || s.files == nil {
		return nil
	}

	data, err := s.files.Load(layer.Path)
	if err != nil {
		return err
	}
	if data == nil {
		data = make(map[string]any)
	}
	layer.Data = data
	return nil
}
