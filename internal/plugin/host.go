package plugin

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/dshills/fontscale/internal/dispatcher"
	"github.com/dshills/fontscale/internal/dispatcher/execctx"
	"github.com/dshills/fontscale/internal/dispatcher/handler"
	"github.com/dshills/fontscale/internal/dispatcher/handlers/font"
	"github.com/dshills/fontscale/internal/fontsize"
	"github.com/dshills/fontscale/internal/settings"
	"github.com/dshills/fontscale/internal/settings/notify"
	"github.com/dshills/fontscale/internal/settings/storage"
	"github.com/dshills/fontscale/internal/settings/watcher"
)

// Host wires the plugin into the editor: it owns the settings store,
// the font adjuster, the command dispatcher, and the preferences file
// watcher, and manages activation and deactivation.
type Host struct {
	mu sync.Mutex

	manifest *Manifest
	store    *settings.Store
	fonts    *fontsize.Adjuster
	disp     *dispatcher.Dispatcher
	watch    *watcher.Watcher
	log      zerolog.Logger

	fs            afero.Fs
	prefsPath     string
	watchInterval time.Duration

	// syntaxFiles maps watched syntax settings files back to their
	// syntax name for reload routing.
	syntaxFiles  map[string]string
	syntaxPathFn func(syntax string) string

	activated bool
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithLogger sets the host logger.
func WithLogger(log zerolog.Logger) HostOption {
	return func(h *Host) {
		h.log = log
	}
}

// WithFilesystem sets the filesystem preference files live on.
func WithFilesystem(fs afero.Fs) HostOption {
	return func(h *Host) {
		h.fs = fs
	}
}

// WithPreferencesPath overrides the global preferences file location.
func WithPreferencesPath(path string) HostOption {
	return func(h *Host) {
		h.prefsPath = path
	}
}

// WithSyntaxPaths overrides how syntax names resolve to settings files.
func WithSyntaxPaths(fn func(syntax string) string) HostOption {
	return func(h *Host) {
		if fn != nil {
			h.syntaxPathFn = fn
		}
	}
}

// WithWatchInterval sets the preferences polling interval.
func WithWatchInterval(d time.Duration) HostOption {
	return func(h *Host) {
		if d > 0 {
			h.watchInterval = d
		}
	}
}

// NewHost creates the plugin host. Activation is a separate step so the
// editor controls when the preferences store is first touched.
func NewHost(opts ...HostOption) (*Host, error) {
	h := &Host{
		manifest:      DefaultManifest(),
		log:           zerolog.Nop(),
		fs:            afero.NewOsFs(),
		watchInterval: 500 * time.Millisecond,
		syntaxFiles:   make(map[string]string),
		syntaxPathFn:  syntaxPath,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.prefsPath == "" {
		path, err := storage.PreferencesPath()
		if err != nil {
			return nil, fmt.Errorf("plugin: resolving preferences path: %w", err)
		}
		h.prefsPath = path
	}

	files := storage.NewWithFs(h.fs)

	reg := fontsize.NewRegistry()

	h.store = settings.NewStore(
		settings.WithRegistry(reg),
		settings.WithFiles(files),
		settings.WithNotifier(notify.New()),
		settings.WithLogger(h.log),
		settings.WithGlobalPath(h.prefsPath),
		settings.WithSyntaxPaths(h.syntaxPathFn),
	)
	h.fonts = fontsize.NewAdjuster(h.store, fontsize.WithLogger(h.log))

	h.disp = dispatcher.New(dispatcher.WithLogger(h.log))
	h.disp.RegisterNamespace("font", font.NewHandler())

	h.watch = watcher.New(
		watcher.WithFs(h.fs),
		watcher.WithInterval(h.watchInterval),
	)

	return h, nil
}

// Activate loads the global preferences, seeds the configuration keys,
// and starts watching the preferences file for external edits. An
// unreadable or unwritable preferences store fails activation; the
// editor surfaces that to the user.
func (h *Host) Activate() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.activated {
		return ErrAlreadyActivated
	}

	if err := h.store.LoadGlobal(); err != nil {
		return fmt.Errorf("plugin: loading preferences: %w", err)
	}

	seeded, err := fontsize.EnsureDefaults(h.store)
	if err != nil {
		return fmt.Errorf("plugin: seeding preferences: %w", err)
	}
	if seeded {
		h.log.Info().Str("path", h.prefsPath).Msg("seeded font size preferences")
	}

	if err := h.watch.Watch(h.prefsPath); err != nil {
		return fmt.Errorf("plugin: watching preferences: %w", err)
	}
	h.watch.OnChange(h.onPreferencesChanged)
	h.watch.Start()

	h.activated = true
	h.log.Info().Str("plugin", h.manifest.Name).Str("version", h.manifest.Version).Msg("activated")
	return nil
}

// Deactivate stops the watcher and releases subscriptions.
func (h *Host) Deactivate() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.activated {
		return
	}

	h.watch.Stop()
	h.store.Notifier().Close()
	h.disp.UnregisterNamespace("font")
	h.activated = false
	h.log.Info().Str("plugin", h.manifest.Name).Msg("deactivated")
}

// Manifest returns the plugin manifest.
func (h *Host) Manifest() *Manifest {
	return h.manifest
}

// Store returns the settings store.
func (h *Host) Store() *settings.Store {
	return h.store
}

// Fonts returns the font adjuster.
func (h *Host) Fonts() *fontsize.Adjuster {
	return h.fonts
}

// Dispatcher returns the command dispatcher.
func (h *Host) Dispatcher() *dispatcher.Dispatcher {
	return h.disp
}

// Context returns a base execution context over the host's store and
// adjuster. Callers focus it on the invoking window and view.
func (h *Host) Context() *execctx.ExecutionContext {
	ctx := execctx.New(h.store, h.fonts)
	ctx.Log = h.log
	return ctx
}

// Command dispatches a named action against the given focus. This is
// the entry point menu items and key bindings are wired to.
func (h *Host) Command(name string, window settings.WindowID, view settings.ViewID, syntax string) handler.Result {
	h.mu.Lock()
	active := h.activated
	h.mu.Unlock()
	if !active {
		return handler.Error(ErrNotActivated)
	}

	if syntax != "" {
		h.watchSyntax(syntax)
	}

	action := handler.Action{Name: name}
	return h.disp.Dispatch(action, h.Context().WithFocus(window, view, syntax))
}

// watchSyntax starts watching a syntax settings file the first time a
// command touches that syntax, so external edits to it reload too.
func (h *Host) watchSyntax(syntax string) {
	path := h.syntaxPathFn(syntax)

	h.mu.Lock()
	if _, watched := h.syntaxFiles[path]; watched {
		h.mu.Unlock()
		return
	}
	h.syntaxFiles[path] = syntax
	h.mu.Unlock()

	if err := h.watch.Watch(path); err != nil {
		h.log.Warn().Err(err).Str("syntax", syntax).Msg("watching syntax settings failed")
	}
}

// onPreferencesChanged reloads the affected layer after an external
// edit, routing syntax settings files to their syntax layer.
func (h *Host) onPreferencesChanged(event watcher.Event) {
	h.log.Debug().Str("path", event.Path).Stringer("op", event.Op).Msg("settings changed on disk")

	h.mu.Lock()
	syntax, isSyntax := h.syntaxFiles[event.Path]
	h.mu.Unlock()

	target := settings.GlobalTarget()
	if isSyntax {
		target = settings.SyntaxTarget(syntax)
	}
	if err := h.store.Reload(target); err != nil {
		h.log.Error().Err(err).Str("path", event.Path).Msg("reloading settings failed")
	}
}

// syntaxPath maps a syntax name to its settings file, falling back to a
// bare relative name if the config directory cannot be resolved.
func syntaxPath(syntax string) string {
	path, err := storage.SyntaxSettingsPath(syntax)
	if err != nil {
		return storage.SyntaxFileName(syntax)
	}
	return path
}
