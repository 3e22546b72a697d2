// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/rs/zerolog"

	"github.com/dshills/fontscale/internal/fontsize"
	"github.com/dshills/fontscale/internal/settings"
)

// ExecutionContext carries the collaborators and the focus state an
// action executes against: which window, view, and syntax are current
// when the user invokes a command.
type ExecutionContext struct {
	// Settings is the scoped settings store.
	Settings *settings.Store

	// Fonts applies font size operations.
	Fonts *fontsize.Adjuster

	// Window is the focused window. Zero means no window.
	Window settings.WindowID

	// View is the focused view. Zero means no view.
	View settings.ViewID

	// Syntax is the syntax of the focused view. Empty means none.
	Syntax string

	// Log is the handler logger.
	Log zerolog.Logger
}

// New creates an execution context over the store and adjuster.
func New(store *settings.Store, fonts *fontsize.Adjuster) *ExecutionContext {
	return &ExecutionContext{
		Settings: store,
		Fonts:    fonts,
		Log:      zerolog.Nop(),
	}
}

// WithFocus returns a copy of the context focused on the given window,
// view, and syntax.
func (c *ExecutionContext) WithFocus(window settings.WindowID, view settings.ViewID, syntax string) *ExecutionContext {
	cp := *c
	cp.Window = window
	cp.View = view
	cp.Syntax = syntax
	return &cp
}

// TargetFor builds the settings target a scope addresses given the
// current focus. Scopes whose focus identifier is absent are errors;
// adjusting a window scope with no focused window is a wiring bug.
func (c *ExecutionContext) TargetFor(scope settings.Scope) (settings.Target, error) {
	switch scope {
	case settings.ScopeGlobal:
		return settings.GlobalTarget(), nil
	case settings.ScopeWindow:
		if c.Window == 0 {
			return settings.Target{}, ErrMissingWindow
		}
		return settings.WindowTarget(c.Window), nil
	case settings.ScopeSyntax:
		if c.Syntax == "" {
			return settings.Target{}, ErrMissingSyntax
		}
		return settings.SyntaxTarget(c.Syntax), nil
	case settings.ScopeView:
		if c.View == 0 {
			return settings.Target{}, ErrMissingView
		}
		return settings.ViewTarget(c.View, c.Window, c.Syntax), nil
	default:
		return settings.Target{}, settings.ErrUnknownScope
	}
}
