package settings

import "fmt"

// WindowID identifies an editor window.
type WindowID int

// ViewID identifies a single view (tab) within a window.
type ViewID int

// Target identifies one concrete settings object: a scope plus the
// identifiers needed to locate the layer for that scope. A view target
// also carries its syntax and window so resolution can fall back through
// the less specific scopes.
type Target struct {
	// Scope selects which layer the target addresses.
	Scope Scope

	// Window identifies the window layer. Zero means no window.
	Window WindowID

	// Syntax names the syntax layer. Empty means no syntax.
	Syntax string

	// View identifies the view layer. Zero means no view.
	View ViewID
}

// GlobalTarget addresses the global preferences object.
func GlobalTarget() Target {
	return Target{Scope: ScopeGlobal}
}

// WindowTarget addresses the settings object of a window.
func WindowTarget(window WindowID) Target {
	return Target{Scope: ScopeWindow, Window: window}
}

// SyntaxTarget addresses the settings object of a syntax.
func SyntaxTarget(syntax string) Target {
	return Target{Scope: ScopeSyntax, Syntax: syntax}
}

// ViewTarget addresses the settings object of a view. The window and
// syntax give the fallback chain for effective-value resolution.
func ViewTarget(view ViewID, window WindowID, syntax string) Target {
	return Target{Scope: ScopeView, View: view, Window: window, Syntax: syntax}
}

// Validate checks that the target carries the identifier its scope needs.
func (t Target) Validate() error {
	switch t.Scope {
	case ScopeGlobal:
		return nil
	case ScopeWindow:
		if t.Window == 0 {
			return fmt.Errorf("%w: window target without window id", ErrInvalidTarget)
		}
	case ScopeSyntax:
		if t.Syntax == "" {
			return fmt.Errorf("%w: syntax target without syntax name", ErrInvalidTarget)
		}
	case ScopeView:
		if t.View == 0 {
			return fmt.Errorf("%w: view target without view id", ErrInvalidTarget)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownScope, t.Scope)
	}
	return nil
}

// String returns a human-readable description of the target.
func (t Target) String() string {
	switch t.Scope {
	case ScopeWindow:
		return fmt.Sprintf("window(%d)", t.Window)
	case ScopeSyntax:
		return fmt.Sprintf("syntax(%s)", t.Syntax)
	case ScopeView:
		return fmt.Sprintf("view(%d)", t.View)
	default:
		return t.Scope.String()
	}
}

// chain returns the targets to consult, most specific first, when
// resolving an effective value for this target. Scopes whose identifier
// is absent are skipped.
func (t Target) chain() []Target {
	chain := make([]Target, 0, len(ResolutionOrder))
	for _, scope := range ResolutionOrder {
		if scope.Priority() > t.Scope.Priority() {
			continue
		}
		switch scope {
		case ScopeView:
			if t.View != 0 {
				chain = append(chain, Target{Scope: ScopeView, View: t.View})
			}
		case ScopeSyntax:
			if t.Syntax != "" {
				chain = append(chain, Target{Scope: ScopeSyntax, Syntax: t.Syntax})
			}
		case ScopeWindow:
			if t.Window != 0 {
				chain = append(chain, Target{Scope: ScopeWindow, Window: t.Window})
			}
		case ScopeGlobal:
			chain = append(chain, Target{Scope: ScopeGlobal})
		}
	}
	return chain
}
