// Package settings provides the scoped settings store for fontscale.
//
// Settings live in four scopes with fixed precedence. A value set on a
// view overrides its syntax, which overrides the window, which overrides
// the global preferences; registered defaults sit below all four.
package settings

import "fmt"

// Scope identifies the level at which a setting is stored.
type Scope uint8

const (
	// ScopeGlobal is the user's global preferences object.
	ScopeGlobal Scope = iota
	// ScopeWindow is the per-window (project) settings object.
	ScopeWindow
	// ScopeSyntax is the per-syntax settings object.
	ScopeSyntax
	// ScopeView is the per-view settings object.
	ScopeView
)

// ResolutionOrder lists scopes from most to least specific. Resolve walks
// this order and stops at the first scope that has a value.
var ResolutionOrder = []Scope{ScopeView, ScopeSyntax, ScopeWindow, ScopeGlobal}

// String returns a human-readable name for the scope.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeWindow:
		return "window"
	case ScopeSyntax:
		return "syntax"
	case ScopeView:
		return "view"
	default:
		return "unknown"
	}
}

// Valid reports whether the scope is one of the four known scopes.
func (s Scope) Valid() bool {
	return s <= ScopeView
}

// ParseScope parses a scope name. An unrecognized name is an error, not a
// silent default; command wiring bugs must surface.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "global":
		return ScopeGlobal, nil
	case "window":
		return ScopeWindow, nil
	case "syntax":
		return ScopeSyntax, nil
	case "view":
		return ScopeView, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScope, name)
	}
}

// Priority returns the merge priority for a scope. Higher values override
// lower values during resolution.
func (s Scope) Priority() int {
	switch s {
	case ScopeGlobal:
		return PriorityGlobal
	case ScopeWindow:
		return PriorityWindow
	case ScopeSyntax:
		return PrioritySyntax
	case ScopeView:
		return PriorityView
	default:
		return 0
	}
}

// Standard priority levels for scope layers.
const (
	// PriorityGlobal is for the user's global preferences.
	PriorityGlobal = 100

	// PriorityWindow is for per-window project settings.
	PriorityWindow = 200

	// PrioritySyntax is for per-syntax settings files.
	PrioritySyntax = 300

	// PriorityView is the highest priority, for per-view overrides.
	PriorityView = 400
)
