package settings

import (
	"errors"
	"testing"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name  string
		want  Scope
		valid bool
	}{
		{"global", ScopeGlobal, true},
		{"window", ScopeWindow, true},
		{"syntax", ScopeSyntax, true},
		{"view", ScopeView, true},
		{"buffer", 0, false},
		{"", 0, false},
		{"Global", 0, false},
	}

	for _, tt := range tests {
		scope, err := ParseScope(tt.name)
		if tt.valid {
			if err != nil {
				t.Errorf("ParseScope(%q) error: %v", tt.name, err)
				continue
			}
			if scope != tt.want {
				t.Errorf("ParseScope(%q) = %v, want %v", tt.name, scope, tt.want)
			}
		} else {
			if err == nil {
				t.Errorf("ParseScope(%q) should fail", tt.name)
			}
			if !errors.Is(err, ErrUnknownScope) {
				t.Errorf("ParseScope(%q) error = %v, want ErrUnknownScope", tt.name, err)
			}
		}
	}
}

func TestScopeString(t *testing.T) {
	tests := []struct {
		scope Scope
		want  string
	}{
		{ScopeGlobal, "global"},
		{ScopeWindow, "window"},
		{ScopeSyntax, "syntax"},
		{ScopeView, "view"},
		{Scope(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.scope.String(); got != tt.want {
			t.Errorf("Scope(%d).String() = %q, want %q", tt.scope, got, tt.want)
		}
	}
}

func TestScopeValid(t *testing.T) {
	for _, scope := range []Scope{ScopeGlobal, ScopeWindow, ScopeSyntax, ScopeView} {
		if !scope.Valid() {
			t.Errorf("%v should be valid", scope)
		}
	}
	if (Scope(4)).Valid() {
		t.Error("out-of-range scope should be invalid")
	}
}

func TestScopePriorityOrdering(t *testing.T) {
	// More specific scopes must override less specific ones.
	if !(ScopeGlobal.Priority() < ScopeWindow.Priority()) {
		t.Error("window should override global")
	}
	if !(ScopeWindow.Priority() < ScopeSyntax.Priority()) {
		t.Error("syntax should override window")
	}
	if !(ScopeSyntax.Priority() < ScopeView.Priority()) {
		t.Error("view should override syntax")
	}
}

func TestResolutionOrderMatchesPriorities(t *testing.T) {
	for i := 1; i < len(ResolutionOrder); i++ {
		if ResolutionOrder[i-1].Priority() <= ResolutionOrder[i].Priority() {
			t.Errorf("ResolutionOrder[%d]=%v should have higher priority than %v",
				i-1, ResolutionOrder[i-1], ResolutionOrder[i])
		}
	}
}

func TestTargetValidate(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		wantErr error
	}{
		{"global", GlobalTarget(), nil},
		{"window", WindowTarget(1), nil},
		{"syntax", SyntaxTarget("Go"), nil},
		{"view", ViewTarget(3, 1, "Go"), nil},
		{"window without id", Target{Scope: ScopeWindow}, ErrInvalidTarget},
		{"syntax without name", Target{Scope: ScopeSyntax}, ErrInvalidTarget},
		{"view without id", Target{Scope: ScopeView}, ErrInvalidTarget},
		{"unknown scope", Target{Scope: Scope(42)}, ErrUnknownScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTargetChain(t *testing.T) {
	// A fully focused view target falls back through all four scopes.
	full := ViewTarget(3, 2, "Go")
	chain := full.chain()
	wantScopes := []Scope{ScopeView, ScopeSyntax, ScopeWindow, ScopeGlobal}
	if len(chain) != len(wantScopes) {
		t.Fatalf("chain length = %d, want %d", len(chain), len(wantScopes))
	}
	for i, want := range wantScopes {
		if chain[i].Scope != want {
			t.Errorf("chain[%d].Scope = %v, want %v", i, chain[i].Scope, want)
		}
	}

	// A view with no syntax skips the syntax link.
	noSyntax := ViewTarget(3, 2, "")
	chain = noSyntax.chain()
	if len(chain) != 3 {
		t.Fatalf("chain length = %d, want 3", len(chain))
	}
	if chain[1].Scope != ScopeWindow {
		t.Errorf("chain[1].Scope = %v, want window", chain[1].Scope)
	}

	// A window target never consults view or syntax layers.
	window := WindowTarget(2)
	chain = window.chain()
	if len(chain) != 2 || chain[0].Scope != ScopeWindow || chain[1].Scope != ScopeGlobal {
		t.Errorf("window chain = %v, want [window global]", chain)
	}

	// The global target resolves against itself only.
	chain = GlobalTarget().chain()
	if len(chain) != 1 || chain[0].Scope != ScopeGlobal {
		t.Errorf("global chain = %v, want [global]", chain)
	}
}
