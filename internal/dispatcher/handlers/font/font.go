package font

import (
	"github.com/dshills/fontscale/internal/dispatcher/execctx"
	"github.com/dshills/fontscale/internal/dispatcher/handler"
	"github.com/dshills/fontscale/internal/fontsize"
	"github.com/dshills/fontscale/internal/settings"
)

// Action names for font size operations.
const (
	ActionIncreaseGlobal = "font.increaseGlobal"
	ActionDecreaseGlobal = "font.decreaseGlobal"
	ActionResetGlobal    = "font.resetGlobal"

	ActionIncreaseWindow = "font.increaseWindow"
	ActionDecreaseWindow = "font.decreaseWindow"
	ActionResetWindow    = "font.resetWindow"

	ActionIncreaseSyntax = "font.increaseSyntax"
	ActionDecreaseSyntax = "font.decreaseSyntax"
	ActionResetSyntax    = "font.resetSyntax"

	ActionIncreaseView = "font.increaseView"
	ActionDecreaseView = "font.decreaseView"
	ActionResetView    = "font.resetView"

	// Aliases for the host's built-in font commands; they act on the
	// global scope, matching the built-in behavior.
	ActionIncrease = "font.increase"
	ActionDecrease = "font.decrease"
	ActionReset    = "font.reset"
)

// command pairs a scope with an operation.
type command struct {
	Scope settings.Scope
	Op    fontsize.Op
}

// commands is the static action table. Every command the handler
// accepts appears here; dispatch is a map lookup, never reflection.
var commands = map[string]command{
	ActionIncreaseGlobal: {settings.ScopeGlobal, fontsize.OpIncrease},
	ActionDecreaseGlobal: {settings.ScopeGlobal, fontsize.OpDecrease},
	ActionResetGlobal:    {settings.ScopeGlobal, fontsize.OpReset},

	ActionIncreaseWindow: {settings.ScopeWindow, fontsize.OpIncrease},
	ActionDecreaseWindow: {settings.ScopeWindow, fontsize.OpDecrease},
	ActionResetWindow:    {settings.ScopeWindow, fontsize.OpReset},

	ActionIncreaseSyntax: {settings.ScopeSyntax, fontsize.OpIncrease},
	ActionDecreaseSyntax: {settings.ScopeSyntax, fontsize.OpDecrease},
	ActionResetSyntax:    {settings.ScopeSyntax, fontsize.OpReset},

	ActionIncreaseView: {settings.ScopeView, fontsize.OpIncrease},
	ActionDecreaseView: {settings.ScopeView, fontsize.OpDecrease},
	ActionResetView:    {settings.ScopeView, fontsize.OpReset},

	ActionIncrease: {settings.ScopeGlobal, fontsize.OpIncrease},
	ActionDecrease: {settings.ScopeGlobal, fontsize.OpDecrease},
	ActionReset:    {settings.ScopeGlobal, fontsize.OpReset},
}

// ActionFor returns the action name for a (scope, op) pair.
func ActionFor(scope settings.Scope, op fontsize.Op) (string, bool) {
	for name, cmd := range commands {
		if cmd.Scope == scope && cmd.Op == op && !isAlias(name) {
			return name, true
		}
	}
	return "", false
}

// isAlias reports whether the action is one of the unscoped aliases.
func isAlias(name string) bool {
	return name == ActionIncrease || name == ActionDecrease || name == ActionReset
}

// Actions returns all action names the handler accepts, for command
// palette listings.
func Actions() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	return names
}

// Handler implements namespace-based font command handling.
type Handler struct{}

// NewHandler creates a new font handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the font namespace.
func (h *Handler) Namespace() string {
	return "font"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	_, ok := commands[actionName]
	return ok
}

// HandleAction processes a font action.
func (h *Handler) HandleAction(action handler.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Settings == nil {
		return handler.Error(execctx.ErrMissingStore)
	}
	if ctx.Fonts == nil {
		return handler.Error(execctx.ErrMissingAdjuster)
	}

	cmd, ok := commands[action.Name]
	if !ok {
		return handler.Errorf("unknown font action %q", action.Name)
	}

	target, err := ctx.TargetFor(cmd.Scope)
	if err != nil {
		return handler.Error(err)
	}

	before := ctx.Fonts.Effective(target)
	size, err := ctx.Fonts.Apply(cmd.Op, target)
	if err != nil {
		return handler.Error(err)
	}

	// Stepping against a bound clamps to the current value; report it
	// without asking the host to redraw.
	if cmd.Op != fontsize.OpReset && size == before {
		return handler.NoOp().
			WithFontSize(size).
			WithMessage("%s font size already %d", target.Scope, size)
	}

	return handler.Success().
		WithFontSize(size).
		WithRedraw().
		WithMessage("%s font size %d", target.Scope, size)
}
