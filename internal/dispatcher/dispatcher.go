package dispatcher

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/dshills/fontscale/internal/dispatcher/execctx"
	"github.com/dshills/fontscale/internal/dispatcher/handler"
)

// Dispatcher routes actions to namespace handlers. Dispatch runs
// synchronously on the host's event thread; each command runs to
// completion before the next event is processed.
type Dispatcher struct {
	router *Router
	log    zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// New creates a new dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		router: NewRouter(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RegisterNamespace registers a handler for all actions in a namespace.
func (d *Dispatcher) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	d.router.RegisterNamespace(namespace, h)
}

// UnregisterNamespace removes a namespace handler.
func (d *Dispatcher) UnregisterNamespace(namespace string) {
	d.router.UnregisterNamespace(namespace)
}

// Router returns the action router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Dispatch routes an action to its handler and returns the result.
// An action no handler claims is an error result with a visible
// message; silent defaulting would hide command wiring bugs.
func (d *Dispatcher) Dispatch(action handler.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Name == "" {
		return handler.Error(ErrInvalidAction)
	}

	h := d.router.Route(action.Name)
	if h == nil {
		d.log.Error().Str("action", action.Name).Msg("no handler for action")
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, action.Name)).
			WithMessage("unknown command %q", action.Name)
	}

	result := d.executeWithRecovery(h, action, ctx)

	if result.IsError() {
		d.log.Error().
			Err(result.Error).
			Str("action", action.Name).
			Msg("action failed")
	} else {
		d.log.Debug().
			Str("action", action.Name).
			Stringer("status", result.Status).
			Msg("action dispatched")
	}

	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action handler.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			result = handler.Errorf("handler panic for %s: %v\n%s", action.Name, r, string(stack[:n]))
		}
	}()

	return h.Handle(action, ctx)
}
