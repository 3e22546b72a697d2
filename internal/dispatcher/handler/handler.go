// Package handler provides the handler interface and types for action
// dispatch.
package handler

import "github.com/dshills/fontscale/internal/dispatcher/execctx"

// Action is a command invocation routed to a handler.
type Action struct {
	// Name is the namespaced action name (e.g. "font.increaseView").
	Name string

	// Args are optional command arguments.
	Args map[string]any
}

// StringArg returns a string argument by key.
func (a Action) StringArg(key string) (string, bool) {
	if a.Args == nil {
		return "", false
	}
	s, ok := a.Args[key].(string)
	return s, ok
}

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool
}

// NamespaceHandler handles all actions within a namespace.
// A namespace is the prefix before the first dot (e.g. "font" in
// "font.increaseGlobal").
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(action Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix (e.g. "font").
	Namespace() string
}

// namespaceAdapter adapts NamespaceHandler to Handler.
type namespaceAdapter struct {
	h NamespaceHandler
}

// NewNamespaceAdapter creates a Handler from a NamespaceHandler.
func NewNamespaceAdapter(h NamespaceHandler) Handler {
	return &namespaceAdapter{h: h}
}

func (a *namespaceAdapter) Handle(action Action, ctx *execctx.ExecutionContext) Result {
	return a.h.HandleAction(action, ctx)
}

func (a *namespaceAdapter) CanHandle(actionName string) bool {
	return a.h.CanHandle(actionName)
}
