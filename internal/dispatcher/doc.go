// Package dispatcher routes host commands to handlers and coordinates
// execution.
//
// Commands arrive from the host's menu or command palette as namespaced
// actions (e.g. "font.increaseGlobal"). The router resolves the
// namespace prefix to a handler, the handler executes synchronously on
// the host's event thread against an execution context holding the
// settings store and the current focus, and the result reports the new
// effective font size plus whether the host should redraw.
//
// Unknown actions are loud errors: an unhandled action name means the
// command wiring is wrong, and silently defaulting would hide that.
package dispatcher
