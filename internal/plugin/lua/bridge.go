// Package lua exposes the font commands to the host's Lua plugin
// runtime as a "font" module.
//
// Lua side:
//
//	local font = require("font")
//	font.increase("view")   -- step the view font size up
//	font.decrease()         -- scope defaults to "global"
//	font.reset("syntax")
//	local size = font.size("view")
//
// Functions return the resulting font size, or nil and an error
// message for an unknown scope or a missing focus.
package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/fontscale/internal/dispatcher"
	"github.com/dshills/fontscale/internal/dispatcher/execctx"
	"github.com/dshills/fontscale/internal/dispatcher/handler"
	"github.com/dshills/fontscale/internal/dispatcher/handlers/font"
	"github.com/dshills/fontscale/internal/fontsize"
	"github.com/dshills/fontscale/internal/settings"
)

// ContextFunc supplies the execution context for a call, focused on
// whatever window and view are current in the host.
type ContextFunc func() *execctx.ExecutionContext

// Bridge provides the Lua font module over a dispatcher.
type Bridge struct {
	disp    *dispatcher.Dispatcher
	context ContextFunc
}

// NewBridge creates a Bridge.
func NewBridge(disp *dispatcher.Dispatcher, context ContextFunc) *Bridge {
	return &Bridge{disp: disp, context: context}
}

// Preload registers the font module so Lua code can require("font").
func (b *Bridge) Preload(L *lua.LState) {
	L.PreloadModule("font", b.Loader)
}

// Loader is the lua module loader for the font module.
func (b *Bridge) Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"increase": b.adjustFunc(fontsize.OpIncrease),
		"decrease": b.adjustFunc(fontsize.OpDecrease),
		"reset":    b.adjustFunc(fontsize.OpReset),
		"size":     b.sizeFunc(),
	})
	L.Push(mod)
	return 1
}

// adjustFunc builds a Lua function dispatching one operation. The
// single optional argument names the scope and defaults to "global".
func (b *Bridge) adjustFunc(op fontsize.Op) lua.LGFunction {
	return func(L *lua.LState) int {
		scope, err := parseScopeArg(L)
		if err != nil {
			return pushError(L, err)
		}

		name, ok := font.ActionFor(scope, op)
		if !ok {
			return pushError(L, fontsize.ErrUnknownOp)
		}

		result := b.disp.Dispatch(handler.Action{Name: name}, b.context())
		if result.IsError() {
			return pushError(L, result.Error)
		}

		L.Push(lua.LNumber(result.FontSize))
		return 1
	}
}

// sizeFunc builds the Lua function returning the effective font size.
func (b *Bridge) sizeFunc() lua.LGFunction {
	return func(L *lua.LState) int {
		scope, err := parseScopeArg(L)
		if err != nil {
			return pushError(L, err)
		}

		ctx := b.context()
		if ctx.Fonts == nil {
			return pushError(L, execctx.ErrMissingAdjuster)
		}

		target, err := ctx.TargetFor(scope)
		if err != nil {
			return pushError(L, err)
		}

		L.Push(lua.LNumber(ctx.Fonts.Effective(target)))
		return 1
	}
}

// parseScopeArg reads the optional scope argument.
func parseScopeArg(L *lua.LState) (settings.Scope, error) {
	return settings.ParseScope(L.OptString(1, "global"))
}

// pushError pushes the nil, message error pair Lua callers expect.
func pushError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}
