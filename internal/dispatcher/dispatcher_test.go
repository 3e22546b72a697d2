package dispatcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/fontscale/internal/dispatcher/execctx"
	"github.com/dshills/fontscale/internal/dispatcher/handler"
)

// stubHandler is a minimal namespace handler for routing tests.
type stubHandler struct {
	namespace string
	handled   []string
	result    handler.Result
	panicWith any
}

func (s *stubHandler) HandleAction(action handler.Action, _ *execctx.ExecutionContext) handler.Result {
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	s.handled = append(s.handled, action.Name)
	return s.result
}

func (s *stubHandler) CanHandle(actionName string) bool {
	return strings.HasPrefix(actionName, s.namespace+".")
}

func (s *stubHandler) Namespace() string {
	return s.namespace
}

func TestDispatchRoutesToNamespace(t *testing.T) {
	d := New()
	stub := &stubHandler{namespace: "font", result: handler.Success().WithFontSize(11)}
	d.RegisterNamespace("font", stub)

	result := d.Dispatch(handler.Action{Name: "font.increaseView"}, nil)
	if !result.IsOK() || result.FontSize != 11 {
		t.Errorf("result = %+v, want ok with size 11", result)
	}
	if len(stub.handled) != 1 || stub.handled[0] != "font.increaseView" {
		t.Errorf("handled = %v, want [font.increaseView]", stub.handled)
	}
}

func TestDispatchUnknownActionIsLoud(t *testing.T) {
	d := New()

	result := d.Dispatch(handler.Action{Name: "font.increase"}, nil)
	if !result.IsError() {
		t.Fatalf("result = %+v, want error", result)
	}
	if !errors.Is(result.Error, ErrNoHandler) {
		t.Errorf("error = %v, want ErrNoHandler", result.Error)
	}
	if !strings.Contains(result.Message, "font.increase") {
		t.Errorf("message %q should name the unknown command", result.Message)
	}
}

func TestDispatchEmptyAction(t *testing.T) {
	d := New()
	result := d.Dispatch(handler.Action{}, nil)
	if !errors.Is(result.Error, ErrInvalidAction) {
		t.Errorf("error = %v, want ErrInvalidAction", result.Error)
	}
}

func TestDispatchActionOutsideNamespaceClaim(t *testing.T) {
	d := New()
	stub := &stubHandler{namespace: "font", result: handler.Success()}
	d.RegisterNamespace("other", stub)

	// Registered under "other" but only claims "font.*" actions.
	result := d.Dispatch(handler.Action{Name: "other.thing"}, nil)
	if !errors.Is(result.Error, ErrNoHandler) {
		t.Errorf("error = %v, want ErrNoHandler", result.Error)
	}
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	d := New()
	d.RegisterNamespace("font", &stubHandler{namespace: "font", panicWith: "boom"})

	result := d.Dispatch(handler.Action{Name: "font.increase"}, nil)
	if !result.IsError() {
		t.Fatalf("result = %+v, want error after panic", result)
	}
	if !strings.Contains(result.Error.Error(), "boom") {
		t.Errorf("error %v should carry the panic value", result.Error)
	}
}

func TestUnregisterNamespace(t *testing.T) {
	d := New()
	d.RegisterNamespace("font", &stubHandler{namespace: "font", result: handler.Success()})
	d.UnregisterNamespace("font")

	result := d.Dispatch(handler.Action{Name: "font.increase"}, nil)
	if !errors.Is(result.Error, ErrNoHandler) {
		t.Errorf("error = %v, want ErrNoHandler after unregister", result.Error)
	}
}

func TestRouter(t *testing.T) {
	r := NewRouter()
	stub := &stubHandler{namespace: "font"}
	r.RegisterNamespace("font", stub)

	if !r.HasNamespace("font") {
		t.Error("HasNamespace(font) should be true")
	}
	if r.HasNamespace("view") {
		t.Error("HasNamespace(view) should be false")
	}
	if !r.CanRoute("font.increase") {
		t.Error("CanRoute(font.increase) should be true")
	}
	if r.CanRoute("increase") {
		t.Error("an un-namespaced action should not route")
	}
	if r.Route("view.scroll") != nil {
		t.Error("Route should return nil for unclaimed actions")
	}
	if got := r.Namespaces(); len(got) != 1 || got[0] != "font" {
		t.Errorf("Namespaces() = %v, want [font]", got)
	}
	if r.GetNamespaceHandler("font") != handler.NamespaceHandler(stub) {
		t.Error("GetNamespaceHandler should return the registered handler")
	}
}
