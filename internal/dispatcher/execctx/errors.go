package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingStore indicates the settings store is required but not set.
	ErrMissingStore = errors.New("execution context: settings store is required")

	// ErrMissingAdjuster indicates the font adjuster is required but not set.
	ErrMissingAdjuster = errors.New("execution context: font adjuster is required")

	// ErrMissingWindow indicates the action needs a focused window.
	ErrMissingWindow = errors.New("execution context: no focused window")

	// ErrMissingView indicates the action needs a focused view.
	ErrMissingView = errors.New("execution context: no focused view")

	// ErrMissingSyntax indicates the action needs a view with a syntax.
	ErrMissingSyntax = errors.New("execution context: focused view has no syntax")
)
