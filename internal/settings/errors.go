package settings

import "errors"

// Settings store errors.
var (
	// ErrUnknownScope indicates a scope outside the four known levels.
	// This is a wiring bug in command definitions, never silently defaulted.
	ErrUnknownScope = errors.New("settings: unknown scope")

	// ErrInvalidTarget indicates a target missing the identifier its
	// scope requires.
	ErrInvalidTarget = errors.New("settings: invalid target")
)
