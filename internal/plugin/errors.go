package plugin

import "errors"

// Plugin lifecycle errors.
var (
	// ErrAlreadyActivated is returned when Activate is called twice.
	ErrAlreadyActivated = errors.New("plugin: already activated")

	// ErrNotActivated is returned when the plugin is used before activation.
	ErrNotActivated = errors.New("plugin: not activated")
)
