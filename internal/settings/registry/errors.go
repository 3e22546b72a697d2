package registry

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrSettingNotFound indicates the setting is not registered.
	ErrSettingNotFound = errors.New("registry: setting not found")

	// ErrSettingAlreadyRegistered indicates a duplicate registration.
	ErrSettingAlreadyRegistered = errors.New("registry: setting already registered")
)

// TypeError indicates a value had an unexpected type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("registry: setting %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}
