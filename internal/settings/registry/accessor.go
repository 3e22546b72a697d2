package registry

import "fmt"

// ValueStore is the interface for accessing raw configuration values.
type ValueStore interface {
	// GetValue returns the value at the given path.
	// Returns nil, false if the path doesn't exist.
	GetValue(path string) (any, bool)
}

// MapValueStore wraps a nested map as a ValueStore.
type MapValueStore struct {
	data map[string]any
}

// NewMapValueStore creates a ValueStore from a nested map.
func NewMapValueStore(data map[string]any) *MapValueStore {
	return &MapValueStore{data: data}
}

// GetValue returns the value at the given path.
func (s *MapValueStore) GetValue(path string) (any, bool) {
	val, ok := s.data[path]
	return val, ok
}

// Accessor provides type-safe access to configuration values.
// It wraps a value store and uses the registry for defaults.
type Accessor struct {
	registry *Registry
	values   ValueStore
}

// NewAccessor creates a new type-safe accessor.
func NewAccessor(registry *Registry, values ValueStore) *Accessor {
	return &Accessor{
		registry: registry,
		values:   values,
	}
}

// Get returns the raw value at the given path.
// If the value is not set, returns the default from the registry.
// Returns ErrSettingNotFound if the setting is not registered.
func (a *Accessor) Get(path string) (any, error) {
	if val, ok := a.values.GetValue(path); ok {
		return val, nil
	}

	setting := a.registry.Get(path)
	if setting == nil {
		return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}

	return setting.Default, nil
}

// GetInt returns an integer value at the given path.
func (a *Accessor) GetInt(path string) (int, error) {
	val, err := a.Get(path)
	if err != nil {
		return 0, err
	}

	if val == nil {
		return 0, nil
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, &TypeError{
			Path:     path,
			Expected: "integer",
			Actual:   fmt.Sprintf("%T", val),
		}
	}
}

// GetFloat64 returns a float64 value at the given path.
func (a *Accessor) GetFloat64(path string) (float64, error) {
	val, err := a.Get(path)
	if err != nil {
		return 0, err
	}

	if val == nil {
		return 0, nil
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, &TypeError{
			Path:     path,
			Expected: "number",
			Actual:   fmt.Sprintf("%T", val),
		}
	}
}

// GetString returns a string value at the given path.
func (a *Accessor) GetString(path string) (string, error) {
	val, err := a.Get(path)
	if err != nil {
		return "", err
	}

	if val == nil {
		return "", nil
	}

	s, ok := val.(string)
	if !ok {
		return "", &TypeError{
			Path:     path,
			Expected: "string",
			Actual:   fmt.Sprintf("%T", val),
		}
	}

	return s, nil
}

// GetBool returns a boolean value at the given path.
func (a *Accessor) GetBool(path string) (bool, error) {
	val, err := a.Get(path)
	if err != nil {
		return false, err
	}

	if val == nil {
		return false, nil
	}

	b, ok := val.(bool)
	if !ok {
		return false, &TypeError{
			Path:     path,
			Expected: "boolean",
			Actual:   fmt.Sprintf("%T", val),
		}
	}

	return b, nil
}
