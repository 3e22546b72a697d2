package settings

import "time"

// Layer holds the raw values for one settings object.
type Layer struct {
	// Name identifies the layer (e.g. "global", "syntax:Go", "view:3").
	Name string

	// Scope is the level this layer belongs to.
	Scope Scope

	// Path is the backing file path. Empty for memory-only layers.
	Path string

	// Data holds the settings values as a nested map.
	Data map[string]any

	// ModTime is when the backing file was last loaded or written.
	ModTime time.Time
}

// NewLayer creates an empty layer for a scope.
func NewLayer(name string, scope Scope) *Layer {
	return &Layer{
		Name:  name,
		Scope: scope,
		Data:  make(map[string]any),
	}
}

// NewLayerWithData creates a layer with initial data.
func NewLayerWithData(name string, scope Scope, data map[string]any) *Layer {
	if data == nil {
		data = make(map[string]any)
	}
	return &Layer{
		Name:    name,
		Scope:   scope,
		Data:    data,
		ModTime: time.Now(),
	}
}

// Get returns the value at the given dot-separated path.
func (l *Layer) Get(path string) (any, bool) {
	return GetByPath(l.Data, path)
}

// Set stores a value at the given dot-separated path.
func (l *Layer) Set(path string, value any) {
	if l.Data == nil {
		l.Data = make(map[string]any)
	}
	SetByPath(l.Data, path, value)
}

// Delete removes the value at the given path. Returns true if it existed.
func (l *Layer) Delete(path string) bool {
	return DeleteByPath(l.Data, path)
}

// Has reports whether the layer has a value at the given path.
func (l *Layer) Has(path string) bool {
	_, ok := GetByPath(l.Data, path)
	return ok
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		Name:    l.Name,
		Scope:   l.Scope,
		Path:    l.Path,
		Data:    cloneMap(l.Data),
		ModTime: l.ModTime,
	}
}
