package keymap

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Keymap is a named set of bindings.
type Keymap struct {
	// Name identifies the keymap.
	Name string `json:"name"`

	// Bindings are the key-to-action mappings.
	Bindings []Binding `json:"bindings"`
}

// Loader loads keymaps from JSON files.
type Loader struct {
	fs afero.Fs

	// validActions, when set, restricts the actions a keymap may bind.
	validActions map[string]bool
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{fs: afero.NewOsFs()}
}

// NewLoaderWithFs creates a keymap loader with a custom filesystem.
func NewLoaderWithFs(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// RestrictActions limits accepted actions to the given names. A keymap
// binding an unknown action then fails to load instead of failing
// silently at dispatch time.
func (l *Loader) RestrictActions(actions []string) {
	l.validActions = make(map[string]bool, len(actions))
	for _, action := range actions {
		l.validActions[action] = true
	}
}

// LoadFile loads a keymap from a JSON file.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	return l.LoadReader(f)
}

// LoadReader loads a keymap from a reader.
func (l *Loader) LoadReader(r io.Reader) (*Keymap, error) {
	var km Keymap
	if err := json.NewDecoder(r).Decode(&km); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	for _, b := range km.Bindings {
		if b.Keys == "" {
			return nil, fmt.Errorf("keymap %q: binding without keys", km.Name)
		}
		if b.Action == "" {
			return nil, fmt.Errorf("keymap %q: binding %q without action", km.Name, b.Keys)
		}
		if l.validActions != nil && !l.validActions[b.Action] {
			return nil, fmt.Errorf("keymap %q: binding %q targets unknown action %q", km.Name, b.Keys, b.Action)
		}
	}

	return &km, nil
}
