// Package storage persists settings objects as JSON preference files.
//
// Files are edited key-in-place so unrelated user content survives our
// writes: reads go through gjson, single-key updates through sjson, and
// the rest of the document is left byte-for-byte untouched.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Files reads and writes JSON preference files.
type Files struct {
	fs afero.Fs
}

// New creates a Files store backed by the OS filesystem.
func New() *Files {
	return &Files{fs: afero.NewOsFs()}
}

// NewWithFs creates a Files store backed by the given filesystem.
func NewWithFs(fs afero.Fs) *Files {
	return &Files{fs: fs}
}

// Fs returns the underlying filesystem.
func (f *Files) Fs() afero.Fs {
	return f.fs
}

// Load reads a preference file into a nested map.
// A missing file is not an error; it returns nil, nil.
func (f *Files) Load(path string) (map[string]any, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading preferences %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, path)
	}

	parsed := gjson.ParseBytes(data).Value()
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: top level is not an object", ErrMalformed, path)
	}

	return obj, nil
}

// SetKey writes a single key into a preference file, creating the file
// if it does not exist. All other keys are preserved as written.
func (f *Files) SetKey(path, key string, value any) error {
	data, err := f.readOrEmpty(path)
	if err != nil {
		return err
	}

	updated, err := sjson.SetBytes(data, key, value)
	if err != nil {
		return fmt.Errorf("setting %s in %s: %w", key, path, err)
	}

	return f.write(path, updated)
}

// DeleteKey removes a single key from a preference file. Deleting a key
// that is absent, or from a file that does not exist, is a no-op.
func (f *Files) DeleteKey(path, key string) error {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading preferences %s: %w", path, err)
	}

	updated, err := sjson.DeleteBytes(data, key)
	if err != nil {
		return fmt.Errorf("deleting %s from %s: %w", key, path, err)
	}

	return f.write(path, updated)
}

// HasKey reports whether a preference file contains a key.
func (f *Files) HasKey(path, key string) (bool, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading preferences %s: %w", path, err)
	}

	return gjson.GetBytes(data, key).Exists(), nil
}

// readOrEmpty returns the file contents, or an empty JSON object for a
// missing or empty file.
func (f *Files) readOrEmpty(path string) ([]byte, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("reading preferences %s: %w", path, err)
	}
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	return data, nil
}

// write persists file contents, creating parent directories as needed.
func (f *Files) write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(f.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences %s: %w", path, err)
	}
	return nil
}
