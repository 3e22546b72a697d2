package storage

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// appDir is the directory under the user config root that holds
// preference files.
const appDir = "fontscale"

// ErrMalformed indicates a preference file that is not a JSON object.
var ErrMalformed = errors.New("storage: malformed preferences file")

// PreferencesPath returns the path of the global preferences file,
// creating parent directories as needed.
func PreferencesPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appDir, "Preferences.json"))
}

// SyntaxSettingsPath returns the path of the settings file for a syntax.
func SyntaxSettingsPath(syntax string) (string, error) {
	return xdg.ConfigFile(filepath.Join(appDir, SyntaxFileName(syntax)))
}

// SyntaxFileName maps a syntax name or syntax definition path to its
// settings file name: the base name with the extension replaced by .json.
func SyntaxFileName(syntax string) string {
	name := filepath.Base(syntax)
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name + ".json"
}
