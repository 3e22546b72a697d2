package plugin

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// Manifest describes the plugin's metadata and contributions.
type Manifest struct {
	// Identity
	Name        string `json:"name"`        // Unique identifier
	Version     string `json:"version"`     // Semver (e.g. "1.0.0")
	DisplayName string `json:"displayName"` // Human-readable name
	Description string `json:"description"` // Short description
	Author      string `json:"author"`      // Author name or org
	License     string `json:"license"`     // SPDX license identifier

	// Contributions
	Commands []CommandContribution `json:"commands"`

	// Configuration schema
	ConfigSchema map[string]ConfigProperty `json:"configSchema"`
}

// CommandContribution declares a command the plugin provides.
type CommandContribution struct {
	ID          string `json:"id"`          // Command ID (e.g. "font.increaseGlobal")
	Title       string `json:"title"`       // Display title
	Description string `json:"description"` // Long description
	Category    string `json:"category"`    // Command category
}

// ConfigProperty describes a configuration option.
type ConfigProperty struct {
	Type        string   `json:"type"`              // string, number, boolean
	Default     any      `json:"default"`           // Default value
	Description string   `json:"description"`       // Property description
	Minimum     *float64 `json:"minimum,omitempty"` // Minimum value for numbers
	Maximum     *float64 `json:"maximum,omitempty"` // Maximum value for numbers
}

// Validation errors.
var (
	ErrMissingName        = errors.New("manifest: name is required")
	ErrInvalidName        = errors.New("manifest: name must be alphanumeric with hyphens")
	ErrMissingVersion     = errors.New("manifest: version is required")
	ErrInvalidVersion     = errors.New("manifest: version must be valid semver")
	ErrInvalidConfigType  = errors.New("manifest: invalid config property type")
	ErrMissingCommandID   = errors.New("manifest: command id is required")
	ErrMissingCommandName = errors.New("manifest: command title is required")
)

// namePattern validates plugin names.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

// semverPattern validates version strings (simplified semver).
var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)

// validConfigTypes are the allowed configuration property types.
var validConfigTypes = map[string]bool{
	"string":  true,
	"number":  true,
	"boolean": true,
}

// ParseManifest parses and validates a manifest from JSON.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks the manifest for required fields and valid values.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, m.Name)
	}
	if m.Version == "" {
		return ErrMissingVersion
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, m.Version)
	}

	for _, cmd := range m.Commands {
		if cmd.ID == "" {
			return ErrMissingCommandID
		}
		if cmd.Title == "" {
			return fmt.Errorf("%w: %s", ErrMissingCommandName, cmd.ID)
		}
	}

	for key, prop := range m.ConfigSchema {
		if !validConfigTypes[prop.Type] {
			return fmt.Errorf("%w: %s has type %q", ErrInvalidConfigType, key, prop.Type)
		}
	}

	return nil
}
