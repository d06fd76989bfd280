// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"

	"github.com/google/uuid"
)

const settingsDirName = ".kiln"
const settingsFileName = "telemetry.json"
const settingsDirPermissions = 0755
const settingsFilePermissions = 0644

// Settings is the persisted usage-collection state for this installation.
type Settings struct {
	// Enabled stores the user's opt-in/out choice. Nil means the user has
	// never chosen, which counts as enabled.
	Enabled *bool `json:"enabled,omitempty"`

	// ClientId anonymously identifies this installation across sessions.
	ClientId string `json:"clientId"`

	path string
}

// LoadSettings reads the persisted settings, minting and saving a fresh
// client id on first run.
func LoadSettings() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}
	return loadSettingsFrom(path)
}

func loadSettingsFrom(path string) (*Settings, error) {
	settings := &Settings{path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run.
	case err != nil:
		return nil, fmt.Errorf("failed to read telemetry settings: %w", err)
	default:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse telemetry settings: %w", err)
		}
	}

	if settings.ClientId == "" {
		settings.ClientId = uuid.NewString()
		if err := settings.Save(); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// Save writes the settings back to disk.
func (s *Settings) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal telemetry settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), settingsDirPermissions); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, settingsFilePermissions); err != nil {
		return fmt.Errorf("failed to write telemetry settings: %w", err)
	}

	return nil
}

// SetEnabled records the user's collection choice.
func (s *Settings) SetEnabled(enabled bool) {
	s.Enabled = &enabled
}

// CollectionEnabled reports whether usage collection is active for this
// session. The environment kill switch always wins over the persisted choice.
func (s *Settings) CollectionEnabled() bool {
	if !IsTelemetryEnabled() {
		return false
	}
	return s.Enabled == nil || *s.Enabled
}

func settingsPath() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("could not determine current user: %w", err)
	}
	return filepath.Join(u.HomeDir, settingsDirName, settingsFileName), nil
}
