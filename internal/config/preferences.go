package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"newsdigest/sdk/news"
)

// Preferences stores cosmetic defaults between runs. Mode and server state
// are never persisted here; they are re-derived from the snapshot.
type Preferences struct {
	SummaryOptions *news.SummaryOptions `json:"summaryOptions,omitempty"`
	RevealInterval time.Duration        `json:"revealInterval,omitempty"`
}

// DefaultPreferences returns the defaults used when no file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{
		RevealInterval: 150 * time.Millisecond,
	}
}

func preferencesPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "preferences.json"), nil
}

// LoadPreferences loads preferences from disk, falling back to defaults.
func LoadPreferences() (*Preferences, error) {
	path, err := preferencesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return nil, err
	}

	prefs := DefaultPreferences()
	if err := json.Unmarshal(data, prefs); err != nil {
		return nil, err
	}
	if prefs.RevealInterval <= 0 {
		prefs.RevealInterval = 150 * time.Millisecond
	}
	return prefs, nil
}

// SavePreferences writes preferences to disk, creating the directory if
// needed.
func SavePreferences(prefs *Preferences) error {
	path, err := preferencesPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
