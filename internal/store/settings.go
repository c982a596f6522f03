package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/daybook-cli/daybook/internal/logging"
	"github.com/daybook-cli/daybook/internal/model"
)

// LoadSettings reads settings from path. Like entity stores, loading is
// best-effort: any failure yields the documented defaults.
func LoadSettings(path string) model.Settings {
	settings := model.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debug("settings load failed, using defaults", "path", path, "error", err)
		}
		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		logging.Debug("settings decode failed, using defaults", "path", path, "error", err)
		return model.DefaultSettings()
	}
	return settings
}

// SaveSettings writes settings to path. Settings writes are user-initiated,
// so unlike entity snapshots the error is surfaced to the caller.
func SaveSettings(path string, settings model.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
