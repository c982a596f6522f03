package store

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for data directories.
	AppName = "daybook"

	// Backing file names, one JSON document per entity kind.
	JournalFile  = "journals.json"
	MoneyFile    = "money.json"
	FoodFile     = "food.json"
	SettingsFile = "config.json"
)

// DefaultDir returns the default data directory following the XDG spec.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// DefaultSettingsPath returns the default settings file path.
func DefaultSettingsPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, SettingsFile)
}
