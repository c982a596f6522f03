// Package runtime provides the application runtime context for Daybook.
package runtime

import (
	"os"
	"path/filepath"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/output"
	"github.com/daybook-cli/daybook/internal/recognize"
	"github.com/daybook-cli/daybook/internal/store"
)

// Context holds the application runtime context shared by all commands.
type Context struct {
	// Stores, one per entity kind.
	Journal *store.Store[model.JournalEntry]
	Money   *store.Store[model.MoneyEntry]
	Food    *store.Store[model.FoodEntry]

	Settings     model.Settings
	SettingsPath string
	Recognizer   *recognize.Client
	Formatter    *output.Formatter

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DataDir      string
	SettingsPath string
	Format       output.Format
	ColorMode    output.ColorMode
	Debug        bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DataDir:      store.DefaultDir(),
		SettingsPath: store.DefaultSettingsPath(),
		Format:       output.FormatCLI,
		ColorMode:    output.ColorAuto,
	}
}

// New creates a new runtime context: loads settings, opens the three
// entity stores, and wires the recognition client.
func New(opts Options) (*Context, error) {
	if envDir := os.Getenv("DAYBOOK_DATA"); envDir != "" {
		opts.DataDir = envDir
	}

	settings := store.LoadSettings(opts.SettingsPath)
	applySettingsEnv(&settings)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	recognizer := recognize.NewClient(recognize.Options{
		BaseURL: settings.APIURL,
		Token:   settings.APIToken,
		UserKey: settings.UserKey,
	})

	return &Context{
		Journal:      store.Open[model.JournalEntry](filepath.Join(opts.DataDir, store.JournalFile)),
		Money:        store.Open[model.MoneyEntry](filepath.Join(opts.DataDir, store.MoneyFile)),
		Food:         store.Open[model.FoodEntry](filepath.Join(opts.DataDir, store.FoodFile)),
		Settings:     settings,
		SettingsPath: opts.SettingsPath,
		Recognizer:   recognizer,
		Formatter:    formatter,
		Debug:        opts.Debug,
	}, nil
}

// applySettingsEnv lets environment variables override stored credentials.
func applySettingsEnv(settings *model.Settings) {
	if v := os.Getenv("DAYBOOK_API_URL"); v != "" {
		settings.APIURL = v
	}
	if v := os.Getenv("DAYBOOK_API_TOKEN"); v != "" {
		settings.APIToken = v
	}
	if v := os.Getenv("DAYBOOK_USER_KEY"); v != "" {
		settings.UserKey = v
	}
}

// SaveSettings persists the context's settings object.
func (c *Context) SaveSettings() error {
	return store.SaveSettings(c.SettingsPath, c.Settings)
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
