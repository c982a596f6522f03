package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/model"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config [command]",
	Aliases: []string{"cfg"},
	Short:   "Read and write settings",
	Long: `Read and write settings. Keys:

  nickname    Name used in greetings (default: empty)
  background  Dashboard background style (default: plain)
  api_url     Recognition service base URL
  api_token   Recognition service bearer token (default: empty)
  user_key    Recognition service user key (default: empty)

DAYBOOK_API_URL, DAYBOOK_API_TOKEN, and DAYBOOK_USER_KEY override the
stored values for a single run without touching the config file.`,
	RunE: runConfigList,
}

// configListCmd lists all settings.
var configListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all settings",
	RunE:    runConfigList,
}

// configGetCmd prints one setting.
var configGetCmd = &cobra.Command{
	Use:       "get KEY",
	Short:     "Print one setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: model.SettingsKeys(),
	RunE:      runConfigGet,
}

// configSetCmd changes one setting.
var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(ctx.Settings)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Settings")
	for _, key := range model.SettingsKeys() {
		value, _ := ctx.Settings.Get(key)
		if value == "" {
			cli.Printf("  %-11s %s\n", key, "(unset)")
			continue
		}
		cli.Printf("  %-11s %s\n", key, value)
	}
	cli.Muted("Config file: " + ctx.SettingsPath)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := ctx.Settings.Get(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{args[0]: value})
	}
	ctx.Formatter.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := ctx.Settings.Set(key, value); err != nil {
		return err
	}
	if err := ctx.SaveSettings(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{key: value})
	}
	ctx.CLIFormatter().Success("Set " + key)
	return nil
}
