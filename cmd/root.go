// Package cmd provides the CLI commands for Daybook.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/logging"
	"github.com/daybook-cli/daybook/internal/output"
	"github.com/daybook-cli/daybook/internal/parser"
	"github.com/daybook-cli/daybook/internal/runtime"
	"github.com/daybook-cli/daybook/internal/stats"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "A personal wellbeing logbook",
	Long: `Daybook keeps a local journal, spending log, and food log, with
trailing-week charts and photo-based meal recognition.

Examples:
  daybook journal add "slept well, long walk before work"
  daybook money add 12.50 --method card --note "lunch"
  daybook food log Ramen --calories 450
  daybook food recognize dinner.jpg
  daybook stats food
  daybook dashboard`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.Init(logging.DebugConfig())
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday()
	},
}

// runToday shows a summary of today's entries.
func runToday() error {
	now := time.Now()

	spentToday := 0.0
	for _, e := range ctx.Money.Items() {
		if stats.StartOfDay(e.CreatedAt).Equal(stats.StartOfDay(now)) {
			spentToday += e.Amount
		}
	}
	caloriesToday := 0
	for _, e := range ctx.Food.Items() {
		if stats.StartOfDay(e.CreatedAt).Equal(stats.StartOfDay(now)) {
			caloriesToday += e.Calories
		}
	}
	journalToday := stats.CountOn(ctx.Journal.Items(), now)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"date":            output.FormatDate(now),
			"journal_entries": journalToday,
			"spent":           spentToday,
			"calories":        caloriesToday,
		})
	}

	cli := ctx.CLIFormatter()
	greeting := "Today"
	if ctx.Settings.Nickname != "" {
		greeting = "Today, " + ctx.Settings.Nickname
	}
	cli.Title(greeting + " · " + output.FormatDate(now))
	cli.Printf("  Journal entries: %d\n", journalToday)
	cli.Printf("  Spent:           %s\n", cli.Amount(spentToday))
	cli.Printf("  Calories:        %s\n", output.FormatCalories(caloriesToday))
	if journalToday == 0 && spentToday == 0 && caloriesToday == 0 {
		cli.Muted("  Nothing logged yet. Try 'daybook journal add'.")
	}
	return nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("daybook %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits. Used for failures that must reach the
// user even in JSON mode, like recognition errors.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		_ = ctx.Formatter.JSON(output.ErrorOutput{
			Error:      "error",
			Message:    err.Error(),
			Suggestion: runtime.GetSuggestion(err),
		})
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	os.Exit(1)
}

// listLimit clamps a --limit flag value against a list length.
func listLimit(limit, length int) int {
	if limit <= 0 || limit > length {
		return length
	}
	return limit
}

// entryTime parses the --when flag shared by the add commands.
func entryTime(when string) (time.Time, error) {
	return parser.ParseWhen(when)
}
