package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/output"
	"github.com/daybook-cli/daybook/internal/runtime"
	"github.com/daybook-cli/daybook/internal/stats"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats [money|food]",
	Aliases: []string{"st", "week"},
	Short:   "Show trailing 7-day totals",
	Long: `Show per-day totals for the trailing week: today plus the six days
before it. Days with no entries are omitted.

Examples:
  daybook stats money
  daybook stats food
  daybook stats food --format json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"money", "food"},
	RunE:      runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	kind := "money"
	if len(args) > 0 {
		kind = args[0]
	}

	now := time.Now()
	var totals []stats.DailyTotal
	var title string
	var format func(float64) string

	switch kind {
	case "money", "spending":
		kind = "money"
		title = "Spending, last 7 days"
		format = output.FormatAmount
		totals = stats.DailyTotals(ctx.Money.Items(), now, func(e model.MoneyEntry) float64 {
			return e.Amount
		})
	case "food", "calories":
		kind = "food"
		title = "Calories, last 7 days"
		format = func(v float64) string { return output.FormatCalories(int(v)) }
		totals = stats.DailyTotals(ctx.Food.Items(), now, func(e model.FoodEntry) float64 {
			return float64(e.Calories)
		})
	default:
		return fmt.Errorf("%w: %q", runtime.ErrUnknownStatsKind, kind)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewStatsResponse(kind, totals))
	}

	cli := ctx.CLIFormatter()
	cli.Title(title)
	cli.PrintDailyTotals(totals, format)
	return nil
}
