package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/dishes"
	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/output"
	"github.com/daybook-cli/daybook/internal/runtime"
	"github.com/daybook-cli/daybook/internal/validate"
)

// Food command flags.
var (
	foodLogFlagCalories int
	foodLogFlagDish     string
	foodLogFlagWhen     string
	foodListFlagN       int
)

// foodCmd represents the food command.
var foodCmd = &cobra.Command{
	Use:     "food [command]",
	Aliases: []string{"f", "eat"},
	Short:   "Track food intake",
	Long: `Track food intake: log meals manually, pick them from the bundled
dish table, or recognize them from a photo via the recognition service.

Examples:
  daybook food log Ramen --calories 450
  daybook food log --dish "margherita pizza"
  daybook food recognize dinner.jpg
  daybook food dishes pizza
  daybook food list -n 10`,
	RunE: runFoodList,
}

// foodLogCmd logs a meal manually.
var foodLogCmd = &cobra.Command{
	Use:     "log [NAME...]",
	Aliases: []string{"add", "a"},
	Short:   "Log a meal manually",
	RunE:    runFoodLog,
}

// foodRecognizeCmd recognizes a meal from a photo.
var foodRecognizeCmd = &cobra.Command{
	Use:     "recognize PHOTO",
	Aliases: []string{"rec", "photo"},
	Short:   "Recognize a meal from a photo and log it",
	Long: `Upload a meal photo to the recognition service and log the best
candidate with its calorie estimate. The photo is downscaled and
re-encoded before upload; nothing is sent if it cannot be brought under
1 MiB. Requires api_token and user_key (see 'daybook config').`,
	Args: cobra.ExactArgs(1),
	RunE: runFoodRecognize,
}

// foodListCmd lists food entries.
var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List food entries, newest first",
	RunE:    runFoodList,
}

// foodRemoveCmd removes a food entry by id.
var foodRemoveCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a food entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runFoodRemove,
}

// foodDishesCmd browses the bundled dish table.
var foodDishesCmd = &cobra.Command{
	Use:   "dishes [QUERY]",
	Short: "Browse the bundled dish/calorie table",
	RunE:  runFoodDishes,
}

func init() {
	foodLogCmd.Flags().IntVarP(&foodLogFlagCalories, "calories", "c", -1,
		"Calorie count (default: dish table value or 0)")
	foodLogCmd.Flags().StringVarP(&foodLogFlagDish, "dish", "d", "",
		"Pick name and calories from the bundled dish table")
	foodLogCmd.Flags().StringVar(&foodLogFlagWhen, "when", "",
		"Entry time, natural language (default: now)")
	foodListCmd.Flags().IntVarP(&foodListFlagN, "limit", "n", 0,
		"Show at most N entries (0 = all)")

	foodLogCmd.RegisterFlagCompletionFunc("dish",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var out []string
			for _, d := range dishes.Search(toComplete) {
				out = append(out, d.Name)
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		})

	foodCmd.AddCommand(foodLogCmd)
	foodCmd.AddCommand(foodRecognizeCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodRemoveCmd)
	foodCmd.AddCommand(foodDishesCmd)

	rootCmd.AddCommand(foodCmd)
}

func runFoodLog(cmd *cobra.Command, args []string) error {
	name := validate.SanitizeName(strings.Join(args, " "))
	calories := foodLogFlagCalories

	if foodLogFlagDish != "" {
		dish, ok := dishes.Lookup(foodLogFlagDish)
		if !ok {
			return fmt.Errorf("%w: %q", runtime.ErrUnknownDish, foodLogFlagDish)
		}
		if name == "" {
			name = dish.Name
		}
		if calories < 0 {
			calories = dish.Calories
		}
	}

	if name == "" {
		return fmt.Errorf("meal name is required (or use --dish)")
	}
	if calories < 0 {
		calories = 0
	}

	at, err := entryTime(foodLogFlagWhen)
	if err != nil {
		return err
	}

	entry := model.NewFoodEntry(name, calories, at)
	ctx.Food.Add(entry)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewFoodOutput(entry))
	}

	cli := ctx.CLIFormatter()
	cli.Success("Logged " + cli.Food(entry.Food) + " (" + output.FormatCalories(entry.Calories) + ")")
	return nil
}

func runFoodRecognize(cmd *cobra.Command, args []string) error {
	if !ctx.Recognizer.Configured() {
		return runtime.ErrNotConfigured
	}

	photo, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	if !ctx.IsJSON() {
		cli.Muted("Recognizing " + args[0] + "…")
	}

	// Failures here must reach the user; they are never retried.
	entry, err := ctx.Recognizer.Recognize(cmd.Context(), photo)
	if err != nil {
		Die(err)
	}
	ctx.Food.Add(entry)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewFoodOutput(entry))
	}

	cli.Success("Recognized " + cli.Food(entry.Food) + " (" + output.FormatCalories(entry.Calories) + ")")
	if entry.Calories == 0 {
		cli.Muted("  No calorie estimate was available; stored 0.")
	}
	return nil
}

func runFoodList(cmd *cobra.Command, args []string) error {
	entries := ctx.Food.Items()

	if ctx.IsJSON() {
		out := make([]output.FoodOutput, len(entries))
		for i, e := range entries {
			out[i] = output.NewFoodOutput(e)
		}
		return ctx.Formatter.JSON(out)
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("No meals logged yet.")
		return nil
	}

	cli.Title("Food")
	for _, e := range entries[:listLimit(foodListFlagN, len(entries))] {
		cli.PrintFoodEntry(e)
	}
	return nil
}

func runFoodRemove(cmd *cobra.Command, args []string) error {
	entry, err := runtime.ResolveID(ctx.Food, args[0])
	if err != nil {
		return err
	}
	ctx.Food.Remove(entry.ID)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": entry.ID})
	}
	ctx.CLIFormatter().Success("Removed food entry " + model.ShortID(entry.ID))
	return nil
}

func runFoodDishes(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	table := dishes.Search(query)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(table)
	}

	cli := ctx.CLIFormatter()
	if len(table) == 0 {
		cli.Muted("No dishes match " + fmt.Sprintf("%q", query) + ".")
		return nil
	}

	cli.Title("Dishes")
	for _, d := range table {
		cli.Printf("  %-28s %s\n", d.Name, output.FormatCalories(d.Calories))
	}
	return nil
}
