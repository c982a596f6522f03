package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/output"
	"github.com/daybook-cli/daybook/internal/parser"
	"github.com/daybook-cli/daybook/internal/runtime"
	"github.com/daybook-cli/daybook/internal/validate"
)

// Money command flags.
var (
	moneyAddFlagMethod string
	moneyAddFlagNote   string
	moneyAddFlagWhen   string
	moneyListFlagN     int
)

// moneyCmd represents the money command.
var moneyCmd = &cobra.Command{
	Use:     "money [command]",
	Aliases: []string{"m", "spend"},
	Short:   "Track spending",
	Long: `Track spending. Amounts are fractional currency units; the payment
method is free text, with cash/card/transfer/other as the usual labels.

Examples:
  daybook money add 12.50 --method card --note "lunch"
  daybook money add 3,20 --note "coffee" --when "2 hours ago"
  daybook money list -n 10
  daybook money remove 0198c2a1`,
	RunE: runMoneyList,
}

// moneyAddCmd adds a spending entry.
var moneyAddCmd = &cobra.Command{
	Use:     "add AMOUNT",
	Aliases: []string{"a", "new"},
	Short:   "Add a spending entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runMoneyAdd,
}

// moneyListCmd lists spending entries.
var moneyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List spending entries, newest first",
	RunE:    runMoneyList,
}

// moneyRemoveCmd removes a spending entry by id.
var moneyRemoveCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a spending entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runMoneyRemove,
}

func init() {
	moneyAddCmd.Flags().StringVarP(&moneyAddFlagMethod, "method", "m", "cash",
		"Payment method (cash, card, transfer, other, or free text)")
	moneyAddCmd.Flags().StringVarP(&moneyAddFlagNote, "note", "N", "",
		"Free-text note")
	moneyAddCmd.Flags().StringVar(&moneyAddFlagWhen, "when", "",
		"Entry time, natural language (default: now)")
	moneyListCmd.Flags().IntVarP(&moneyListFlagN, "limit", "n", 0,
		"Show at most N entries (0 = all)")

	moneyAddCmd.RegisterFlagCompletionFunc("method",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var out []string
			for _, m := range model.PaymentMethods() {
				if strings.HasPrefix(m, toComplete) {
					out = append(out, m)
				}
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		})

	moneyCmd.AddCommand(moneyAddCmd)
	moneyCmd.AddCommand(moneyListCmd)
	moneyCmd.AddCommand(moneyRemoveCmd)

	rootCmd.AddCommand(moneyCmd)
}

func runMoneyAdd(cmd *cobra.Command, args []string) error {
	amount, err := parser.ParseAmount(args[0])
	if err != nil {
		return err
	}

	at, err := entryTime(moneyAddFlagWhen)
	if err != nil {
		return err
	}

	entry := model.NewMoneyEntry(amount,
		validate.SanitizeName(moneyAddFlagMethod),
		validate.SanitizeText(moneyAddFlagNote),
		at)
	ctx.Money.Add(entry)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewMoneyOutput(entry))
	}

	cli := ctx.CLIFormatter()
	cli.Success("Logged " + cli.Amount(entry.Amount) + " (" + entry.Method + ")")
	if entry.Note != "" {
		cli.Printf("  Note: %s\n", cli.Note(entry.Note))
	}
	return nil
}

func runMoneyList(cmd *cobra.Command, args []string) error {
	entries := ctx.Money.Items()

	if ctx.IsJSON() {
		out := make([]output.MoneyOutput, len(entries))
		for i, e := range entries {
			out[i] = output.NewMoneyOutput(e)
		}
		return ctx.Formatter.JSON(out)
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("No spending logged yet.")
		return nil
	}

	cli.Title("Spending")
	for _, e := range entries[:listLimit(moneyListFlagN, len(entries))] {
		cli.PrintMoneyEntry(e)
	}
	return nil
}

func runMoneyRemove(cmd *cobra.Command, args []string) error {
	entry, err := runtime.ResolveID(ctx.Money, args[0])
	if err != nil {
		return err
	}
	ctx.Money.Remove(entry.ID)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": entry.ID})
	}
	ctx.CLIFormatter().Success("Removed spending entry " + model.ShortID(entry.ID))
	return nil
}
