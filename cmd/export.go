package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/output"
)

// Export command flags.
var (
	exportFlagKind   string
	exportFlagFormat string
	exportFlagBackup bool
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex", "dump"},
	Short:   "Export logged data",
	Long: `Export one log in JSON or CSV, or create a full backup of all
three logs plus settings.

Examples:
  daybook export --kind money --format csv -o spending.csv
  daybook export --kind journal
  daybook export --backup -o backup.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagKind, "kind", "k", "journal",
		"What to export: journal, money, food")
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "json",
		"Export format: json, csv")
	exportCmd.Flags().BoolVarP(&exportFlagBackup, "backup", "b", false,
		"Full backup of all logs and settings")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "",
		"Output file (stdout if omitted)")

	exportCmd.RegisterFlagCompletionFunc("kind",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"journal", "money", "food"}, cobra.ShellCompDirectiveNoFileComp
		})

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	writer, closeFn, err := exportWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	if exportFlagBackup {
		return runBackup(writer)
	}

	switch exportFlagFormat {
	case "csv":
		return exportCSV(writer)
	case "json":
		return exportJSON(writer)
	default:
		return fmt.Errorf("unknown export format %q (use json or csv)", exportFlagFormat)
	}
}

func exportWriter() (*os.File, func(), error) {
	if exportFlagOutput == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(exportFlagOutput)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func exportJSON(w *os.File) error {
	payload := struct {
		Version    string      `json:"version"`
		ExportedAt string      `json:"exported_at"`
		Kind       string      `json:"kind"`
		Entries    interface{} `json:"entries"`
		Count      int         `json:"count"`
	}{
		Version:    "1",
		ExportedAt: time.Now().Format(time.RFC3339),
		Kind:       exportFlagKind,
	}

	switch exportFlagKind {
	case "journal":
		entries := ctx.Journal.Items()
		out := make([]output.JournalOutput, len(entries))
		for i, e := range entries {
			out[i] = output.NewJournalOutput(e)
		}
		payload.Entries, payload.Count = out, len(out)
	case "money":
		entries := ctx.Money.Items()
		out := make([]output.MoneyOutput, len(entries))
		for i, e := range entries {
			out[i] = output.NewMoneyOutput(e)
		}
		payload.Entries, payload.Count = out, len(out)
	case "food":
		entries := ctx.Food.Items()
		out := make([]output.FoodOutput, len(entries))
		for i, e := range entries {
			out[i] = output.NewFoodOutput(e)
		}
		payload.Entries, payload.Count = out, len(out)
	default:
		return fmt.Errorf("unknown export kind %q (use journal, money, or food)", exportFlagKind)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func exportCSV(w *os.File) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	switch exportFlagKind {
	case "journal":
		if err := writer.Write([]string{"id", "created_at", "text", "audio"}); err != nil {
			return err
		}
		for _, e := range ctx.Journal.Items() {
			if err := writer.Write([]string{
				e.ID, e.CreatedAt.Format(time.RFC3339), e.Text, e.Audio,
			}); err != nil {
				return err
			}
		}
	case "money":
		if err := writer.Write([]string{"id", "created_at", "amount", "method", "note"}); err != nil {
			return err
		}
		for _, e := range ctx.Money.Items() {
			if err := writer.Write([]string{
				e.ID, e.CreatedAt.Format(time.RFC3339),
				strconv.FormatFloat(e.Amount, 'f', 2, 64), e.Method, e.Note,
			}); err != nil {
				return err
			}
		}
	case "food":
		if err := writer.Write([]string{"id", "created_at", "food", "calories"}); err != nil {
			return err
		}
		for _, e := range ctx.Food.Items() {
			if err := writer.Write([]string{
				e.ID, e.CreatedAt.Format(time.RFC3339), e.Food, strconv.Itoa(e.Calories),
			}); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown export kind %q (use journal, money, or food)", exportFlagKind)
	}

	return nil
}

func runBackup(w *os.File) error {
	journal := ctx.Journal.Items()
	money := ctx.Money.Items()
	food := ctx.Food.Items()

	backup := struct {
		Version    string      `json:"version"`
		ExportedAt string      `json:"exported_at"`
		Settings   interface{} `json:"settings"`
		Journal    interface{} `json:"journal"`
		Money      interface{} `json:"money"`
		Food       interface{} `json:"food"`
	}{
		Version:    "1",
		ExportedAt: time.Now().Format(time.RFC3339),
		Settings:   ctx.Settings,
		Journal:    journal,
		Money:      money,
		Food:       food,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return err
	}

	if exportFlagOutput != "" && !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Success("Backup created: " + exportFlagOutput)
		cli.Printf("  Journal entries: %d\n", len(journal))
		cli.Printf("  Spending entries: %d\n", len(money))
		cli.Printf("  Food entries: %d\n", len(food))
	}
	return nil
}
