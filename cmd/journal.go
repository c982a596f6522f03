package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/output"
	"github.com/daybook-cli/daybook/internal/runtime"
	"github.com/daybook-cli/daybook/internal/validate"
)

// Journal command flags.
var (
	journalAddFlagAudio string
	journalAddFlagWhen  string
	journalListFlagN    int
)

// journalCmd represents the journal command.
var journalCmd = &cobra.Command{
	Use:     "journal [command]",
	Aliases: []string{"j", "jr"},
	Short:   "Write and browse journal entries",
	Long: `Write and browse journal entries. An entry is free text, or a
reference to an audio recording made elsewhere.

Examples:
  daybook journal add "slept well, long walk before work"
  daybook journal add --audio morning-note.m4a
  daybook journal add "rough day" --when yesterday
  daybook journal list
  daybook journal remove 0198c2a1`,
	RunE: runJournalList,
}

// journalAddCmd adds a journal entry.
var journalAddCmd = &cobra.Command{
	Use:     "add [TEXT...]",
	Aliases: []string{"a", "new"},
	Short:   "Add a journal entry",
	RunE:    runJournalAdd,
}

// journalListCmd lists journal entries.
var journalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List journal entries, newest first",
	RunE:    runJournalList,
}

// journalRemoveCmd removes a journal entry by id.
var journalRemoveCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a journal entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runJournalRemove,
}

func init() {
	journalAddCmd.Flags().StringVar(&journalAddFlagAudio, "audio", "",
		"Audio file name to reference instead of text")
	journalAddCmd.Flags().StringVar(&journalAddFlagWhen, "when", "",
		"Entry time, natural language (default: now)")
	journalListCmd.Flags().IntVarP(&journalListFlagN, "limit", "n", 0,
		"Show at most N entries (0 = all)")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalRemoveCmd)

	rootCmd.AddCommand(journalCmd)
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	text := validate.SanitizeText(strings.Join(args, " "))
	audio := strings.TrimSpace(journalAddFlagAudio)

	// Exactly one of text or audio, enforced here, not by the model.
	if text == "" && audio == "" {
		return runtime.ErrNothingToSay
	}
	if text != "" && audio != "" {
		return runtime.ErrTextAndAudio
	}

	at, err := entryTime(journalAddFlagWhen)
	if err != nil {
		return err
	}

	var entry model.JournalEntry
	if audio != "" {
		entry = model.NewAudioJournalEntry(audio, at)
	} else {
		entry = model.NewJournalEntry(text, at)
	}
	ctx.Journal.Add(entry)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewJournalOutput(entry))
	}

	cli := ctx.CLIFormatter()
	if entry.HasAudio() {
		cli.Success("Journal entry saved (audio: " + entry.Audio + ")")
	} else {
		cli.Success("Journal entry saved")
	}
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	entries := ctx.Journal.Items()

	if ctx.IsJSON() {
		out := make([]output.JournalOutput, len(entries))
		for i, e := range entries {
			out[i] = output.NewJournalOutput(e)
		}
		return ctx.Formatter.JSON(out)
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("No journal entries yet.")
		return nil
	}

	cli.Title("Journal")
	for _, e := range entries[:listLimit(journalListFlagN, len(entries))] {
		cli.PrintJournalEntry(e)
	}
	return nil
}

func runJournalRemove(cmd *cobra.Command, args []string) error {
	entry, err := runtime.ResolveID(ctx.Journal, args[0])
	if err != nil {
		return err
	}
	ctx.Journal.Remove(entry.ID)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": entry.ID})
	}
	ctx.CLIFormatter().Success("Removed journal entry " + model.ShortID(entry.ID))
	return nil
}
