package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/stats"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#0EA5E9") // Sky blue
	colorAccent  = lipgloss.Color("#F97316") // Orange
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleAmount = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleFood = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Amount formats a money amount.
func (c *CLIFormatter) Amount(amount float64) string {
	return c.render(styleAmount, FormatAmount(amount))
}

// Food formats a food name.
func (c *CLIFormatter) Food(name string) string {
	return c.render(styleFood, name)
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	return c.render(styleNote, text)
}

// PrintJournalEntry prints one journal entry line.
func (c *CLIFormatter) PrintJournalEntry(e model.JournalEntry) {
	id := c.render(styleMuted, model.ShortID(e.ID))
	when := c.render(styleMuted, FormatTime(e.CreatedAt))
	if e.HasAudio() {
		c.Printf("  %s  %s  🎙 %s\n", id, when, e.Audio)
		return
	}
	c.Printf("  %s  %s  %s\n", id, when, e.Preview(60))
}

// PrintMoneyEntry prints one spending entry line.
func (c *CLIFormatter) PrintMoneyEntry(e model.MoneyEntry) {
	id := c.render(styleMuted, model.ShortID(e.ID))
	when := c.render(styleMuted, FormatTime(e.CreatedAt))
	line := "  " + id + "  " + when + "  " + c.Amount(e.Amount) + "  " + e.Method
	if e.Note != "" {
		line += "  " + c.Note(e.Note)
	}
	c.Println(line)
}

// PrintFoodEntry prints one food entry line.
func (c *CLIFormatter) PrintFoodEntry(e model.FoodEntry) {
	id := c.render(styleMuted, model.ShortID(e.ID))
	when := c.render(styleMuted, FormatTime(e.CreatedAt))
	c.Printf("  %s  %s  %s  %s\n", id, when, c.Food(e.Food), FormatCalories(e.Calories))
}

// PrintDailyTotals renders a day/total table with proportional bars.
func (c *CLIFormatter) PrintDailyTotals(totals []stats.DailyTotal, format func(float64) string) {
	if len(totals) == 0 {
		c.Muted("  No entries in the last 7 days.")
		return
	}

	max := totals[0].Total
	valueWidth := 0
	for _, dt := range totals {
		if dt.Total > max {
			max = dt.Total
		}
		if w := len(format(dt.Total)); w > valueWidth {
			valueWidth = w
		}
	}

	for _, dt := range totals {
		bar := Bar(dt.Total, max, 20)
		c.Printf("  %s  %*s  %s\n", FormatDay(dt.Day), valueWidth, format(dt.Total), bar)
	}
}

// Bar renders a proportional horizontal bar of the given width.
func Bar(value, max float64, width int) string {
	if max <= 0 || value < 0 {
		return strings.Repeat("░", width)
	}
	filled := int(float64(width) * value / max)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
