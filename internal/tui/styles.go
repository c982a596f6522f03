// Package tui provides the terminal dashboard for Daybook.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the dashboard.
var (
	ColorPrimary = lipgloss.Color("#0EA5E9") // Sky blue
	ColorAccent  = lipgloss.Color("#F97316") // Orange
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the dashboard.
var (
	// StyleTitle is used for the dashboard header.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleTab is used for inactive tab labels.
	StyleTab = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleTabActive is used for the active tab label.
	StyleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// StyleEntry is used for entry lines.
	StyleEntry = lipgloss.NewStyle()

	// StyleEntryMeta is used for timestamps and ids.
	StyleEntryMeta = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleTotal is used for summed values.
	StyleTotal = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for the key help line at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleSectionBox frames each dashboard section.
	StyleSectionBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)
)

// ChartBar renders a proportional bar for the daily chart.
func ChartBar(value, max float64, width int) string {
	if max <= 0 || value < 0 {
		return StyleEntryMeta.Render(strings.Repeat("░", width))
	}
	filled := int(float64(width) * value / max)
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Foreground(ColorSuccess).Render(strings.Repeat("█", filled)) +
		StyleEntryMeta.Render(strings.Repeat("░", width-filled))
}
