package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/daybook-cli/daybook/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open a full-screen dashboard with journal, money, and food panes
and trailing-week charts. Keys: tab or 1-3 to switch panes, r to
refresh, q to quit.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	model := tui.NewDashboardModel(tui.DashboardConfig{
		Journal:  ctx.Journal,
		Money:    ctx.Money,
		Food:     ctx.Food,
		Settings: ctx.Settings,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
