package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/output"
	"github.com/daybook-cli/daybook/internal/stats"
	"github.com/daybook-cli/daybook/internal/store"
)

// Tab identifies one dashboard pane.
type Tab int

const (
	TabJournal Tab = iota
	TabMoney
	TabFood
)

func (t Tab) String() string {
	switch t {
	case TabMoney:
		return "Money"
	case TabFood:
		return "Food"
	default:
		return "Journal"
	}
}

// tickMsg is sent when the refresh timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be reloaded from the stores.
type refreshMsg struct{}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Journal  *store.Store[model.JournalEntry]
	Money    *store.Store[model.MoneyEntry]
	Food     *store.Store[model.FoodEntry]
	Settings model.Settings

	RefreshInterval time.Duration
	MaxRecent       int
}

// DashboardModel is the bubbletea model for the dashboard. All store
// access happens inside Update and View, on the program's message loop,
// which keeps the single-goroutine store contract.
type DashboardModel struct {
	journal  *store.Store[model.JournalEntry]
	money    *store.Store[model.MoneyEntry]
	food     *store.Store[model.FoodEntry]
	settings model.Settings

	journalEntries []model.JournalEntry
	moneyEntries   []model.MoneyEntry
	foodEntries    []model.FoodEntry
	spendingWeek   []stats.DailyTotal
	caloriesWeek   []stats.DailyTotal

	tab    Tab
	width  int
	height int

	refreshInterval time.Duration
	maxRecent       int
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = 30 * time.Second
	}
	if config.MaxRecent == 0 {
		config.MaxRecent = 5
	}

	return &DashboardModel{
		journal:         config.Journal,
		money:           config.Money,
		food:            config.Food,
		settings:        config.Settings,
		refreshInterval: config.RefreshInterval,
		maxRecent:       config.MaxRecent,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		func() tea.Msg { return refreshMsg{} },
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.loadData()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil
	}

	return m, nil
}

func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % 3
	case "shift+tab", "left", "h":
		m.tab = (m.tab + 2) % 3
	case "1":
		m.tab = TabJournal
	case "2":
		m.tab = TabMoney
	case "3":
		m.tab = TabFood
	case "r":
		m.loadData()
	}
	return m, nil
}

func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *DashboardModel) loadData() {
	now := time.Now()
	m.journalEntries = m.journal.Items()
	m.moneyEntries = m.money.Items()
	m.foodEntries = m.food.Items()
	m.spendingWeek = stats.DailyTotals(m.moneyEntries, now, func(e model.MoneyEntry) float64 {
		return e.Amount
	})
	m.caloriesWeek = stats.DailyTotals(m.foodEntries, now, func(e model.FoodEntry) float64 {
		return float64(e.Calories)
	})
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.tab {
	case TabMoney:
		b.WriteString(m.renderMoney())
	case TabFood:
		b.WriteString(m.renderFood())
	default:
		b.WriteString(m.renderJournal())
	}

	b.WriteString(StyleHelp.Render("tab/1-3 switch · r refresh · q quit"))
	return b.String()
}

func (m *DashboardModel) renderHeader() string {
	greeting := "Daybook"
	if m.settings.Nickname != "" {
		greeting = fmt.Sprintf("Daybook · %s", m.settings.Nickname)
	}

	tabs := make([]string, 0, 3)
	for _, tab := range []Tab{TabJournal, TabMoney, TabFood} {
		label := fmt.Sprintf(" %d %s ", int(tab)+1, tab)
		if tab == m.tab {
			tabs = append(tabs, StyleTabActive.Render(label))
		} else {
			tabs = append(tabs, StyleTab.Render(label))
		}
	}

	return StyleTitle.Render(greeting) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m *DashboardModel) renderJournal() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Recent entries"))
	b.WriteString("\n")

	if len(m.journalEntries) == 0 {
		b.WriteString(StyleEntryMeta.Render("Nothing written yet. Try 'daybook journal add'."))
		b.WriteString("\n")
		return StyleSectionBox.Render(b.String()) + "\n"
	}

	for i, e := range m.journalEntries {
		if i == m.maxRecent {
			break
		}
		meta := StyleEntryMeta.Render(output.FormatTime(e.CreatedAt))
		if e.HasAudio() {
			b.WriteString(fmt.Sprintf("%s  🎙 %s\n", meta, e.Audio))
		} else {
			b.WriteString(fmt.Sprintf("%s  %s\n", meta, e.Preview(48)))
		}
	}
	return StyleSectionBox.Render(b.String()) + "\n"
}

func (m *DashboardModel) renderMoney() string {
	var recent strings.Builder
	recent.WriteString(StyleTitle.Render("Recent spending"))
	recent.WriteString("\n")
	for i, e := range m.moneyEntries {
		if i == m.maxRecent {
			break
		}
		recent.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleEntryMeta.Render(output.FormatTime(e.CreatedAt)),
			StyleTotal.Render(output.FormatAmount(e.Amount)),
			e.Method))
	}
	if len(m.moneyEntries) == 0 {
		recent.WriteString(StyleEntryMeta.Render("No spending logged."))
		recent.WriteString("\n")
	}

	return StyleSectionBox.Render(recent.String()) + "\n" +
		m.renderChart("Last 7 days", m.spendingWeek, output.FormatAmount)
}

func (m *DashboardModel) renderFood() string {
	var recent strings.Builder
	recent.WriteString(StyleTitle.Render("Recent meals"))
	recent.WriteString("\n")
	for i, e := range m.foodEntries {
		if i == m.maxRecent {
			break
		}
		recent.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleEntryMeta.Render(output.FormatTime(e.CreatedAt)),
			e.Food,
			StyleTotal.Render(output.FormatCalories(e.Calories))))
	}
	if len(m.foodEntries) == 0 {
		recent.WriteString(StyleEntryMeta.Render("No meals logged."))
		recent.WriteString("\n")
	}

	return StyleSectionBox.Render(recent.String()) + "\n" +
		m.renderChart("Calories, last 7 days", m.caloriesWeek, func(v float64) string {
			return output.FormatCalories(int(v))
		})
}

func (m *DashboardModel) renderChart(title string, totals []stats.DailyTotal, format func(float64) string) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")

	if len(totals) == 0 {
		b.WriteString(StyleEntryMeta.Render("No data in the window."))
		b.WriteString("\n")
		return StyleSectionBox.Render(b.String()) + "\n"
	}

	max := totals[0].Total
	for _, dt := range totals {
		if dt.Total > max {
			max = dt.Total
		}
	}
	for _, dt := range totals {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleEntryMeta.Render(output.FormatDay(dt.Day)),
			ChartBar(dt.Total, max, 20),
			StyleTotal.Render(format(dt.Total))))
	}
	return StyleSectionBox.Render(b.String()) + "\n"
}
