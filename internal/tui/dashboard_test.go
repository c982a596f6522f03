package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/store"
)

func testModel(t *testing.T) *DashboardModel {
	t.Helper()
	dir := t.TempDir()
	return NewDashboardModel(DashboardConfig{
		Journal:  store.Open[model.JournalEntry](filepath.Join(dir, "journals.json")),
		Money:    store.Open[model.MoneyEntry](filepath.Join(dir, "money.json")),
		Food:     store.Open[model.FoodEntry](filepath.Join(dir, "food.json")),
		Settings: model.DefaultSettings(),
	})
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	return tea.KeyMsg{Type: tea.KeyTab}
}

func TestDashboardModel_TabSwitching(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, TabJournal, m.tab)

	m.Update(keyMsg("tab"))
	assert.Equal(t, TabMoney, m.tab)
	m.Update(keyMsg("tab"))
	assert.Equal(t, TabFood, m.tab)
	m.Update(keyMsg("tab"))
	assert.Equal(t, TabJournal, m.tab, "wraps around")

	m.Update(keyMsg("3"))
	assert.Equal(t, TabFood, m.tab)
	m.Update(keyMsg("1"))
	assert.Equal(t, TabJournal, m.tab)
}

func TestDashboardModel_Quit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDashboardModel_Refresh(t *testing.T) {
	m := testModel(t)
	m.Update(refreshMsg{})
	assert.Empty(t, m.foodEntries)

	m.food.Add(model.NewFoodEntry("Ramen", 450, time.Now()))
	m.Update(keyMsg("r"))
	require.Len(t, m.foodEntries, 1)
	require.Len(t, m.caloriesWeek, 1)
	assert.Equal(t, 450.0, m.caloriesWeek[0].Total)
}

func TestDashboardModel_View(t *testing.T) {
	m := testModel(t)
	m.journal.Add(model.NewJournalEntry("slept well", time.Now()))
	m.money.Add(model.NewMoneyEntry(12.5, "card", "", time.Now()))
	m.Update(refreshMsg{})

	view := m.View()
	assert.Contains(t, view, "Journal")
	assert.Contains(t, view, "slept well")

	m.Update(keyMsg("2"))
	view = m.View()
	assert.Contains(t, view, "12.50")
}
