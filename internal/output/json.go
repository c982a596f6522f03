package output

import (
	"time"

	"github.com/daybook-cli/daybook/internal/model"
	"github.com/daybook-cli/daybook/internal/stats"
)

// JournalOutput is the JSON shape of a journal entry.
type JournalOutput struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Text      string `json:"text,omitempty"`
	Audio     string `json:"audio,omitempty"`
}

// NewJournalOutput converts a journal entry for JSON output.
func NewJournalOutput(e model.JournalEntry) JournalOutput {
	return JournalOutput{
		ID:        e.ID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		Text:      e.Text,
		Audio:     e.Audio,
	}
}

// MoneyOutput is the JSON shape of a spending entry.
type MoneyOutput struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"created_at"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Note      string  `json:"note,omitempty"`
}

// NewMoneyOutput converts a spending entry for JSON output.
func NewMoneyOutput(e model.MoneyEntry) MoneyOutput {
	return MoneyOutput{
		ID:        e.ID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		Amount:    e.Amount,
		Method:    e.Method,
		Note:      e.Note,
	}
}

// FoodOutput is the JSON shape of a food entry.
type FoodOutput struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Food      string `json:"food"`
	Calories  int    `json:"calories"`
}

// NewFoodOutput converts a food entry for JSON output.
func NewFoodOutput(e model.FoodEntry) FoodOutput {
	return FoodOutput{
		ID:        e.ID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		Food:      e.Food,
		Calories:  e.Calories,
	}
}

// DayTotalOutput is one chart point in JSON output.
type DayTotalOutput struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

// StatsResponse is the JSON shape of the stats command.
type StatsResponse struct {
	Kind       string           `json:"kind"`
	WindowDays int              `json:"window_days"`
	Days       []DayTotalOutput `json:"days"`
}

// NewStatsResponse converts daily totals for JSON output.
func NewStatsResponse(kind string, totals []stats.DailyTotal) StatsResponse {
	resp := StatsResponse{
		Kind:       kind,
		WindowDays: stats.WindowDays,
		Days:       make([]DayTotalOutput, len(totals)),
	}
	for i, dt := range totals {
		resp.Days[i] = DayTotalOutput{
			Day:   dt.Day.Format("2006-01-02"),
			Total: dt.Total,
		}
	}
	return resp
}

// ErrorOutput is the JSON shape of a fatal error.
type ErrorOutput struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}
