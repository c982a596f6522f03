// Package stats derives chart data from store snapshots.
package stats

import (
	"sort"
	"time"

	"github.com/daybook-cli/daybook/internal/model"
)

// WindowDays is the trailing window used for charts: today plus six prior
// calendar days.
const WindowDays = 7

// DailyTotal is one chart point: a local calendar day and the summed value
// of the entries created on it.
type DailyTotal struct {
	Day   time.Time
	Total float64
}

// DailyTotals buckets the entries of the trailing seven calendar days by
// local start-of-day and sums value(item) per bucket, ascending by day.
// Days without entries are omitted, matching the charts: only days with
// data appear.
func DailyTotals[T model.Entity](items []T, now time.Time, value func(T) float64) []DailyTotal {
	today := StartOfDay(now)
	windowStart := today.AddDate(0, 0, -(WindowDays - 1))
	windowEnd := today.AddDate(0, 0, 1)

	totals := make(map[time.Time]float64)
	for _, item := range items {
		t := item.EntityTime()
		if t.Before(windowStart) || !t.Before(windowEnd) {
			continue
		}
		totals[StartOfDay(t)] += value(item)
	}

	result := make([]DailyTotal, 0, len(totals))
	for day, total := range totals {
		result = append(result, DailyTotal{Day: day, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.Before(result[j].Day)
	})
	return result
}

// Sum adds up value(item) over all entries regardless of window.
func Sum[T model.Entity](items []T, value func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += value(item)
	}
	return total
}

// CountOn returns how many entries fall on the local calendar day of t.
func CountOn[T model.Entity](items []T, t time.Time) int {
	day := StartOfDay(t)
	count := 0
	for _, item := range items {
		if StartOfDay(item.EntityTime()).Equal(day) {
			count++
		}
	}
	return count
}

// StartOfDay truncates t to the start of its local calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
