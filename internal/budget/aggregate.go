package budget

import (
	"time"

	"github.com/GregMSThompson/budget-backend/internal/models"
)

// Summary is the fold of an expense set over one window.
type Summary struct {
	Total      float64                     `json:"total"`
	Count      int                         `json:"count"`
	ByCategory map[models.Category]float64 `json:"byCategory"`
	ByDay      map[string]float64          `json:"byDay"`
	ByMonth    map[string]float64          `json:"byMonth"`
}

// NewSummary returns an empty summary with every fixed category present and
// ref's month seeded at zero.
func NewSummary(ref time.Time) Summary {
	byCategory := make(map[models.Category]float64, len(models.Categories))
	for _, c := range models.Categories {
		byCategory[c] = 0
	}
	return Summary{
		ByCategory: byCategory,
		ByDay:      map[string]float64{},
		ByMonth:    map[string]float64{MonthKey(ref): 0},
	}
}

// Aggregate folds records, already filtered to the caller's window, into totals.
// Day and month keys are computed in ref's location. Malformed records are
// skipped; records with an unknown category are still summed under that key so
// every included amount shows up in each breakdown.
func Aggregate(records []models.Expense, ref time.Time) Summary {
	s := NewSummary(ref)
	loc := ref.Location()

	for _, r := range records {
		if !r.WellFormed() {
			continue
		}
		t := r.Time(loc)
		s.Total += r.Amount
		s.Count++
		s.ByCategory[r.Category] += r.Amount
		s.ByDay[DayLabel(t)] += r.Amount
		s.ByMonth[MonthKey(t)] += r.Amount
	}
	return s
}

// CategoryTotals sums well-formed records per category. The fixed categories are
// always present.
func CategoryTotals(records []models.Expense) map[models.Category]float64 {
	out := make(map[models.Category]float64, len(models.Categories))
	for _, c := range models.Categories {
		out[c] = 0
	}
	for _, r := range records {
		if r.WellFormed() {
			out[r.Category] += r.Amount
		}
	}
	return out
}
