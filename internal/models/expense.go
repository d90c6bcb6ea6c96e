package models

import (
	"math"
	"time"
)

// Expense is a single logged purchase. Documents live under users/{uid}/expenses
// and are never updated once written.
type Expense struct {
	ID        string   `firestore:"-" json:"id"` // document ID assigned by the store
	Name      string   `firestore:"name" json:"name"`
	Amount    float64  `firestore:"amount" json:"amount"`
	Category  Category `firestore:"category" json:"category"`
	Timestamp int64    `firestore:"timestamp" json:"timestamp"` // unix milliseconds
}

// WellFormed reports whether the record carries an amount, a timestamp and a
// category. Anything else is skipped by aggregation and export.
func (e Expense) WellFormed() bool {
	if e.Amount == 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return false
	}
	return e.Timestamp != 0 && e.Category != ""
}

// Time returns the record's instant in loc.
func (e Expense) Time(loc *time.Location) time.Time {
	return time.UnixMilli(e.Timestamp).In(loc)
}
