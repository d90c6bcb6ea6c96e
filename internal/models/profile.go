package models

// Profile is the users/{uid} document holding budget state.
//
// LastBudgetMonth is the calendar month 1-12. Documents written by the legacy
// web client hold 0-11, which reads as the previous month and so triggers one
// extra rollover on first load. The ranges overlap, so it cannot be corrected
// on read.
type Profile struct {
	Username        string  `firestore:"username" json:"username"`
	Email           string  `firestore:"email" json:"email"`
	Budget          float64 `firestore:"budget" json:"budget"`
	LastBudgetMonth *int    `firestore:"lastBudgetMonth" json:"lastBudgetMonth"` // 1-12, nil until first confirmed
	PreviousBudget  float64 `firestore:"previousBudget" json:"previousBudget"`
}

// Profile document field names, used for partial (merge) writes.
const (
	ProfileFieldUsername        = "username"
	ProfileFieldEmail           = "email"
	ProfileFieldBudget          = "budget"
	ProfileFieldLastBudgetMonth = "lastBudgetMonth"
	ProfileFieldPreviousBudget  = "previousBudget"
)
