package services

import (
	"regexp"
	"time"
)

// Offline wording returned when the record store cannot be reached.
const (
	OfflineLoad          = "You are offline. Some features may be unavailable."
	OfflineBudget        = "You are offline. Budget will be saved when you reconnect."
	OfflineAddExpense    = "You are offline. Expenses cannot be added."
	OfflineExpenses      = "You are offline. Expense data may not be available."
	OfflineForecast      = "You are offline. Predictions may not be available."
	OfflinePreviousMonth = "You are offline. Previous month data may not be available."
	OfflineEmail         = "You are offline. Email reports cannot be sent."
	OfflineCSV           = "You are offline. CSV download unavailable."
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,20}$`)
)

func clockIn(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}
