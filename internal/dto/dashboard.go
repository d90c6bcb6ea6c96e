package dto

import (
	"github.com/GregMSThompson/budget-backend/internal/budget"
	"github.com/GregMSThompson/budget-backend/internal/models"
)

// DashboardResponse is the current-month view.
type DashboardResponse struct {
	Month       string                           `json:"month"`
	Budget      float64                          `json:"budget"`
	Summary     budget.Summary                   `json:"summary"`
	Suggestion  string                           `json:"suggestion"`
	Alerts      map[models.Category]budget.Alert `json:"alerts"`
	Pace        budget.Pace                      `json:"pace"`
	DailyAdvice string                           `json:"dailyAdvice"`
	Forecast    budget.ForecastResult            `json:"forecast"`
}

// MonthResponse is a closed month judged against the archived budget.
type MonthResponse struct {
	Month          string         `json:"month"`
	Summary        budget.Summary `json:"summary"`
	PreviousBudget float64        `json:"previousBudget"`
	Message        string         `json:"message"`
}
