package dto

import "github.com/GregMSThompson/budget-backend/internal/models"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SetBudgetRequest struct {
	Budget *float64 `json:"budget"`
}

// UserContext is what a client needs after sign-in: the profile as stored after
// any month rollover, and whether to prompt for this month's budget.
type UserContext struct {
	Profile          models.Profile `json:"profile"`
	Created          bool           `json:"created"`
	RolledOver       bool           `json:"rolledOver"`
	NeedsBudgetInput bool           `json:"needsBudgetInput"`
}
