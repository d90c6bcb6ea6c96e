package budget

import (
	"fmt"
	"math"

	"github.com/GregMSThompson/budget-backend/internal/models"
)

const (
	PaceSetBudget = "Set a budget to get spending insights."
	PaceOverspent = "You’ve overspent. Consider reducing non-essential expenses."
	PaceNearLimit = "You're close to your limit. Consider saving more."
	PaceWellBelow = "Great job! You are well below budget."
	PaceModerate  = "You are spending moderately. Keep it up."
)

// Alert severities.
const (
	SeverityOverspent = "red"
	SeverityWarning   = "yellow"
)

const (
	nearLimitRatio    = 0.9
	wellBelowRatio    = 0.5
	alertOverspentPct = 100
	alertWarningPct   = 80
)

// Alert flags a category that has used most or all of its share of the budget.
type Alert struct {
	Severity   string  `json:"severity"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}

// SuggestPace classifies month-to-date spend against the budget. The first
// matching tier wins.
func SuggestPace(budget, total float64) string {
	if !BudgetSet(budget) {
		return PaceSetBudget
	}
	switch {
	case total > budget:
		return PaceOverspent
	case total > budget*nearLimitRatio:
		return PaceNearLimit
	case total < budget*wellBelowRatio:
		return PaceWellBelow
	default:
		return PaceModerate
	}
}

// CategoryAlerts splits the budget evenly across the fixed categories and
// reports each one at or above 80% of its share. Categories outside the fixed
// set never alert.
func CategoryAlerts(byCategory map[models.Category]float64, budget float64) map[models.Category]Alert {
	alerts := map[models.Category]Alert{}
	if !BudgetSet(budget) {
		return alerts
	}

	share := budget / float64(len(models.Categories))
	for _, c := range models.Categories {
		pct := byCategory[c] / share * 100
		switch {
		case pct >= alertOverspentPct:
			alerts[c] = Alert{
				Severity:   SeverityOverspent,
				Percentage: pct,
				Message:    fmt.Sprintf("You’ve overspent on %s", c),
			}
		case pct >= alertWarningPct:
			alerts[c] = Alert{
				Severity:   SeverityWarning,
				Percentage: pct,
				Message:    fmt.Sprintf("You’ve spent %d%% of your %s budget", int(math.Round(pct)), c),
			}
		}
	}
	return alerts
}

// PreviousMonthSummary describes a closed month's spend against the budget that
// was archived when the month rolled over.
func PreviousMonthSummary(total, previousBudget float64) string {
	if !BudgetSet(previousBudget) {
		return "No budget set for the previous month."
	}
	b := previousBudget
	switch {
	case total > b:
		return fmt.Sprintf("You overspent by %s last month. Consider cutting back on non-essentials.", FormatMoney(total-b))
	case total > b*nearLimitRatio:
		return fmt.Sprintf("You were within 10%% of your %s budget last month. Try to save more.", FormatMoney(b))
	case total < b*wellBelowRatio:
		return fmt.Sprintf("Excellent! You spent only %s of your %s budget last month.", FormatMoney(total), FormatMoney(b))
	default:
		return fmt.Sprintf("You spent %s of your %s budget last month. Good job staying on track.", FormatMoney(total), FormatMoney(b))
	}
}
