package budget

import (
	"fmt"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/models"
)

// targetRatio is the share of the historical average suggested as next month's
// target for a category.
const targetRatio = 0.9

// ForecastEntry compares one category's historical average to this month.
type ForecastEntry struct {
	Predicted  float64 `json:"predicted"`
	Actual     float64 `json:"actual"`
	Target     float64 `json:"target"`
	Suggestion string  `json:"suggestion"`
}

// ForecastResult is the next-month projection per fixed category.
type ForecastResult struct {
	Categories     map[models.Category]ForecastEntry `json:"categories"`
	ProjectedTotal float64                           `json:"projectedTotal"`
	Summary        string                            `json:"summary"`
}

// Forecast predicts next month's spend per category as the historical monthly
// average, and compares it with the month-to-date actuals in current. Month keys
// are computed in ref's location.
func Forecast(historical, current []models.Expense, ref time.Time) ForecastResult {
	loc := ref.Location()
	categorySums := map[models.Category]float64{}
	monthlyCounts := map[string]int{}

	for _, r := range historical {
		if !r.WellFormed() {
			continue
		}
		categorySums[r.Category] += r.Amount
		monthlyCounts[MonthKey(r.Time(loc))]++
	}

	divisor := forecastDivisor(monthlyCounts)
	actuals := CategoryTotals(current)

	out := ForecastResult{Categories: make(map[models.Category]ForecastEntry, len(models.Categories))}
	for _, c := range models.Categories {
		var avg float64
		if divisor > 0 {
			avg = categorySums[c] / float64(divisor)
		}

		entry := ForecastEntry{Predicted: avg, Actual: actuals[c]}
		if avg > 0 {
			entry.Target = avg * targetRatio
			entry.Suggestion = fmt.Sprintf("You normally spend %s on %s. Consider adjusting to %s.",
				FormatMoney(avg), c, FormatMoney(entry.Target))
		} else {
			entry.Suggestion = fmt.Sprintf("No %s spending recorded recently.", c)
		}
		out.Categories[c] = entry
		out.ProjectedTotal += avg
	}

	out.Summary = fmt.Sprintf("Projected total spending for next month: %s. Review category suggestions to optimize your budget.",
		FormatMoney(out.ProjectedTotal))
	return out
}

// forecastDivisor is the number of distinct months that had any spending in the
// window, shared by every category: a category that only appears in one of three
// active months is still averaged over three.
func forecastDivisor(monthlyCounts map[string]int) int {
	return len(monthlyCounts)
}
