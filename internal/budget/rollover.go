package budget

import (
	"time"

	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/helpers"
)

// RolloverResult is the outcome of checking a profile against the calendar.
type RolloverResult struct {
	Profile          models.Profile
	Created          bool // no profile existed; Profile is a fresh document
	RolledOver       bool // the budget month changed; previousBudget was archived
	NeedsBudgetInput bool
}

// Rollover applies the month boundary to p. A nil profile is created with a zero
// budget stamped with the current month. When the stored month differs from
// now's month the current budget is archived into PreviousBudget and the month
// is advanced. Within the same month it is a no-op, so repeated calls are safe.
func Rollover(p *models.Profile, now time.Time) RolloverResult {
	month := int(now.Month())

	if p == nil {
		return RolloverResult{
			Profile: models.Profile{
				Budget:          0,
				LastBudgetMonth: helpers.Ptr(month),
			},
			Created:          true,
			NeedsBudgetInput: true,
		}
	}

	out := *p
	if p.LastBudgetMonth != nil && *p.LastBudgetMonth == month {
		return RolloverResult{Profile: out}
	}

	out.PreviousBudget = p.Budget
	out.LastBudgetMonth = helpers.Ptr(month)
	return RolloverResult{
		Profile:          out,
		RolledOver:       true,
		NeedsBudgetInput: true,
	}
}
