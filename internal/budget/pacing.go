package budget

import (
	"fmt"
	"math"
	"time"
)

const DailySetBudget = "Set a budget to receive daily spending advice."

// Pace status values.
const (
	PaceStatusUnset     = "unset"
	PaceStatusOverspent = "overspent"
	PaceStatusBehind    = "behind"
	PaceStatusOnTrack   = "on_track"
)

// behindRatio is the fraction of the even daily budget below which the
// remaining allowance counts as falling behind.
const behindRatio = 0.5

// Pace is the arithmetic behind the daily advice.
type Pace struct {
	Status         string  `json:"status"`
	DaysInMonth    int     `json:"daysInMonth"`
	DaysLeft       int     `json:"daysLeft"`
	Remaining      float64 `json:"remaining"`
	DailyAllowance float64 `json:"dailyAllowance"`
	Advice         string  `json:"advice"`
}

// ComputePace works out how much can still be spent per day for the rest of
// ref's month. Today counts as a remaining day.
func ComputePace(budget, total float64, ref time.Time) Pace {
	daysInMonth := DaysInMonth(ref)
	p := Pace{
		DaysInMonth: daysInMonth,
		DaysLeft:    daysInMonth - ref.Day() + 1,
	}
	if !BudgetSet(budget) {
		p.Status = PaceStatusUnset
		p.Advice = DailySetBudget
		return p
	}

	p.Remaining = budget - total
	p.DailyAllowance = p.Remaining / float64(p.DaysLeft)

	switch {
	case p.DailyAllowance < 0:
		p.Status = PaceStatusOverspent
		p.Advice = fmt.Sprintf("You're %s above pace. Spend no more than %s0/day to recover.",
			FormatMoney(math.Abs(p.Remaining)), CurrencySymbol)
	case p.DailyAllowance < budget/float64(daysInMonth)*behindRatio:
		p.Status = PaceStatusBehind
		p.Advice = fmt.Sprintf("You're spending faster than planned. Keep daily spending under %s to stay on track.",
			FormatMoney(p.DailyAllowance))
	default:
		p.Status = PaceStatusOnTrack
		p.Advice = fmt.Sprintf("You're on track! Keep spending under %s/day.", FormatMoney(p.DailyAllowance))
	}
	return p
}

// DailyAdvice returns only the message from ComputePace.
func DailyAdvice(budget, total float64, ref time.Time) string {
	return ComputePace(budget, total, ref).Advice
}
