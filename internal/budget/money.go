// Package budget turns a raw expense log into the derived views the dashboard,
// CSV export and email report consume: aggregates, pacing advice, category
// alerts and a naive next-month forecast. Everything here is synchronous and
// free of I/O; callers fetch the records.
package budget

import (
	"math"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every monetary figure the package renders.
const CurrencySymbol = "₦"

// FormatAmount renders v with exactly two decimal places.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatMoney renders v as a currency figure, e.g. "₦90.91".
func FormatMoney(v float64) string {
	return CurrencySymbol + FormatAmount(v)
}

// BudgetSet reports whether b is usable as a budget. Zero, negative and
// non-finite values all count as unset.
func BudgetSet(b float64) bool {
	return b > 0 && !math.IsInf(b, 0) && !math.IsNaN(b)
}
