package budget

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/models"
)

// Report holds the pieces of the monthly email body.
type Report struct {
	Month       string
	Total       float64
	ByCategory  map[models.Category]float64
	Suggestion  string
	DailyAdvice string
}

// FormatReport renders the plain-text monthly report. The five fixed categories
// are always listed; unknown categories follow in name order.
func FormatReport(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your Spending Report for %s:\n", r.Month)
	fmt.Fprintf(&b, "Total Spent: %s\n", FormatMoney(r.Total))
	b.WriteString("Category Breakdown:\n")
	for _, c := range reportCategories(r.ByCategory) {
		fmt.Fprintf(&b, "%s: %s\n", c, FormatMoney(r.ByCategory[c]))
	}
	fmt.Fprintf(&b, "\nSuggestion: %s\n", r.Suggestion)
	fmt.Fprintf(&b, "Daily Advice: %s", r.DailyAdvice)
	return b.String()
}

// FormatPreviousMonthReport renders the shorter body sent for a closed month.
func FormatPreviousMonthReport(month string, total float64, summary string) string {
	return fmt.Sprintf("Your Spending Report for %s:\nTotal Spent: %s\nSummary: %s", month, FormatMoney(total), summary)
}

func reportCategories(byCategory map[models.Category]float64) []models.Category {
	out := append([]models.Category{}, models.Categories...)
	var extra []models.Category
	for c := range byCategory {
		if !c.Valid() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// CSVHeader is the first row of every export.
var CSVHeader = []string{"Name", "Amount", "Category", "Date"}

// WriteCSV writes the header and one row per well-formed record, dating each
// row in loc. It returns the number of data rows written.
func WriteCSV(w io.Writer, records []models.Expense, loc *time.Location) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return 0, err
	}

	rows := 0
	for _, r := range records {
		if !r.WellFormed() {
			continue
		}
		row := []string{
			r.Name,
			FormatAmount(r.Amount),
			string(r.Category),
			r.Time(loc).Format(csvDateLayout),
		}
		if err := cw.Write(row); err != nil {
			return rows, err
		}
		rows++
	}

	cw.Flush()
	return rows, cw.Error()
}

// CSVFilename names an export: expenses.csv for everything, or
// expenses_<YYYY-MM>.csv for a single month.
func CSVFilename(month string) string {
	if month == "" {
		return "expenses.csv"
	}
	return "expenses_" + month + ".csv"
}
