package budget

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

const (
	monthKeyLayout = "2006-01"
	dayLabelLayout = "Jan 2"
	csvDateLayout  = "1/2/2006"

	forecastMonths = 6
)

// MonthKey returns the "YYYY-MM" bucket for t.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// DayLabel returns the short day label ("Jan 5") for t. Labels do not carry
// the year, so the same day in different years shares a label.
func DayLabel(t time.Time) string {
	return t.Format(dayLabelLayout)
}

// DaysInMonth returns the number of days in ref's month.
func DaysInMonth(ref time.Time) int {
	return now.With(ref).EndOfMonth().Day()
}

// Window is an inclusive time range.
type Window struct {
	Start time.Time
	End   time.Time // zero means open-ended
}

// StartMs and EndMs return the bounds in unix milliseconds; an open end is 0.
func (w Window) StartMs() int64 { return w.Start.UnixMilli() }

func (w Window) EndMs() int64 {
	if w.End.IsZero() {
		return 0
	}
	return w.End.UnixMilli()
}

// CurrentMonthWindow covers the first instant of ref's month onwards.
func CurrentMonthWindow(ref time.Time) Window {
	return Window{Start: now.With(ref).BeginningOfMonth()}
}

// ForecastWindow covers the first day of the month six months before ref's
// month onwards, which includes the current month itself.
func ForecastWindow(ref time.Time) Window {
	return Window{Start: now.With(ref).BeginningOfMonth().AddDate(0, -forecastMonths, 0)}
}

// ParseMonth parses a "YYYY-MM" key in loc and returns the whole month.
func ParseMonth(month string, loc *time.Location) (Window, error) {
	t, err := time.ParseInLocation(monthKeyLayout, month, loc)
	if err != nil {
		return Window{}, fmt.Errorf("month %q must be formatted YYYY-MM", month)
	}
	n := now.With(t)
	return Window{Start: n.BeginningOfMonth(), End: n.EndOfMonth()}, nil
}
