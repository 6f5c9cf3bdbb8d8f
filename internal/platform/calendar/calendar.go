// Package calendar holds the date-grid and date-string helpers shared by the
// insights module and the user interfaces. Dates are plain YYYY-MM-DD strings
// and day arithmetic is done in UTC so daylight-saving shifts never skip or
// repeat a day.
package calendar

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// MonthDays lays out a month for a Monday-first grid. month0 is zero-based
// (0 = January) and overflows the same way time.Date does. Leading cells
// before the 1st are 0; no trailing padding is added.
func MonthDays(year, month0 int) []int {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
	leading := (int(first.Weekday()) + 6) % 7

	days := make([]int, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		days = append(days, 0)
	}
	for d := 1; d <= daysInMonth; d++ {
		days = append(days, d)
	}
	return days
}

// FormatDateString renders a zero-padded date. month0 is zero-based.
func FormatDateString(year, month0, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month0+1, day)
}

// FormatMonthYear returns e.g. "February 2024". month0 is zero-based.
func FormatMonthYear(year, month0 int) string {
	return time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// FormatDayHeader returns e.g. "Thursday, Feb 1", or the input unchanged when
// it is not a valid date.
func FormatDayHeader(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, Jan 2")
}

// FormatTimeRange returns e.g. "9:05 AM - 10:30 AM" in the zone of each time.
func FormatTimeRange(start, end time.Time) string {
	return start.Format("3:04 PM") + " - " + end.Format("3:04 PM")
}

// DateOf is the calendar date of t in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return t, nil
}

func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// DaysBetween counts whole days from a to b; negative when b precedes a.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}
