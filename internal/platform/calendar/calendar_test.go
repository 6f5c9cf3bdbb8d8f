package calendar_test

import (
	"reflect"
	"testing"
	"time"

	"offlinewins/internal/platform/calendar"
)

func TestMonthDaysLeapFebruaryStartsOnThursday(t *testing.T) {
	t.Parallel()
	days := calendar.MonthDays(2024, 1)
	if len(days) != 3+29 {
		t.Fatalf("expected 32 cells, got %d", len(days))
	}
	if !reflect.DeepEqual(days[:4], []int{0, 0, 0, 1}) {
		t.Fatalf("expected three leading blanks then day 1, got %v", days[:4])
	}
	if days[len(days)-1] != 29 {
		t.Fatalf("expected last cell 29, got %d", days[len(days)-1])
	}
}

func TestMonthDaysLeadingBlanks(t *testing.T) {
	t.Parallel()
	cases := []struct {
		year, month0 int
		leading      int
		days         int
	}{
		{2024, 0, 0, 31},  // Jan 1 2024 is a Monday
		{2023, 9, 6, 31},  // Oct 1 2023 is a Sunday
		{2023, 1, 2, 28},  // Feb 1 2023 is a Wednesday
		{2024, 11, 6, 31}, // Dec 1 2024 is a Sunday
		{2023, 12, 0, 31}, // month overflow rolls into Jan 2024
	}
	for _, tc := range cases {
		got := calendar.MonthDays(tc.year, tc.month0)
		blanks := 0
		for _, d := range got {
			if d == 0 {
				blanks++
			}
		}
		if blanks != tc.leading || len(got)-blanks != tc.days {
			t.Fatalf("%d/%d: expected %d blanks and %d days, got %d and %d", tc.year, tc.month0, tc.leading, tc.days, blanks, len(got)-blanks)
		}
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()
	if got := calendar.FormatDateString(2024, 0, 5); got != "2024-01-05" {
		t.Fatalf("format date string: %s", got)
	}
	if got := calendar.FormatDateString(2024, 11, 31); got != "2024-12-31" {
		t.Fatalf("format date string: %s", got)
	}
	if got := calendar.FormatMonthYear(2024, 1); got != "February 2024" {
		t.Fatalf("format month year: %s", got)
	}
	if got := calendar.FormatDayHeader("2024-02-01"); got != "Thursday, Feb 1" {
		t.Fatalf("format day header: %s", got)
	}
	if got := calendar.FormatDayHeader("nope"); got != "nope" {
		t.Fatalf("invalid header must pass through, got %s", got)
	}
	start := time.Date(2024, 2, 1, 9, 5, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 13, 30, 0, 0, time.UTC)
	if got := calendar.FormatTimeRange(start, end); got != "9:05 AM - 1:30 PM" {
		t.Fatalf("format time range: %s", got)
	}
}

func TestDateArithmetic(t *testing.T) {
	t.Parallel()
	next, err := calendar.AddDays("2024-02-28", 1)
	if err != nil || next != "2024-02-29" {
		t.Fatalf("add days across leap day: %s %v", next, err)
	}
	prev, err := calendar.AddDays("2024-01-01", -1)
	if err != nil || prev != "2023-12-31" {
		t.Fatalf("add days across year: %s %v", prev, err)
	}
	n, err := calendar.DaysBetween("2024-03-30", "2024-04-02")
	if err != nil || n != 3 {
		t.Fatalf("days between: %d %v", n, err)
	}
	if _, err := calendar.AddDays("2024/01/01", 1); err == nil {
		t.Fatalf("malformed date must fail")
	}
}

func TestDurationFormatting(t *testing.T) {
	t.Parallel()
	minutes := map[int]string{0: "< 1m", 45: "45m", 60: "1h", 65: "1h 5m", 180: "3h"}
	for in, want := range minutes {
		if got := calendar.FormatDuration(in); got != want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
	elapsed := map[time.Duration]string{
		12 * time.Second:              "12s",
		3*time.Minute + 7*time.Second: "3m 07s",
		time.Hour + 5*time.Minute:     "1h 05m",
		-time.Second:                  "0s",
	}
	for in, want := range elapsed {
		if got := calendar.FormatElapsed(in); got != want {
			t.Fatalf("FormatElapsed(%s) = %q, want %q", in, got, want)
		}
	}
}
