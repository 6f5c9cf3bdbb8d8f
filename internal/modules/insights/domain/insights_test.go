package domain_test

import (
	"testing"

	"offlinewins/internal/modules/insights/domain"
)

func TestDayTotalSumsSameDate(t *testing.T) {
	t.Parallel()
	ix := domain.NewIndex([]domain.Entry{
		{Date: "2024-02-01", DurationMinutes: 20},
		{Date: "2024-02-01", DurationMinutes: 25},
		{Date: "2024-02-02", DurationMinutes: 90},
	})
	if got := ix.DayTotal("2024-02-01"); got != 45 {
		t.Fatalf("expected 45, got %d", got)
	}
	if got := ix.DayTotal("2024-02-03"); got != 0 {
		t.Fatalf("expected 0 for empty day, got %d", got)
	}
}

func TestIsGoalMetBoundary(t *testing.T) {
	t.Parallel()
	ix := domain.NewIndex([]domain.Entry{{Date: "2024-02-01", DurationMinutes: 60}})
	if !ix.IsGoalMet("2024-02-01", 60) {
		t.Fatalf("exactly reaching the goal counts as met")
	}
	if ix.IsGoalMet("2024-02-01", 61) {
		t.Fatalf("one minute short is not met")
	}
}

func TestCurrentStreak(t *testing.T) {
	t.Parallel()
	met := func(dates ...string) domain.Index {
		entries := make([]domain.Entry, 0, len(dates))
		for _, d := range dates {
			entries = append(entries, domain.Entry{Date: d, DurationMinutes: 60})
		}
		entries = append(entries, domain.Entry{Date: "2024-01-27", DurationMinutes: 10})
		return domain.NewIndex(entries)
	}

	cases := []struct {
		name string
		ix   domain.Index
		want int
	}{
		{"today and two before", met("2024-02-01", "2024-01-31", "2024-01-30"), 3},
		{"today unmet counts from yesterday", met("2024-01-31", "2024-01-30"), 2},
		{"gap yesterday breaks streak", met("2024-02-01", "2024-01-30"), 1},
		{"across month boundary", met("2024-02-01", "2024-01-31", "2024-01-30", "2024-01-29", "2024-01-28"), 5},
		{"nothing met", met(), 0},
		{"empty history", domain.NewIndex(nil), 0},
	}
	for _, tc := range cases {
		if got := tc.ix.CurrentStreak("2024-02-01", 60); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestLongestStreakWithGap(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Date: "2024-03-01", DurationMinutes: 60},
		{Date: "2024-03-02", DurationMinutes: 30},
		{Date: "2024-03-02", DurationMinutes: 30},
		{Date: "2024-03-03", DurationMinutes: 75},
		{Date: "2024-03-04", DurationMinutes: 10},
		{Date: "2024-03-05", DurationMinutes: 60},
		{Date: "2024-03-06", DurationMinutes: 60},
	}
	ix := domain.NewIndex(entries)
	if got := ix.LongestStreak(60); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	sparse := domain.NewIndex([]domain.Entry{
		{Date: "2024-03-01", DurationMinutes: 60},
		{Date: "2024-03-10", DurationMinutes: 60},
	})
	if got := sparse.LongestStreak(60); got != 1 {
		t.Fatalf("days without sessions break the streak, got %d", got)
	}
	if got := domain.NewIndex(nil).LongestStreak(60); got != 0 {
		t.Fatalf("expected 0 for no sessions, got %d", got)
	}
}

func TestLifetimeRoundsHoursToOneDecimal(t *testing.T) {
	t.Parallel()
	ix := domain.NewIndex([]domain.Entry{
		{Date: "2024-02-01", DurationMinutes: 50},
		{Date: "2024-02-02", DurationMinutes: 47},
	})
	got := ix.Lifetime(60)
	if got.TotalHours != 1.6 || got.TotalSessions != 2 || got.LongestStreak != 0 {
		t.Fatalf("unexpected lifetime %+v", got)
	}
}

func TestDayMoodResolution(t *testing.T) {
	t.Parallel()
	ix := domain.NewIndex([]domain.Entry{
		{Date: "2024-02-01", DurationMinutes: 10, MoodRating: 2},
		{Date: "2024-02-01", DurationMinutes: 10, MoodRating: 5},
		{Date: "2024-02-02", DurationMinutes: 10, MoodRating: 3},
		{Date: "2024-02-03", DurationMinutes: 10},
	})
	if got := ix.DayMood("2024-02-01", 1); got != 1 {
		t.Fatalf("override must win, got %d", got)
	}
	if got := ix.DayMood("2024-02-01", 0); got != 5 {
		t.Fatalf("expected best mood 5, got %d", got)
	}
	if got := ix.DayMood("2024-02-02", 0); got != 3 {
		t.Fatalf("expected single mood 3, got %d", got)
	}
	if got := ix.DayMood("2024-02-03", 0); got != 0 {
		t.Fatalf("expected no mood, got %d", got)
	}
	if got := ix.DayMood("2024-02-09", 4); got != 4 {
		t.Fatalf("override applies without sessions, got %d", got)
	}
}

func TestIntensity(t *testing.T) {
	t.Parallel()
	cases := []struct{ total, want int }{
		{0, 0}, {10, 1}, {30, 2}, {59, 2}, {60, 3}, {119, 3}, {120, 4},
	}
	for _, tc := range cases {
		if got := domain.Intensity(tc.total, 60); got != tc.want {
			t.Fatalf("Intensity(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}
