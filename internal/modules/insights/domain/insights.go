package domain

import (
	"math"
	"sort"
	"time"

	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/mood"
)

// Entry is the part of a session the aggregations look at.
type Entry struct {
	Date            string
	DurationMinutes int
	MoodRating      int
}

type Goal struct {
	Minutes     int
	MemberSince time.Time
}

type Lifetime struct {
	TotalHours    float64
	TotalSessions int
	LongestStreak int
}

// Index groups entries by date once so per-day questions are map lookups.
type Index struct {
	totals       map[string]int
	moods        map[string][]int
	counts       map[string]int
	earliest     string
	latest       string
	totalMinutes int
	sessions     int
}

func NewIndex(entries []Entry) Index {
	ix := Index{
		totals: make(map[string]int),
		moods:  make(map[string][]int),
		counts: make(map[string]int),
	}
	for _, e := range entries {
		ix.totals[e.Date] += e.DurationMinutes
		ix.counts[e.Date]++
		ix.moods[e.Date] = append(ix.moods[e.Date], e.MoodRating)
		ix.totalMinutes += e.DurationMinutes
		ix.sessions++
		if ix.earliest == "" || e.Date < ix.earliest {
			ix.earliest = e.Date
		}
		if e.Date > ix.latest {
			ix.latest = e.Date
		}
	}
	return ix
}

func (ix Index) DayTotal(date string) int {
	return ix.totals[date]
}

func (ix Index) SessionCount(date string) int {
	return ix.counts[date]
}

// Dates returns every date with at least one session, oldest first.
func (ix Index) Dates() []string {
	dates := make([]string, 0, len(ix.totals))
	for date := range ix.totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// IsGoalMet counts reaching the goal exactly as met.
func IsGoalMet(total, goal int) bool {
	return total >= goal
}

func (ix Index) IsGoalMet(date string, goal int) bool {
	return IsGoalMet(ix.DayTotal(date), goal)
}

// CurrentStreak counts consecutive met days ending today, or ending
// yesterday when today is not met yet.
func (ix Index) CurrentStreak(today string, goal int) int {
	if ix.sessions == 0 {
		return 0
	}
	streak := 0
	date := today
	if ix.IsGoalMet(date, goal) {
		streak = 1
	}
	date = mustAddDays(date, -1)
	for date != "" && date >= ix.earliest && ix.IsGoalMet(date, goal) {
		streak++
		date = mustAddDays(date, -1)
	}
	return streak
}

// LongestStreak scans every day between the first and last session,
// including days without sessions.
func (ix Index) LongestStreak(goal int) int {
	if ix.sessions == 0 {
		return 0
	}
	longest, current := 0, 0
	for date := ix.earliest; date != "" && date <= ix.latest; date = mustAddDays(date, 1) {
		if ix.IsGoalMet(date, goal) {
			current++
			if current > longest {
				longest = current
			}
			continue
		}
		current = 0
	}
	return longest
}

func (ix Index) Lifetime(goal int) Lifetime {
	return Lifetime{
		TotalHours:    math.Round(float64(ix.totalMinutes)/60*10) / 10,
		TotalSessions: ix.sessions,
		LongestStreak: ix.LongestStreak(goal),
	}
}

// DayMood resolves the mood of date, 0 when there is none.
func (ix Index) DayMood(date string, override int) int {
	return mood.Resolve(override, ix.moods[date])
}

// Intensity buckets a day's total against the goal: 0 nothing, 1 under
// half, 2 under the goal, 3 met, 4 doubled.
func Intensity(total, goal int) int {
	switch {
	case total <= 0:
		return 0
	case goal <= 0:
		return 3
	case total*2 < goal:
		return 1
	case total < goal:
		return 2
	case total < goal*2:
		return 3
	default:
		return 4
	}
}

// Progress is the share of the goal reached, capped at 1.
func Progress(total, goal int) float64 {
	if goal <= 0 {
		return 1
	}
	p := float64(total) / float64(goal)
	if p > 1 {
		return 1
	}
	return p
}

func mustAddDays(date string, n int) string {
	next, err := calendar.AddDays(date, n)
	if err != nil {
		return ""
	}
	return next
}
