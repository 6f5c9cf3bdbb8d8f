package dto

import "time"

type MoodOutput struct {
	Rating int
	Emoji  string
	Label  string
	Color  string
	Bg     string
}

type LifetimeOutput struct {
	TotalHours    float64
	TotalSessions int
	LongestStreak int
	CurrentStreak int
	MemberSince   time.Time
	GoalMinutes   int
	TodayMinutes  int
	TodayProgress float64
	TodayGoalMet  bool
}

type DaySummaryOutput struct {
	Date         string
	TotalMinutes int
	GoalMinutes  int
	GoalMet      bool
	SessionCount int
	// Mood is nil when neither an override nor a tagged session exists.
	Mood *MoodOutput
}

type DayCell struct {
	// Day is 0 for the blank cells before the first of the month.
	Day          int
	Date         string
	TotalMinutes int
	GoalMet      bool
	Mood         int
	Intensity    int
	IsToday      bool
}

type MonthOutput struct {
	Year        int
	Month       int
	Title       string
	GoalMinutes int
	Cells       []DayCell
}
