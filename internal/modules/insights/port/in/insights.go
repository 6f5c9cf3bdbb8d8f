package in

import (
	"context"

	"offlinewins/internal/modules/insights/dto"
)

type Usecase interface {
	DayTotal(ctx context.Context, date string) (int, error)
	IsGoalMet(ctx context.Context, date string) (bool, error)
	CurrentStreak(ctx context.Context) (int, error)
	LongestStreak(ctx context.Context) (int, error)
	LifetimeStats(ctx context.Context) (dto.LifetimeOutput, error)
	DayMood(ctx context.Context, date string) (int, error)
	MoodDisplay(rating int) dto.MoodOutput
	DaySummary(ctx context.Context, date string) (dto.DaySummaryOutput, error)
	// MonthView takes a 0-based month.
	MonthView(ctx context.Context, year, month int) (dto.MonthOutput, error)
	// Heatmap returns the last days days, oldest first, ending today.
	Heatmap(ctx context.Context, days int) ([]dto.DayCell, error)
}
