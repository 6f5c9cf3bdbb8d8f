package service

import (
	"context"
	"fmt"

	"offlinewins/internal/modules/insights/domain"
	insightsout "offlinewins/internal/modules/insights/port/out"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/clock"
	apperrors "offlinewins/internal/platform/errors"
)

// Snapshot is everything the aggregations read, loaded in one go.
type Snapshot struct {
	Index     domain.Index
	Goal      domain.Goal
	Overrides map[string]int
	Today     string
}

type InsightsService struct {
	clock     clock.Clock
	sessions  insightsout.SessionSource
	goals     insightsout.GoalSource
	overrides insightsout.OverrideSource
}

func NewInsightsService(clock clock.Clock, sessions insightsout.SessionSource, goals insightsout.GoalSource, overrides insightsout.OverrideSource) *InsightsService {
	return &InsightsService{clock: clock, sessions: sessions, goals: goals, overrides: overrides}
}

func (s *InsightsService) Snapshot(ctx context.Context) (Snapshot, error) {
	entries, err := s.sessions.Entries(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load sessions: %w", err)
	}
	goal, err := s.goals.Goal(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load goal: %w", err)
	}
	overrides, err := s.overrides.Overrides(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load overrides: %w", err)
	}
	return Snapshot{
		Index:     domain.NewIndex(entries),
		Goal:      goal,
		Overrides: overrides,
		Today:     calendar.DateOf(s.clock.Now()),
	}, nil
}

func (s Snapshot) DayMood(date string) int {
	return s.Index.DayMood(date, s.Overrides[date])
}

func (s Snapshot) Cell(day int, date string) Cell {
	total := s.Index.DayTotal(date)
	return Cell{
		Day:       day,
		Date:      date,
		Total:     total,
		GoalMet:   domain.IsGoalMet(total, s.Goal.Minutes),
		Mood:      s.DayMood(date),
		Intensity: domain.Intensity(total, s.Goal.Minutes),
		IsToday:   date == s.Today,
	}
}

type Cell struct {
	Day       int
	Date      string
	Total     int
	GoalMet   bool
	Mood      int
	Intensity int
	IsToday   bool
}

// Month lays out month0 of year Monday-first; blank cells have Day 0.
func (s Snapshot) Month(year, month0 int) ([]Cell, error) {
	if month0 < 0 || month0 > 11 {
		return nil, fmt.Errorf("%w: month must be 0..11", apperrors.ErrInvalidInput)
	}
	days := calendar.MonthDays(year, month0)
	cells := make([]Cell, 0, len(days))
	for _, day := range days {
		if day == 0 {
			cells = append(cells, Cell{})
			continue
		}
		cells = append(cells, s.Cell(day, calendar.FormatDateString(year, month0, day)))
	}
	return cells, nil
}

func (s Snapshot) Heatmap(days int) ([]Cell, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", apperrors.ErrInvalidInput)
	}
	cells := make([]Cell, 0, days)
	for i := days - 1; i >= 0; i-- {
		date, err := calendar.AddDays(s.Today, -i)
		if err != nil {
			return nil, err
		}
		t, _ := calendar.ParseDate(date)
		cells = append(cells, s.Cell(t.Day(), date))
	}
	return cells, nil
}
