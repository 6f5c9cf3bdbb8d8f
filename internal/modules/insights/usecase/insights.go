package usecase

import (
	"context"

	"offlinewins/internal/modules/insights/domain"
	insightsdto "offlinewins/internal/modules/insights/dto"
	insightsin "offlinewins/internal/modules/insights/port/in"
	"offlinewins/internal/modules/insights/service"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/mood"
)

type Interactor struct {
	svc *service.InsightsService
}

func NewInteractor(svc *service.InsightsService) insightsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) DayTotal(ctx context.Context, date string) (int, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.Index.DayTotal(date), nil
}

func (i *Interactor) IsGoalMet(ctx context.Context, date string) (bool, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return snap.Index.IsGoalMet(date, snap.Goal.Minutes), nil
}

func (i *Interactor) CurrentStreak(ctx context.Context) (int, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.Index.CurrentStreak(snap.Today, snap.Goal.Minutes), nil
}

func (i *Interactor) LongestStreak(ctx context.Context) (int, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.Index.LongestStreak(snap.Goal.Minutes), nil
}

func (i *Interactor) LifetimeStats(ctx context.Context) (insightsdto.LifetimeOutput, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return insightsdto.LifetimeOutput{}, err
	}
	lifetime := snap.Index.Lifetime(snap.Goal.Minutes)
	today := snap.Index.DayTotal(snap.Today)
	return insightsdto.LifetimeOutput{
		TotalHours:    lifetime.TotalHours,
		TotalSessions: lifetime.TotalSessions,
		LongestStreak: lifetime.LongestStreak,
		CurrentStreak: snap.Index.CurrentStreak(snap.Today, snap.Goal.Minutes),
		MemberSince:   snap.Goal.MemberSince,
		GoalMinutes:   snap.Goal.Minutes,
		TodayMinutes:  today,
		TodayProgress: domain.Progress(today, snap.Goal.Minutes),
		TodayGoalMet:  domain.IsGoalMet(today, snap.Goal.Minutes),
	}, nil
}

func (i *Interactor) DayMood(ctx context.Context, date string) (int, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.DayMood(date), nil
}

func (i *Interactor) MoodDisplay(rating int) insightsdto.MoodOutput {
	d := mood.For(rating)
	return insightsdto.MoodOutput{Rating: rating, Emoji: d.Emoji, Label: d.Label, Color: d.Color, Bg: d.Bg}
}

func (i *Interactor) DaySummary(ctx context.Context, date string) (insightsdto.DaySummaryOutput, error) {
	if _, err := calendar.ParseDate(date); err != nil {
		return insightsdto.DaySummaryOutput{}, err
	}
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return insightsdto.DaySummaryOutput{}, err
	}
	total := snap.Index.DayTotal(date)
	out := insightsdto.DaySummaryOutput{
		Date:         date,
		TotalMinutes: total,
		GoalMinutes:  snap.Goal.Minutes,
		GoalMet:      domain.IsGoalMet(total, snap.Goal.Minutes),
		SessionCount: snap.Index.SessionCount(date),
	}
	if rating := snap.DayMood(date); rating != 0 {
		display := i.MoodDisplay(rating)
		out.Mood = &display
	}
	return out, nil
}

func (i *Interactor) MonthView(ctx context.Context, year, month int) (insightsdto.MonthOutput, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return insightsdto.MonthOutput{}, err
	}
	cells, err := snap.Month(year, month)
	if err != nil {
		return insightsdto.MonthOutput{}, err
	}
	return insightsdto.MonthOutput{
		Year:        year,
		Month:       month,
		Title:       calendar.FormatMonthYear(year, month),
		GoalMinutes: snap.Goal.Minutes,
		Cells:       toCells(cells),
	}, nil
}

func (i *Interactor) Heatmap(ctx context.Context, days int) ([]insightsdto.DayCell, error) {
	snap, err := i.svc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	cells, err := snap.Heatmap(days)
	if err != nil {
		return nil, err
	}
	return toCells(cells), nil
}

func toCells(cells []service.Cell) []insightsdto.DayCell {
	out := make([]insightsdto.DayCell, 0, len(cells))
	for _, c := range cells {
		out = append(out, insightsdto.DayCell{
			Day:          c.Day,
			Date:         c.Date,
			TotalMinutes: c.Total,
			GoalMet:      c.GoalMet,
			Mood:         c.Mood,
			Intensity:    c.Intensity,
			IsToday:      c.IsToday,
		})
	}
	return out
}
