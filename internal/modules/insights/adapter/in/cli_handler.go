package in

import (
	"context"

	insightsdto "offlinewins/internal/modules/insights/dto"
	insightsin "offlinewins/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) (insightsdto.LifetimeOutput, error) {
	return h.usecase.LifetimeStats(ctx)
}

func (h CLIHandler) Day(ctx context.Context, date string) (insightsdto.DaySummaryOutput, error) {
	return h.usecase.DaySummary(ctx, date)
}

func (h CLIHandler) Month(ctx context.Context, year, month int) (insightsdto.MonthOutput, error) {
	return h.usecase.MonthView(ctx, year, month)
}

func (h CLIHandler) Heatmap(ctx context.Context, days int) ([]insightsdto.DayCell, error) {
	return h.usecase.Heatmap(ctx, days)
}

func (h CLIHandler) Mood(rating int) insightsdto.MoodOutput {
	return h.usecase.MoodDisplay(rating)
}
