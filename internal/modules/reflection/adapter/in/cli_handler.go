package in

import (
	"context"

	reflectiondto "offlinewins/internal/modules/reflection/dto"
	reflectionin "offlinewins/internal/modules/reflection/port/in"
)

type CLIHandler struct {
	usecase reflectionin.Usecase
}

func NewCLIHandler(usecase reflectionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SetDayMood(ctx context.Context, date string, mood int) (reflectiondto.OverrideOutput, error) {
	return h.usecase.SetDayMood(ctx, date, mood)
}

func (h CLIHandler) Prompt(ctx context.Context, today string) (reflectiondto.PromptOutput, error) {
	return h.usecase.Prompt(ctx, today)
}

func (h CLIHandler) Keep(ctx context.Context, date string) error {
	return h.usecase.Keep(ctx, date)
}

func (h CLIHandler) Change(ctx context.Context, date string, mood int) error {
	return h.usecase.Change(ctx, date, mood)
}

func (h CLIHandler) Dismiss(ctx context.Context, date string) error {
	return h.usecase.Dismiss(ctx, date)
}
