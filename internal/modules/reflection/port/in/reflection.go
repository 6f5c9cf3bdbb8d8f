package in

import (
	"context"

	"offlinewins/internal/modules/reflection/dto"
)

type Usecase interface {
	SetDayMood(ctx context.Context, date string, mood int) (dto.OverrideOutput, error)
	GetOverride(ctx context.Context, date string) (dto.OverrideOutput, bool, error)
	ListOverrides(ctx context.Context) ([]dto.OverrideOutput, error)
	// Prompt decides whether to ask about the day before today.
	Prompt(ctx context.Context, today string) (dto.PromptOutput, error)
	Keep(ctx context.Context, date string) error
	Change(ctx context.Context, date string, mood int) error
	Dismiss(ctx context.Context, date string) error
	Dismissed(ctx context.Context) ([]string, error)
}
