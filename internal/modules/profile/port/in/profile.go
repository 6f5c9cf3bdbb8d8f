package in

import (
	"context"

	"offlinewins/internal/modules/profile/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	Onboard(ctx context.Context, input dto.OnboardInput) (dto.SettingsOutput, error)
	SetGoal(ctx context.Context, raw string) (dto.SetGoalOutput, error)
	SetName(ctx context.Context, name string) (dto.SettingsOutput, error)
	Reset(ctx context.Context) error
}
