package in

import (
	"context"

	profiledto "offlinewins/internal/modules/profile/dto"
	profilein "offlinewins/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (profiledto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Onboard(ctx context.Context, name string, goalMinutes int) (profiledto.SettingsOutput, error) {
	return h.usecase.Onboard(ctx, profiledto.OnboardInput{Name: name, GoalMinutes: goalMinutes})
}

func (h CLIHandler) SetGoal(ctx context.Context, raw string) (profiledto.SetGoalOutput, error) {
	return h.usecase.SetGoal(ctx, raw)
}

func (h CLIHandler) SetName(ctx context.Context, name string) (profiledto.SettingsOutput, error) {
	return h.usecase.SetName(ctx, name)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
