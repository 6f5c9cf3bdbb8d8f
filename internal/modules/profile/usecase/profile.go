package usecase

import (
	"context"

	"offlinewins/internal/modules/profile/domain"
	profiledto "offlinewins/internal/modules/profile/dto"
	profilein "offlinewins/internal/modules/profile/port/in"
	"offlinewins/internal/modules/profile/service"
	"offlinewins/internal/platform/logger"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (profiledto.SettingsOutput, error) {
	settings, err := i.svc.Settings(ctx)
	if err != nil {
		return profiledto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Onboard(ctx context.Context, input profiledto.OnboardInput) (profiledto.SettingsOutput, error) {
	settings, err := i.svc.Onboard(ctx, input.Name, input.GoalMinutes)
	if err != nil {
		return profiledto.SettingsOutput{}, err
	}
	logger.Info("onboarding complete", "goal_minutes", settings.DailyGoalMinutes)
	return toOutput(settings), nil
}

func (i *Interactor) SetGoal(ctx context.Context, raw string) (profiledto.SetGoalOutput, error) {
	settings, changed, err := i.svc.SetGoal(ctx, raw)
	if err != nil {
		return profiledto.SetGoalOutput{}, err
	}
	return profiledto.SetGoalOutput{Settings: toOutput(settings), Changed: changed}, nil
}

func (i *Interactor) SetName(ctx context.Context, name string) (profiledto.SettingsOutput, error) {
	settings, err := i.svc.SetName(ctx, name)
	if err != nil {
		return profiledto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	if err := i.svc.Reset(ctx); err != nil {
		return err
	}
	logger.Warn("all data cleared")
	return nil
}

func toOutput(settings domain.Settings) profiledto.SettingsOutput {
	return profiledto.SettingsOutput{
		Name:               settings.DisplayName(),
		DailyGoalMinutes:   settings.DailyGoalMinutes,
		OnboardingComplete: settings.OnboardingComplete,
		CreatedAt:          settings.CreatedAt,
	}
}
