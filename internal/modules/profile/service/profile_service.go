package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"offlinewins/internal/modules/profile/domain"
	profileout "offlinewins/internal/modules/profile/port/out"
	"offlinewins/internal/platform/clock"
	apperrors "offlinewins/internal/platform/errors"
)

var validate = validator.New()

type ProfileService struct {
	clock clock.Clock
	store profileout.SettingsStore
	wiper profileout.DataWiper
}

func NewProfileService(clock clock.Clock, store profileout.SettingsStore, wiper profileout.DataWiper) *ProfileService {
	return &ProfileService{clock: clock, store: store, wiper: wiper}
}

// Settings never fails on absence: unset settings are the defaults.
func (s *ProfileService) Settings(ctx context.Context) (domain.Settings, error) {
	settings, ok, err := s.store.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok || settings.DailyGoalMinutes <= 0 {
		defaults := domain.Default(s.clock.Now())
		if ok {
			settings.DailyGoalMinutes = defaults.DailyGoalMinutes
			return settings, nil
		}
		return defaults, nil
	}
	return settings, nil
}

func (s *ProfileService) Onboard(ctx context.Context, name string, goalMinutes int) (domain.Settings, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Settings{}, fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	settings := domain.Settings{
		Name:               &name,
		DailyGoalMinutes:   domain.ClampGoal(goalMinutes),
		OnboardingComplete: true,
		CreatedAt:          s.clock.Now(),
	}
	return settings, s.save(ctx, settings)
}

func (s *ProfileService) SetGoal(ctx context.Context, raw string) (domain.Settings, bool, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return domain.Settings{}, false, err
	}
	minutes, ok := domain.ParseGoal(raw)
	if !ok {
		return settings, false, nil
	}
	settings.DailyGoalMinutes = minutes
	return settings, true, s.save(ctx, settings)
}

func (s *ProfileService) SetName(ctx context.Context, name string) (domain.Settings, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Settings{}, fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	settings.Name = &name
	return settings, s.save(ctx, settings)
}

func (s *ProfileService) Reset(ctx context.Context) error {
	return s.wiper.WipeAll(ctx)
}

func (s *ProfileService) save(ctx context.Context, settings domain.Settings) error {
	if err := validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.store.Save(ctx, settings)
}
