package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"offlinewins/internal/modules/reflection/domain"
	reflectionout "offlinewins/internal/modules/reflection/port/out"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/clock"
	apperrors "offlinewins/internal/platform/errors"
	"offlinewins/internal/platform/mood"
)

var validate = validator.New()

type ReflectionService struct {
	clock     clock.Clock
	overrides reflectionout.OverrideStore
	dismissed reflectionout.DismissedStore
	sessions  reflectionout.SessionSource
}

func NewReflectionService(clock clock.Clock, overrides reflectionout.OverrideStore, dismissed reflectionout.DismissedStore, sessions reflectionout.SessionSource) *ReflectionService {
	return &ReflectionService{clock: clock, overrides: overrides, dismissed: dismissed, sessions: sessions}
}

func (s *ReflectionService) SetDayMood(ctx context.Context, date string, rating int) (domain.DayOverride, error) {
	if _, err := calendar.ParseDate(date); err != nil {
		return domain.DayOverride{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	override := domain.DayOverride{Date: date, OverrideMood: rating, UpdatedAt: s.clock.Now()}
	if err := validate.Struct(override); err != nil {
		return domain.DayOverride{}, fmt.Errorf("%w: mood must be between 1 and 5", apperrors.ErrInvalidInput)
	}
	if err := s.overrides.Upsert(ctx, override); err != nil {
		return domain.DayOverride{}, err
	}
	return override, nil
}

func (s *ReflectionService) Prompt(ctx context.Context, today string) (domain.Prompt, bool, error) {
	yesterday, err := calendar.AddDays(today, -1)
	if err != nil {
		return domain.Prompt{}, false, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	moods, err := s.sessions.MoodsOn(ctx, yesterday)
	if err != nil {
		return domain.Prompt{}, false, err
	}
	dismissed, err := s.dismissed.List(ctx)
	if err != nil {
		return domain.Prompt{}, false, err
	}
	if !domain.ShouldPrompt(len(moods), slices.Contains(dismissed, yesterday)) {
		return domain.Prompt{}, false, nil
	}
	override, ok, err := s.overrides.Get(ctx, yesterday)
	if err != nil {
		return domain.Prompt{}, false, err
	}
	overrideMood := 0
	if ok {
		overrideMood = override.OverrideMood
	}
	return domain.Prompt{
		Date:         yesterday,
		SessionCount: len(moods),
		Mood:         mood.Resolve(overrideMood, moods),
	}, true, nil
}

func (s *ReflectionService) Dismiss(ctx context.Context, date string) error {
	if _, err := calendar.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.dismissed.Add(ctx, date)
}
