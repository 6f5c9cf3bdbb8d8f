package usecase

import (
	"context"

	"offlinewins/internal/modules/reflection/domain"
	reflectiondto "offlinewins/internal/modules/reflection/dto"
	reflectionin "offlinewins/internal/modules/reflection/port/in"
	reflectionout "offlinewins/internal/modules/reflection/port/out"
	"offlinewins/internal/modules/reflection/service"
)

type Interactor struct {
	svc       *service.ReflectionService
	overrides reflectionout.OverrideStore
	dismissed reflectionout.DismissedStore
}

func NewInteractor(svc *service.ReflectionService, overrides reflectionout.OverrideStore, dismissed reflectionout.DismissedStore) reflectionin.Usecase {
	return &Interactor{svc: svc, overrides: overrides, dismissed: dismissed}
}

func (i *Interactor) SetDayMood(ctx context.Context, date string, mood int) (reflectiondto.OverrideOutput, error) {
	override, err := i.svc.SetDayMood(ctx, date, mood)
	if err != nil {
		return reflectiondto.OverrideOutput{}, err
	}
	return toOutput(override), nil
}

func (i *Interactor) GetOverride(ctx context.Context, date string) (reflectiondto.OverrideOutput, bool, error) {
	override, ok, err := i.overrides.Get(ctx, date)
	if err != nil || !ok {
		return reflectiondto.OverrideOutput{}, false, err
	}
	return toOutput(override), true, nil
}

func (i *Interactor) ListOverrides(ctx context.Context) ([]reflectiondto.OverrideOutput, error) {
	overrides, err := i.overrides.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]reflectiondto.OverrideOutput, 0, len(overrides))
	for _, override := range overrides {
		out = append(out, toOutput(override))
	}
	return out, nil
}

func (i *Interactor) Prompt(ctx context.Context, today string) (reflectiondto.PromptOutput, error) {
	prompt, show, err := i.svc.Prompt(ctx, today)
	if err != nil || !show {
		return reflectiondto.PromptOutput{}, err
	}
	return reflectiondto.PromptOutput{Show: true, Date: prompt.Date, SessionCount: prompt.SessionCount, Mood: prompt.Mood}, nil
}

func (i *Interactor) Keep(ctx context.Context, date string) error {
	return i.svc.Dismiss(ctx, date)
}

// Change records the new mood before dismissing so a failed write leaves the
// prompt in place.
func (i *Interactor) Change(ctx context.Context, date string, mood int) error {
	if _, err := i.svc.SetDayMood(ctx, date, mood); err != nil {
		return err
	}
	return i.svc.Dismiss(ctx, date)
}

func (i *Interactor) Dismiss(ctx context.Context, date string) error {
	return i.svc.Dismiss(ctx, date)
}

func (i *Interactor) Dismissed(ctx context.Context) ([]string, error) {
	return i.dismissed.List(ctx)
}

func toOutput(override domain.DayOverride) reflectiondto.OverrideOutput {
	return reflectiondto.OverrideOutput{Date: override.Date, OverrideMood: override.OverrideMood, UpdatedAt: override.UpdatedAt}
}
