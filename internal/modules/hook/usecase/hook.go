package usecase

import (
	"context"

	"offlinewins/internal/modules/hook/domain"
	"offlinewins/internal/modules/hook/dto"
	hookin "offlinewins/internal/modules/hook/port/in"
	"offlinewins/internal/modules/hook/service"
)

type Interactor struct {
	svc *service.HookService
}

func NewInteractor(svc *service.HookService) hookin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.HookInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Dispatch(ctx context.Context, event dto.Event) ([]dto.DispatchResult, error) {
	return i.svc.Dispatch(ctx, domain.Event{
		Name:            domain.EventName(event.Name),
		OccurredAt:      event.OccurredAt,
		SessionID:       event.SessionID,
		Date:            event.Date,
		DurationMinutes: event.DurationMinutes,
		TotalMinutes:    event.TotalMinutes,
		GoalMinutes:     event.GoalMinutes,
	})
}
