package usecase

import (
	"context"
	"errors"

	"offlinewins/internal/modules/session/domain"
	sessiondto "offlinewins/internal/modules/session/dto"
	sessionin "offlinewins/internal/modules/session/port/in"
	sessionout "offlinewins/internal/modules/session/port/out"
	"offlinewins/internal/modules/session/service"
	apperrors "offlinewins/internal/platform/errors"
	"offlinewins/internal/platform/logger"
)

type Interactor struct {
	svc           *service.SessionService
	sessions      sessionout.SessionStore
	activeStore   sessionout.ActiveSessionStore
	exporter      sessionout.Exporter
	notifier      sessionout.Notifier
	replaceActive bool
}

type Options struct {
	Exporter sessionout.Exporter
	Notifier sessionout.Notifier
	// ReplaceActive makes Start discard a running session by default.
	ReplaceActive bool
}

func NewInteractor(svc *service.SessionService, sessions sessionout.SessionStore, activeStore sessionout.ActiveSessionStore, opts Options) sessionin.Usecase {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Interactor{
		svc:           svc,
		sessions:      sessions,
		activeStore:   activeStore,
		exporter:      opts.Exporter,
		notifier:      notifier,
		replaceActive: opts.ReplaceActive,
	}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.ActiveSessionOutput, error) {
	_, err := i.activeStore.LoadActive(ctx)
	switch {
	case err == nil:
		if !input.Replace && !i.replaceActive {
			return sessiondto.ActiveSessionOutput{}, apperrors.ErrActiveSessionExists
		}
		logger.Info("replacing active session")
	case !errors.Is(err, apperrors.ErrNoActiveSession):
		return sessiondto.ActiveSessionOutput{}, err
	}

	active := i.svc.Start()
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return sessiondto.ActiveSessionOutput{}, err
	}
	i.notifier.SessionStarted(ctx, active)
	return toActiveOutput(active), nil
}

func (i *Interactor) End(ctx context.Context) (sessiondto.EndOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if errors.Is(err, apperrors.ErrNoActiveSession) {
		return sessiondto.EndOutput{}, nil
	}
	if err != nil {
		return sessiondto.EndOutput{}, err
	}
	stub := i.svc.Stub(active)
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.EndOutput{}, err
	}
	return sessiondto.EndOutput{Ended: true, Stub: toOutput(stub)}, nil
}

func (i *Interactor) Log(ctx context.Context, input sessiondto.LogInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.Complete(ctx, fromOutput(input.Stub), toTags(input.Tags))
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	i.notifier.SessionLogged(ctx, session)
	return toOutput(session), nil
}

func (i *Interactor) Skip(ctx context.Context, stub sessiondto.SessionOutput) (sessiondto.SessionOutput, error) {
	return i.Log(ctx, sessiondto.LogInput{Stub: stub})
}

func (i *Interactor) ValidateTags(tags sessiondto.Tags) error {
	return i.svc.ValidateTags(toTags(tags))
}

func (i *Interactor) Edit(ctx context.Context, input sessiondto.EditInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.Edit(ctx, input.ID, toTags(input.Tags))
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.sessions.Delete(ctx, id)
}

func (i *Interactor) Get(ctx context.Context, id string) (sessiondto.SessionOutput, error) {
	session, err := i.sessions.Get(ctx, id)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) List(ctx context.Context, date string) ([]sessiondto.SessionOutput, error) {
	sessions, err := i.sessions.List(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toOutput(session))
	}
	return out, nil
}

func (i *Interactor) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.ActiveSessionOutput{}, err
	}
	return toActiveOutput(active), nil
}

func (i *Interactor) IsActive(ctx context.Context) (bool, error) {
	_, err := i.activeStore.LoadActive(ctx)
	if errors.Is(err, apperrors.ErrNoActiveSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (i *Interactor) Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if errors.Is(err, apperrors.ErrNoActiveSession) {
		return sessiondto.ElapsedOutput{}, nil
	}
	if err != nil {
		return sessiondto.ElapsedOutput{}, err
	}
	elapsed := i.svc.Elapsed(active)
	return sessiondto.ElapsedOutput{Active: true, Elapsed: elapsed, Minutes: int(elapsed.Minutes())}, nil
}

func (i *Interactor) RecoverExpired(ctx context.Context) (sessiondto.ExpiredOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if errors.Is(err, apperrors.ErrNoActiveSession) {
		return sessiondto.ExpiredOutput{}, nil
	}
	if err != nil {
		return sessiondto.ExpiredOutput{}, err
	}
	stub, expired := i.svc.Expired(active)
	if !expired {
		return sessiondto.ExpiredOutput{}, nil
	}
	session, err := i.svc.Complete(ctx, stub, domain.Tags{})
	if err != nil {
		return sessiondto.ExpiredOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.ExpiredOutput{}, err
	}
	logger.Warn("active session expired", "start", active.StartTime, "minutes", session.DurationMinutes)
	i.notifier.SessionExpired(ctx, session)
	return sessiondto.ExpiredOutput{Expired: true, Session: toOutput(session)}, nil
}

func (i *Interactor) Export(ctx context.Context, dir string) (sessiondto.ExportOutput, error) {
	if i.exporter == nil {
		return sessiondto.ExportOutput{}, errors.New("session exporter is not configured")
	}
	sessions, err := i.sessions.List(ctx, "")
	if err != nil {
		return sessiondto.ExportOutput{}, err
	}
	paths, err := i.exporter.Export(ctx, dir, sessions)
	if err != nil {
		return sessiondto.ExportOutput{}, err
	}
	return sessiondto.ExportOutput{Paths: paths}, nil
}

type nopNotifier struct{}

func (nopNotifier) SessionStarted(context.Context, domain.ActiveSession) {}
func (nopNotifier) SessionLogged(context.Context, domain.Session)        {}
func (nopNotifier) SessionExpired(context.Context, domain.Session)       {}
