package in

import (
	"context"

	sessiondto "offlinewins/internal/modules/session/dto"
	sessionin "offlinewins/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, replace bool) (sessiondto.ActiveSessionOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{Replace: replace})
}

// End stops the active session and immediately logs it with tags, or
// without any when skip is set. ok is false when nothing was running.
// Tags are checked first so a rejected mood leaves the session running.
func (h CLIHandler) End(ctx context.Context, tags sessiondto.Tags, skip bool) (sessiondto.SessionOutput, bool, error) {
	if !skip {
		if err := h.usecase.ValidateTags(tags); err != nil {
			return sessiondto.SessionOutput{}, false, err
		}
	}
	ended, err := h.usecase.End(ctx)
	if err != nil || !ended.Ended {
		return sessiondto.SessionOutput{}, false, err
	}
	if skip {
		out, err := h.usecase.Skip(ctx, ended.Stub)
		return out, true, err
	}
	out, err := h.usecase.Log(ctx, sessiondto.LogInput{Stub: ended.Stub, Tags: tags})
	return out, true, err
}

// Stop ends the active session without persisting it; the caller logs or
// skips the returned stub.
func (h CLIHandler) Stop(ctx context.Context) (sessiondto.EndOutput, error) {
	return h.usecase.End(ctx)
}

func (h CLIHandler) Log(ctx context.Context, stub sessiondto.SessionOutput, tags sessiondto.Tags) (sessiondto.SessionOutput, error) {
	return h.usecase.Log(ctx, sessiondto.LogInput{Stub: stub, Tags: tags})
}

func (h CLIHandler) Skip(ctx context.Context, stub sessiondto.SessionOutput) (sessiondto.SessionOutput, error) {
	return h.usecase.Skip(ctx, stub)
}

func (h CLIHandler) Edit(ctx context.Context, id string, tags sessiondto.Tags) (sessiondto.SessionOutput, error) {
	return h.usecase.Edit(ctx, sessiondto.EditInput{ID: id, Tags: tags})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Get(ctx context.Context, id string) (sessiondto.SessionOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, date string) ([]sessiondto.SessionOutput, error) {
	return h.usecase.List(ctx, date)
}

func (h CLIHandler) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error) {
	return h.usecase.Elapsed(ctx)
}

func (h CLIHandler) RecoverExpired(ctx context.Context) (sessiondto.ExpiredOutput, error) {
	return h.usecase.RecoverExpired(ctx)
}

func (h CLIHandler) Export(ctx context.Context, dir string) (sessiondto.ExportOutput, error) {
	return h.usecase.Export(ctx, dir)
}
