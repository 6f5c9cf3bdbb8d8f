package in

import (
	"context"

	"offlinewins/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.ActiveSessionOutput, error)
	End(ctx context.Context) (dto.EndOutput, error)
	Log(ctx context.Context, input dto.LogInput) (dto.SessionOutput, error)
	Skip(ctx context.Context, stub dto.SessionOutput) (dto.SessionOutput, error)
	// ValidateTags reports the error Log would return for tags.
	ValidateTags(tags dto.Tags) error
	Edit(ctx context.Context, input dto.EditInput) (dto.SessionOutput, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.SessionOutput, error)
	List(ctx context.Context, date string) ([]dto.SessionOutput, error)
	GetActive(ctx context.Context) (dto.ActiveSessionOutput, error)
	IsActive(ctx context.Context) (bool, error)
	Elapsed(ctx context.Context) (dto.ElapsedOutput, error)
	RecoverExpired(ctx context.Context) (dto.ExpiredOutput, error)
	Export(ctx context.Context, dir string) (dto.ExportOutput, error)
}
