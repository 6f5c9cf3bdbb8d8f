package in

import (
	"context"

	"offlinewins/internal/modules/hook/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.HookInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	// Dispatch delivers event to every enabled hook subscribed to it. A
	// failing hook is reported in its result, never as an error.
	Dispatch(ctx context.Context, event dto.Event) ([]dto.DispatchResult, error)
}
