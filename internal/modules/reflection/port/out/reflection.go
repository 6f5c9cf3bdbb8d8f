package out

import (
	"context"

	"offlinewins/internal/modules/reflection/domain"
)

type OverrideStore interface {
	Get(ctx context.Context, date string) (domain.DayOverride, bool, error)
	List(ctx context.Context) ([]domain.DayOverride, error)
	// Upsert replaces the override for the same date, if any.
	Upsert(ctx context.Context, override domain.DayOverride) error
}

type DismissedStore interface {
	List(ctx context.Context) ([]string, error)
	// Add is idempotent.
	Add(ctx context.Context, date string) error
}

// SessionSource exposes the moods of the sessions logged on a date, one
// entry per session, 0 for untagged ones.
type SessionSource interface {
	MoodsOn(ctx context.Context, date string) ([]int, error)
}
