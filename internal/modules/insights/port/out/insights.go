package out

import (
	"context"

	"offlinewins/internal/modules/insights/domain"
)

type SessionSource interface {
	Entries(ctx context.Context) ([]domain.Entry, error)
}

type GoalSource interface {
	Goal(ctx context.Context) (domain.Goal, error)
}

// OverrideSource maps dates to their override mood.
type OverrideSource interface {
	Overrides(ctx context.Context) (map[string]int, error)
}
