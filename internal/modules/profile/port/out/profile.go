package out

import (
	"context"

	"offlinewins/internal/modules/profile/domain"
)

type SettingsStore interface {
	// Load reports ok=false when no settings were saved yet.
	Load(ctx context.Context) (domain.Settings, bool, error)
	Save(ctx context.Context, settings domain.Settings) error
}

// DataWiper removes every piece of persisted application state.
type DataWiper interface {
	WipeAll(ctx context.Context) error
}
