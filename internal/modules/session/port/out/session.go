package out

import (
	"context"

	"offlinewins/internal/modules/session/domain"
)

type SessionStore interface {
	// List returns every session, or only those on date when it is non-empty.
	List(ctx context.Context, date string) ([]domain.Session, error)
	Get(ctx context.Context, id string) (domain.Session, error)
	Append(ctx context.Context, session domain.Session) error
	// Update applies mutate to the session with id and persists the result.
	Update(ctx context.Context, id string, mutate func(*domain.Session)) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}

type Exporter interface {
	Export(ctx context.Context, dir string, sessions []domain.Session) ([]string, error)
}

// Notifier is told about lifecycle changes. Implementations must not fail
// the operation that triggered them.
type Notifier interface {
	SessionStarted(ctx context.Context, active domain.ActiveSession)
	SessionLogged(ctx context.Context, session domain.Session)
	SessionExpired(ctx context.Context, session domain.Session)
}
