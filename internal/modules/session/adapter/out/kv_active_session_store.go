package out

import (
	"context"
	"sync"

	"offlinewins/internal/modules/session/domain"
	sessionout "offlinewins/internal/modules/session/port/out"
	apperrors "offlinewins/internal/platform/errors"
	"offlinewins/internal/platform/kv"
)

type KVActiveSessionStore struct {
	mu    sync.Mutex
	store kv.Store
}

func NewKVActiveSessionStore(store kv.Store) sessionout.ActiveSessionStore {
	return &KVActiveSessionStore{store: store}
}

func (s *KVActiveSessionStore) SaveActive(ctx context.Context, session domain.ActiveSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return kv.SetJSON(ctx, s.store, kv.KeyActiveSession, session)
}

// LoadActive treats a missing, unreadable or inactive record as no session.
func (s *KVActiveSessionStore) LoadActive(ctx context.Context) (domain.ActiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active, ok, err := kv.GetJSON[domain.ActiveSession](ctx, s.store, kv.KeyActiveSession)
	if err != nil {
		return domain.ActiveSession{}, err
	}
	if !ok || !active.IsActive || active.StartTime.IsZero() {
		return domain.ActiveSession{}, apperrors.ErrNoActiveSession
	}
	return active, nil
}

func (s *KVActiveSessionStore) ClearActive(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(ctx, kv.KeyActiveSession)
}
