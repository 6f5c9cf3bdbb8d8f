package out

import (
	"context"
	"fmt"
	"sync"

	"offlinewins/internal/modules/session/domain"
	sessionout "offlinewins/internal/modules/session/port/out"
	apperrors "offlinewins/internal/platform/errors"
	"offlinewins/internal/platform/kv"
)

// KVSessionStore keeps every completed session in one JSON array. Each
// operation is a full read-modify-write, serialized within the process.
type KVSessionStore struct {
	mu    sync.Mutex
	store kv.Store
}

func NewKVSessionStore(store kv.Store) sessionout.SessionStore {
	return &KVSessionStore{store: store}
}

func (s *KVSessionStore) List(ctx context.Context, date string) ([]domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return all, nil
	}
	out := make([]domain.Session, 0, len(all))
	for _, session := range all {
		if session.Date == date {
			out = append(out, session)
		}
	}
	return out, nil
}

func (s *KVSessionStore) Get(ctx context.Context, id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	idx := indexOf(all, id)
	if idx < 0 {
		return domain.Session{}, fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	return all[idx], nil
}

func (s *KVSessionStore) Append(ctx context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	return kv.SetJSON(ctx, s.store, kv.KeySessions, append(all, session))
}

func (s *KVSessionStore) Update(ctx context.Context, id string, mutate func(*domain.Session)) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	idx := indexOf(all, id)
	if idx < 0 {
		return domain.Session{}, fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	updated := all[idx]
	mutate(&updated)
	updated.ID = id
	if err := updated.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	all[idx] = updated
	if err := kv.SetJSON(ctx, s.store, kv.KeySessions, all); err != nil {
		return domain.Session{}, err
	}
	return updated, nil
}

func (s *KVSessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(all, id)
	if idx < 0 {
		return fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	all = append(all[:idx], all[idx+1:]...)
	return kv.SetJSON(ctx, s.store, kv.KeySessions, all)
}

func (s *KVSessionStore) load(ctx context.Context) ([]domain.Session, error) {
	all, ok, err := kv.GetJSON[[]domain.Session](ctx, s.store, kv.KeySessions)
	if err != nil {
		return nil, err
	}
	if !ok || all == nil {
		return []domain.Session{}, nil
	}
	return all, nil
}

func indexOf(sessions []domain.Session, id string) int {
	for i, session := range sessions {
		if session.ID == id {
			return i
		}
	}
	return -1
}
