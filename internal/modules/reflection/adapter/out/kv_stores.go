package out

import (
	"context"
	"slices"
	"sync"

	"offlinewins/internal/modules/reflection/domain"
	reflectionout "offlinewins/internal/modules/reflection/port/out"
	"offlinewins/internal/platform/kv"
)

type KVOverrideStore struct {
	mu    sync.Mutex
	store kv.Store
}

func NewKVOverrideStore(store kv.Store) reflectionout.OverrideStore {
	return &KVOverrideStore{store: store}
}

func (s *KVOverrideStore) Get(ctx context.Context, date string) (domain.DayOverride, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return domain.DayOverride{}, false, err
	}
	for _, override := range all {
		if override.Date == date {
			return override, true, nil
		}
	}
	return domain.DayOverride{}, false, nil
}

func (s *KVOverrideStore) List(ctx context.Context) ([]domain.DayOverride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *KVOverrideStore) Upsert(ctx context.Context, override domain.DayOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(all, func(o domain.DayOverride) bool { return o.Date == override.Date })
	if idx >= 0 {
		all[idx] = override
	} else {
		all = append(all, override)
	}
	return kv.SetJSON(ctx, s.store, kv.KeyDayOverrides, all)
}

func (s *KVOverrideStore) load(ctx context.Context) ([]domain.DayOverride, error) {
	all, ok, err := kv.GetJSON[[]domain.DayOverride](ctx, s.store, kv.KeyDayOverrides)
	if err != nil {
		return nil, err
	}
	if !ok || all == nil {
		return []domain.DayOverride{}, nil
	}
	return all, nil
}

type KVDismissedStore struct {
	mu    sync.Mutex
	store kv.Store
}

func NewKVDismissedStore(store kv.Store) reflectionout.DismissedStore {
	return &KVDismissedStore{store: store}
}

func (s *KVDismissedStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *KVDismissedStore) Add(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	dates, err := s.load(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(dates, date) {
		return nil
	}
	return kv.SetJSON(ctx, s.store, kv.KeyPromptDismissed, append(dates, date))
}

func (s *KVDismissedStore) load(ctx context.Context) ([]string, error) {
	dates, ok, err := kv.GetJSON[[]string](ctx, s.store, kv.KeyPromptDismissed)
	if err != nil {
		return nil, err
	}
	if !ok || dates == nil {
		return []string{}, nil
	}
	return dates, nil
}
