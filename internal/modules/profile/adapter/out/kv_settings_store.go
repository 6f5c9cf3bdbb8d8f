package out

import (
	"context"

	"offlinewins/internal/modules/profile/domain"
	profileout "offlinewins/internal/modules/profile/port/out"
	"offlinewins/internal/platform/kv"
)

type KVSettingsStore struct {
	store kv.Store
}

func NewKVSettingsStore(store kv.Store) profileout.SettingsStore {
	return KVSettingsStore{store: store}
}

func (s KVSettingsStore) Load(ctx context.Context) (domain.Settings, bool, error) {
	return kv.GetJSON[domain.Settings](ctx, s.store, kv.KeySettings)
}

func (s KVSettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	return kv.SetJSON(ctx, s.store, kv.KeySettings, settings)
}

// KVWiper deletes every application key.
type KVWiper struct {
	store kv.Store
}

func NewKVWiper(store kv.Store) profileout.DataWiper {
	return KVWiper{store: store}
}

func (w KVWiper) WipeAll(ctx context.Context) error {
	for _, key := range kv.Keys() {
		if err := w.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
