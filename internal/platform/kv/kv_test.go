package kv_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"offlinewins/internal/platform/config"
	"offlinewins/internal/platform/kv"
)

func backends(t *testing.T) map[string]kv.Store {
	t.Helper()
	sqliteStore, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = sqliteStore.Close() })
	return map[string]kv.Store{
		"memory": kv.NewMemoryStore(),
		"diskv":  kv.NewDiskvStore(t.TempDir()),
		"sqlite": sqliteStore,
	}
}

func TestStoreContract(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for name, store := range backends(t) {
		name, store := name, store
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(ctx, kv.KeySessions); !errors.Is(err, kv.ErrNotFound) {
				t.Fatalf("expected ErrNotFound for missing key, got %v", err)
			}
			if err := store.Set(ctx, kv.KeySessions, []byte(`[1,2]`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := store.Set(ctx, kv.KeySessions, []byte(`[3]`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := store.Get(ctx, kv.KeySessions)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if string(got) != `[3]` {
				t.Fatalf("expected overwritten value, got %s", got)
			}
			if err := store.Delete(ctx, kv.KeySessions); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if err := store.Delete(ctx, kv.KeySessions); err != nil {
				t.Fatalf("delete of missing key must be a no-op: %v", err)
			}
			if _, err := store.Get(ctx, kv.KeySessions); !errors.Is(err, kv.ErrNotFound) {
				t.Fatalf("expected ErrNotFound after delete, got %v", err)
			}
		})
	}
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetJSONTreatsUnreadableValuesAsAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kv.NewMemoryStore()

	if _, ok, err := kv.GetJSON[sample](ctx, store, "k"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	cases := map[string]string{
		"garbage": `{not json`,
		"null":    `null`,
		"blank":   `   `,
		"wrong":   `["a"]`,
	}
	for name, raw := range cases {
		if err := store.Set(ctx, "k", []byte(raw)); err != nil {
			t.Fatalf("%s: set: %v", name, err)
		}
		got, ok, err := kv.GetJSON[sample](ctx, store, "k")
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if ok || got != (sample{}) {
			t.Fatalf("%s: expected absent zero value, got ok=%v %+v", name, ok, got)
		}
	}

	if err := kv.SetJSON(ctx, store, "k", sample{Name: "x", Count: 2}); err != nil {
		t.Fatalf("set json: %v", err)
	}
	got, ok, err := kv.GetJSON[sample](ctx, store, "k")
	if err != nil || !ok || got.Name != "x" || got.Count != 2 {
		t.Fatalf("round trip failed: ok=%v err=%v %+v", ok, err, got)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, driver := range []string{config.DriverMemory, config.DriverDiskv, config.DriverSQLite} {
		store, err := kv.Open(config.Config{DataDir: dir, DBPath: filepath.Join(dir, "kv.db"), StorageDriver: driver})
		if err != nil {
			t.Fatalf("open %s: %v", driver, err)
		}
		_ = store.Close()
	}
	if _, err := kv.Open(config.Config{StorageDriver: "redis"}); err == nil {
		t.Fatalf("unknown driver must fail")
	}
}

func TestDiskvStoreSeesWritesFromAnotherInstance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	tui := kv.NewDiskvStore(dir)
	cli := kv.NewDiskvStore(dir)

	if err := tui.Set(ctx, kv.KeySessions, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := tui.Get(ctx, kv.KeySessions); err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := cli.Set(ctx, kv.KeySessions, []byte(`[{"id":"x"}]`)); err != nil {
		t.Fatalf("set from second instance: %v", err)
	}
	got, err := tui.Get(ctx, kv.KeySessions)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"x"}]` {
		t.Fatalf("expected the other instance's write, got %s", got)
	}

	if err := cli.Delete(ctx, kv.KeySessions); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := tui.Get(ctx, kv.KeySessions); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete elsewhere, got %v", err)
	}
}
