// Package kv is the key-value contract every piece of persisted state goes
// through: opaque byte values addressed by a fixed set of string keys.
package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"offlinewins/internal/platform/config"
	"offlinewins/internal/platform/logger"
)

var ErrNotFound = errors.New("kv: key not found")

const (
	KeySettings        = "offlinewins_settings"
	KeyActiveSession   = "offlinewins_active_session"
	KeySessions        = "offlinewins_sessions"
	KeyDayOverrides    = "offlinewins_day_overrides"
	KeyPromptDismissed = "offlinewins_prompt_dismissed"
)

// Keys lists every key the application writes.
func Keys() []string {
	return []string{KeySettings, KeyActiveSession, KeySessions, KeyDayOverrides, KeyPromptDismissed}
}

type Store interface {
	// Get returns ErrNotFound when key has never been set or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the backend selected by cfg.StorageDriver.
func Open(cfg config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case config.DriverDiskv:
		return NewDiskvStore(filepath.Join(cfg.DataDir, "data")), nil
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.DBPath)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// GetJSON decodes the value at key into T. Missing keys, JSON null and values
// that no longer parse all report ok=false; only backend failures are errors.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var out T
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return out, false, nil
	}
	if err != nil {
		return out, false, fmt.Errorf("read %s: %w", key, err)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, false, nil
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		logger.Warn("ignoring unreadable stored value", "key", key, "error", err)
		var zero T
		return zero, false, nil
	}
	return out, true, nil
}

func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
