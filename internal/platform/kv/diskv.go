package kv

import (
	"context"
	"errors"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore keeps one file per key in a flat directory. Reads always hit
// the disk: another process may have rewritten a key since the last read.
type DiskvStore struct {
	d *diskv.Diskv
}

func NewDiskvStore(basePath string) *DiskvStore {
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 0,
		FilePerm:     0o600,
		PathPerm:     0o700,
	})}
}

func (s *DiskvStore) Get(_ context.Context, key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (s *DiskvStore) Set(_ context.Context, key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *DiskvStore) Delete(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}
