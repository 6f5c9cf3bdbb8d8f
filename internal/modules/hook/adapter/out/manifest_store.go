package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"offlinewins/internal/modules/hook/domain"
	hookout "offlinewins/internal/modules/hook/port/out"
)

type manifestFile struct {
	Hooks []domain.Manifest `yaml:"hooks"`
}

// YAMLManifestStore reads hooks.yaml. Relative binaries resolve against the
// directory holding the file.
type YAMLManifestStore struct {
	path string
}

func NewYAMLManifestStore(path string) hookout.ManifestStore {
	return &YAMLManifestStore{path: path}
}

func (s *YAMLManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read hook manifest: %w", err)
	}
	file := manifestFile{}
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode hook manifest: %w", err)
	}
	base := filepath.Dir(s.path)
	for i := range file.Hooks {
		if file.Hooks[i].Binary != "" && !filepath.IsAbs(file.Hooks[i].Binary) {
			file.Hooks[i].Binary = filepath.Clean(filepath.Join(base, file.Hooks[i].Binary))
		}
	}
	if file.Hooks == nil {
		return []domain.Manifest{}, nil
	}
	return file.Hooks, nil
}
