package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	hookout "offlinewins/internal/modules/hook/adapter/out"
	"offlinewins/internal/modules/hook/domain"
)

func TestYAMLManifestStoreLoadMissingReturnsEmpty(t *testing.T) {
	t.Parallel()
	store := hookout.NewYAMLManifestStore(filepath.Join(t.TempDir(), "hooks", "hooks.yaml"))
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected empty manifests, got %d", len(manifests))
	}
}

func TestYAMLManifestStoreResolvesRelativeBinary(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "hooks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir hooks: %v", err)
	}
	raw := `hooks:
  - name: reference
    version: 1.0.0
    binary: bin/reference-hook
    sha256: aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
    enabled: true
    events: [session.ended, goal.met]
`
	path := filepath.Join(dir, "hooks.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write hooks.yaml: %v", err)
	}
	manifests, err := hookout.NewYAMLManifestStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 1 {
		t.Fatalf("expected one manifest, got %d", len(manifests))
	}
	if manifests[0].Binary != filepath.Join(dir, "bin", "reference-hook") {
		t.Fatalf("unexpected binary path: %s", manifests[0].Binary)
	}
	if !manifests[0].Subscribes(domain.EventGoalMet) {
		t.Fatalf("expected goal.met subscription: %+v", manifests[0].Events)
	}
}

func TestYAMLManifestStoreRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "hooks.yaml")
	raw := "hooks:\n  - name: x\n    capabilities: [command]\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write hooks.yaml: %v", err)
	}
	if _, err := hookout.NewYAMLManifestStore(path).Load(context.Background()); err == nil {
		t.Fatalf("expected unknown field error")
	}
}
