package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	hookout "offlinewins/internal/modules/hook/adapter/out"
	"offlinewins/internal/modules/hook/domain"
)

func TestGRPCHostIntegrationReferenceHook(t *testing.T) {
	binPath, checksum := buildReferenceHook(t)
	logPath := filepath.Join(t.TempDir(), "events.log")
	t.Setenv("OFFLINEWINS_HOOK_LOG", logPath)
	manifest := domain.Manifest{
		Name:    "reference",
		Version: "1.0.0",
		Binary:  binPath,
		SHA256:  checksum,
		Enabled: true,
		Events:  []domain.EventName{domain.EventSessionEnded},
	}

	host := hookout.NewGRPCHost(false)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "reference" || len(metadata.Events) != 4 {
		t.Fatalf("unexpected metadata: %+v", metadata)
	}

	ack, err := host.Notify(ctx, manifest, domain.Event{
		Name:            domain.EventSessionEnded,
		OccurredAt:      time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		Date:            "2024-02-01",
		DurationMinutes: 42,
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if !ack.Accepted || !strings.Contains(ack.Message, "session.ended") {
		t.Fatalf("unexpected ack: %+v", ack)
	}
	logged, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read hook log: %v", err)
	}
	if !strings.Contains(string(logged), `"duration_minutes":42`) {
		t.Fatalf("unexpected hook log: %s", logged)
	}
}

func buildReferenceHook(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "reference-hook")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/reference")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build reference hook: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built hook: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
