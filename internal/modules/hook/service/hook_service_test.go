package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"offlinewins/internal/modules/hook/domain"
	"offlinewins/internal/modules/hook/service"
)

type staticStore []domain.Manifest

func (s staticStore) Load(context.Context) ([]domain.Manifest, error) { return s, nil }

type fakeHost struct {
	notified []string
	fail     map[string]error
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }

func (f *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version, Events: m.Events}, nil
}

func (f *fakeHost) Notify(_ context.Context, m domain.Manifest, event domain.Event) (domain.Ack, error) {
	if err := f.fail[m.Name]; err != nil {
		return domain.Ack{}, err
	}
	f.notified = append(f.notified, m.Name+":"+string(event.Name))
	return domain.Ack{Accepted: true, Message: "ok"}, nil
}

func writeBinary(t *testing.T, dir, name string) (string, string) {
	t.Helper()
	path := filepath.Join(dir, name)
	payload := []byte("binary-" + name)
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	sum := sha256.Sum256(payload)
	return path, hex.EncodeToString(sum[:])
}

func TestDoctorDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	binPath, _ := writeBinary(t, t.TempDir(), "demo")
	store := staticStore{{
		Name:    "demo",
		Version: "1.0.0",
		Binary:  binPath,
		SHA256:  strings.Repeat("0", 64),
		Enabled: true,
		Events:  []domain.EventName{domain.EventSessionEnded},
	}}

	results, err := service.NewHookService(store, nil).Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if !results[0].BinaryReachable || results[0].ChecksumValid || results[0].Error != "checksum mismatch" {
		t.Fatalf("unexpected doctor result %+v", results[0])
	}
}

func TestDoctorReportsLifecycle(t *testing.T) {
	t.Parallel()
	binPath, sum := writeBinary(t, t.TempDir(), "ok")
	store := staticStore{
		{Name: "ok", Version: "1", Binary: binPath, SHA256: sum, Enabled: true, Events: []domain.EventName{domain.EventGoalMet}},
		{Name: "missing", Version: "1", Binary: "/nonexistent/hook", SHA256: sum, Enabled: true, Events: []domain.EventName{domain.EventGoalMet}},
	}

	results, err := service.NewHookService(store, &fakeHost{}).Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !results[0].LifecycleOK || results[0].Error != "" {
		t.Fatalf("expected healthy hook, got %+v", results[0])
	}
	if results[1].BinaryReachable || results[1].Error == "" {
		t.Fatalf("expected unreachable binary, got %+v", results[1])
	}
}

func TestDispatchDeliversToSubscribersOnly(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	endedPath, endedSum := writeBinary(t, dir, "ended")
	goalPath, goalSum := writeBinary(t, dir, "goal")
	brokenPath, brokenSum := writeBinary(t, dir, "broken")
	store := staticStore{
		{Name: "ended", Version: "1", Binary: endedPath, SHA256: endedSum, Enabled: true, Events: []domain.EventName{domain.EventSessionEnded}},
		{Name: "goal", Version: "1", Binary: goalPath, SHA256: goalSum, Enabled: true, Events: []domain.EventName{domain.EventGoalMet}},
		{Name: "disabled", Version: "1", Binary: endedPath, SHA256: endedSum, Enabled: false, Events: []domain.EventName{domain.EventSessionEnded}},
		{Name: "broken", Version: "1", Binary: brokenPath, SHA256: brokenSum, Enabled: true, Events: []domain.EventName{domain.EventSessionEnded}},
		{Name: "tampered", Version: "1", Binary: endedPath, SHA256: goalSum, Enabled: true, Events: []domain.EventName{domain.EventSessionEnded}},
	}
	host := &fakeHost{fail: map[string]error{"broken": errors.New("boom")}}

	results, err := service.NewHookService(store, host).Dispatch(context.Background(), domain.Event{
		Name:       domain.EventSessionEnded,
		OccurredAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(host.notified) != 1 || host.notified[0] != "ended:session.ended" {
		t.Fatalf("unexpected deliveries %v", host.notified)
	}
	if len(results) != 3 {
		t.Fatalf("expected results for ended, broken and tampered, got %+v", results)
	}
	for _, r := range results {
		switch r.Name {
		case "ended":
			if !r.Delivered {
				t.Fatalf("expected delivery: %+v", r)
			}
		case "broken", "tampered":
			if r.Delivered || r.Error == "" {
				t.Fatalf("expected failure: %+v", r)
			}
		default:
			t.Fatalf("unexpected result %+v", r)
		}
	}
}

func TestDispatchRejectsUnknownEvent(t *testing.T) {
	t.Parallel()
	_, err := service.NewHookService(staticStore{}, &fakeHost{}).Dispatch(context.Background(), domain.Event{Name: "nope", OccurredAt: time.Now()})
	if err == nil {
		t.Fatalf("expected error for unknown event")
	}
}
