package domain_test

import (
	"strings"
	"testing"
	"time"

	"offlinewins/internal/modules/hook/domain"
)

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	sha := strings.Repeat("a", 64)
	events := []domain.EventName{domain.EventSessionEnded}
	cases := []struct {
		name      string
		manifest  domain.Manifest
		shouldErr bool
	}{
		{name: "valid", manifest: domain.Manifest{Name: "h", Version: "1", Binary: "/tmp/h", SHA256: sha, Enabled: true, Events: events}},
		{name: "missing name", manifest: domain.Manifest{Version: "1", Binary: "/tmp/h", SHA256: sha, Events: events}, shouldErr: true},
		{name: "missing version", manifest: domain.Manifest{Name: "h", Binary: "/tmp/h", SHA256: sha, Events: events}, shouldErr: true},
		{name: "missing binary", manifest: domain.Manifest{Name: "h", Version: "1", SHA256: sha, Events: events}, shouldErr: true},
		{name: "uppercase sha", manifest: domain.Manifest{Name: "h", Version: "1", Binary: "/tmp/h", SHA256: strings.Repeat("A", 64), Events: events}, shouldErr: true},
		{name: "no events", manifest: domain.Manifest{Name: "h", Version: "1", Binary: "/tmp/h", SHA256: sha}, shouldErr: true},
		{name: "unknown event", manifest: domain.Manifest{Name: "h", Version: "1", Binary: "/tmp/h", SHA256: sha, Events: []domain.EventName{"session.paused"}}, shouldErr: true},
		{name: "duplicate event", manifest: domain.Manifest{Name: "h", Version: "1", Binary: "/tmp/h", SHA256: sha, Events: []domain.EventName{domain.EventGoalMet, domain.EventGoalMet}}, shouldErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.manifest.Validate()
			if tc.shouldErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.shouldErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestSubscribesAndEventValidate(t *testing.T) {
	t.Parallel()
	manifest := domain.Manifest{Events: []domain.EventName{domain.EventSessionEnded, domain.EventGoalMet}}
	if !manifest.Subscribes(domain.EventGoalMet) {
		t.Fatalf("expected subscription")
	}
	if manifest.Subscribes(domain.EventSessionStarted) {
		t.Fatalf("did not expect subscription")
	}
	if err := (domain.Event{Name: domain.EventGoalMet, OccurredAt: time.Now()}).Validate(); err != nil {
		t.Fatalf("event validate: %v", err)
	}
	if err := (domain.Event{Name: domain.EventGoalMet}).Validate(); err == nil {
		t.Fatalf("expected missing time error")
	}
}
