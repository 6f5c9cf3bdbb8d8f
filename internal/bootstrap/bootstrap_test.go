package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	sessiondto "offlinewins/internal/modules/session/dto"
	"offlinewins/internal/platform/config"
	"offlinewins/internal/platform/kv"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestWiredModulesShareOneStore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := config.Config{
		DataDir:           dir,
		StorageDriver:     config.DriverMemory,
		HooksPath:         filepath.Join(dir, "hooks", "hooks.yaml"),
		SessionMaxMinutes: 480,
		OnConflict:        config.ConflictReject,
	}
	clk := &stepClock{now: time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)}
	app := wire(cfg, kv.NewMemoryStore(), clk)
	ctx := context.Background()

	if _, err := app.ProfileCLI.Onboard(ctx, "Sam", 30); err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if _, err := app.SessionCLI.Start(ctx, false); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.now = clk.now.Add(45 * time.Minute)
	logged, ended, err := app.SessionCLI.End(ctx, sessiondto.Tags{MoodRating: 4}, false)
	if err != nil || !ended {
		t.Fatalf("end: ended=%v err=%v", ended, err)
	}
	if logged.DurationMinutes != 45 {
		t.Fatalf("expected 45 minutes, got %d", logged.DurationMinutes)
	}

	day, err := app.InsightsCLI.Day(ctx, "2024-02-01")
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if !day.GoalMet || day.TotalMinutes != 45 || day.Mood == nil || day.Mood.Rating != 4 {
		t.Fatalf("unexpected day summary %+v", day)
	}

	if _, err := app.ReflectionCLI.SetDayMood(ctx, "2024-02-01", 2); err != nil {
		t.Fatalf("set day mood: %v", err)
	}
	day, err = app.InsightsCLI.Day(ctx, "2024-02-01")
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if day.Mood == nil || day.Mood.Rating != 2 {
		t.Fatalf("expected override mood 2, got %+v", day.Mood)
	}

	if err := app.ProfileCLI.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	sessions, err := app.SessionCLI.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions after reset, got %d", len(sessions))
	}
}
