package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"offlinewins/internal/platform/clock"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func execute(clk clock.Clock, dataDir string, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmdWithClock(clk)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data-dir", dataDir}, args...))
	err := root.Execute()
	return out.String(), err
}

func run(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	return runAt(t, clock.SystemClock{}, dataDir, args...)
}

func runAt(t *testing.T, clk clock.Clock, dataDir string, args ...string) string {
	t.Helper()
	out, err := execute(clk, dataDir, args...)
	if err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func TestCLIOnboardGoalAndSessionFlow(t *testing.T) {
	dataDir := t.TempDir()

	if out := run(t, dataDir, "onboard", "--name", "Sam", "--goal", "1000"); !strings.Contains(out, "8h") {
		t.Fatalf("expected goal clamped to 8h, got %q", out)
	}
	if out := run(t, dataDir, "settings", "goal", "abc"); !strings.Contains(out, "not a valid goal") {
		t.Fatalf("expected invalid goal notice, got %q", out)
	}
	if out := run(t, dataDir, "settings", "goal", "45"); !strings.Contains(out, "45m") {
		t.Fatalf("expected 45m goal, got %q", out)
	}
	if out := run(t, dataDir, "session", "end"); !strings.Contains(out, "No session is running") {
		t.Fatalf("expected nothing to end, got %q", out)
	}
	run(t, dataDir, "session", "start")
	if out := run(t, dataDir, "session", "status"); !strings.Contains(out, "offline for") {
		t.Fatalf("expected running status, got %q", out)
	}
	if out := run(t, dataDir, "session", "end", "--mood", "5", "--activity", "🚶 Walking"); !strings.Contains(out, "Logged 1m") {
		t.Fatalf("expected a one minute session, got %q", out)
	}
	if out := run(t, dataDir, "session", "list"); !strings.Contains(out, "🚶 Walking") {
		t.Fatalf("expected logged session in list, got %q", out)
	}
	if out := run(t, dataDir, "stats"); !strings.Contains(out, "1 ") {
		t.Fatalf("expected one session in stats, got %q", out)
	}
}

func TestCLIStartRequiresOnboarding(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--data-dir", t.TempDir(), "session", "start"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "onboard") {
		t.Fatalf("expected onboarding error, got %v", err)
	}
}

func TestCLIResetNeedsConfirmation(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--data-dir", t.TempDir(), "reset"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected reset without --yes to fail")
	}
}

func TestCLIEndWithInvalidMoodKeepsSessionRunning(t *testing.T) {
	dataDir := t.TempDir()
	clk := &manualClock{now: time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)}

	runAt(t, clk, dataDir, "onboard", "--name", "Sam")
	runAt(t, clk, dataDir, "session", "start")
	clk.now = clk.now.Add(30 * time.Minute)

	if _, err := execute(clk, dataDir, "session", "end", "--mood", "9"); err == nil {
		t.Fatalf("expected mood 9 to be rejected")
	}
	if out := runAt(t, clk, dataDir, "session", "status"); !strings.Contains(out, "offline for") {
		t.Fatalf("expected the session to keep running, got %q", out)
	}
	if out := runAt(t, clk, dataDir, "session", "end", "--mood", "4"); !strings.Contains(out, "Logged 30m") {
		t.Fatalf("expected the retry to log 30m, got %q", out)
	}
}

func TestCLIUsesInjectedClockForToday(t *testing.T) {
	dataDir := t.TempDir()
	clk := &manualClock{now: time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)}

	runAt(t, clk, dataDir, "onboard", "--name", "Sam")
	for i := 0; i < 2; i++ {
		runAt(t, clk, dataDir, "session", "start")
		clk.now = clk.now.Add(20 * time.Minute)
		runAt(t, clk, dataDir, "session", "end")
	}
	if out := runAt(t, clk, dataDir, "session", "list"); !strings.Contains(out, "2024-02-01") {
		t.Fatalf("expected sessions listed for the clock's day, got %q", out)
	}
	if out := runAt(t, clk, dataDir, "calendar"); !strings.Contains(out, "February 2024") {
		t.Fatalf("expected the clock's month, got %q", out)
	}

	clk.now = time.Date(2024, 2, 2, 8, 0, 0, 0, time.Local)
	out := runAt(t, clk, dataDir, "reflect")
	if !strings.Contains(out, "You went offline 2 times.") {
		t.Fatalf("expected a prompt for yesterday, got %q", out)
	}
	if strings.Contains(out, "Overall it felt") {
		t.Fatalf("untagged sessions should not report a mood, got %q", out)
	}
}
