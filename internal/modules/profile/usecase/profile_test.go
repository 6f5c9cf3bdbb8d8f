package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	profileout "offlinewins/internal/modules/profile/adapter/out"
	profiledto "offlinewins/internal/modules/profile/dto"
	profilein "offlinewins/internal/modules/profile/port/in"
	"offlinewins/internal/modules/profile/service"
	"offlinewins/internal/modules/profile/usecase"
	apperrors "offlinewins/internal/platform/errors"
	"offlinewins/internal/platform/kv"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

func newUsecase(t *testing.T) (profilein.Usecase, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	clk := fakeClock{now: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)}
	svc := service.NewProfileService(clk, profileout.NewKVSettingsStore(store), profileout.NewKVWiper(store))
	return usecase.NewInteractor(svc), store
}

func TestGetReturnsDefaultsWhenAbsent(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)

	settings, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.DailyGoalMinutes != 60 || settings.OnboardingComplete || settings.Name != "" {
		t.Fatalf("unexpected defaults: %+v", settings)
	}
}

func TestOnboardClampsGoalAndRequiresName(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.Onboard(ctx, profiledto.OnboardInput{Name: "   ", GoalMinutes: 60}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	cases := []struct {
		goal int
		want int
	}{
		{1, 5},
		{90, 90},
		{600, 480},
	}
	for _, tc := range cases {
		out, err := uc.Onboard(ctx, profiledto.OnboardInput{Name: " Sam ", GoalMinutes: tc.goal})
		if err != nil {
			t.Fatalf("onboard: %v", err)
		}
		if out.DailyGoalMinutes != tc.want {
			t.Fatalf("goal %d: expected %d, got %d", tc.goal, tc.want, out.DailyGoalMinutes)
		}
		if out.Name != "Sam" || !out.OnboardingComplete {
			t.Fatalf("unexpected settings: %+v", out)
		}
	}
}

func TestSetGoalIgnoresInvalidInput(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.Onboard(ctx, profiledto.OnboardInput{Name: "Sam", GoalMinutes: 60}); err != nil {
		t.Fatalf("onboard: %v", err)
	}
	for _, raw := range []string{"", "abc", "0", "-30"} {
		out, err := uc.SetGoal(ctx, raw)
		if err != nil {
			t.Fatalf("set goal %q: %v", raw, err)
		}
		if out.Changed || out.Settings.DailyGoalMinutes != 60 {
			t.Fatalf("input %q should be ignored: %+v", raw, out)
		}
	}
	out, err := uc.SetGoal(ctx, "45min")
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if !out.Changed || out.Settings.DailyGoalMinutes != 45 {
		t.Fatalf("expected goal 45, got %+v", out)
	}
	settings, _ := uc.Get(ctx)
	if settings.DailyGoalMinutes != 45 {
		t.Fatalf("goal not persisted: %+v", settings)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()
	uc, store := newUsecase(t)
	ctx := context.Background()

	if _, err := uc.Onboard(ctx, profiledto.OnboardInput{Name: "Sam", GoalMinutes: 120}); err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if err := store.Set(ctx, kv.KeySessions, []byte("[]")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := uc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	settings, err := uc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.OnboardingComplete || settings.DailyGoalMinutes != 60 {
		t.Fatalf("expected defaults after reset: %+v", settings)
	}
	if _, err := store.Get(ctx, kv.KeySessions); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected sessions key to be deleted, got %v", err)
	}
}
