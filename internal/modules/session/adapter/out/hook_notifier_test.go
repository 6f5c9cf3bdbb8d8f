package out_test

import (
	"context"
	"testing"
	"time"

	hookdto "offlinewins/internal/modules/hook/dto"
	insightsdto "offlinewins/internal/modules/insights/dto"
	insightsin "offlinewins/internal/modules/insights/port/in"
	sessionout "offlinewins/internal/modules/session/adapter/out"
	"offlinewins/internal/modules/session/domain"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordingHooks struct {
	events []hookdto.Event
}

func (r *recordingHooks) List(context.Context) ([]hookdto.HookInfo, error)       { return nil, nil }
func (r *recordingHooks) Doctor(context.Context) ([]hookdto.DoctorResult, error) { return nil, nil }
func (r *recordingHooks) Dispatch(_ context.Context, event hookdto.Event) ([]hookdto.DispatchResult, error) {
	r.events = append(r.events, event)
	return nil, nil
}

type summaryInsights struct {
	insightsin.Usecase
	summary insightsdto.DaySummaryOutput
}

func (s summaryInsights) DaySummary(context.Context, string) (insightsdto.DaySummaryOutput, error) {
	return s.summary, nil
}

func TestHookNotifierEmitsGoalMetOnlyWhenCrossing(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	session := domain.Session{ID: "s1", Date: "2024-02-01", DurationMinutes: 30}

	cases := []struct {
		name    string
		total   int
		goalMet bool
		want    []string
	}{
		{name: "below goal", total: 40, goalMet: false, want: []string{hookdto.EventSessionEnded}},
		{name: "crossed goal", total: 70, goalMet: true, want: []string{hookdto.EventSessionEnded, hookdto.EventGoalMet}},
		{name: "already met", total: 95, goalMet: true, want: []string{hookdto.EventSessionEnded}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hooks := &recordingHooks{}
			notifier := sessionout.NewHookNotifier(fixedClock{now: now}, hooks)
			notifier.WatchGoals(summaryInsights{summary: insightsdto.DaySummaryOutput{
				Date:         "2024-02-01",
				TotalMinutes: tc.total,
				GoalMinutes:  60,
				GoalMet:      tc.goalMet,
			}})
			notifier.SessionLogged(context.Background(), session)

			if len(hooks.events) != len(tc.want) {
				t.Fatalf("expected events %v, got %+v", tc.want, hooks.events)
			}
			for i, name := range tc.want {
				if hooks.events[i].Name != name {
					t.Fatalf("event %d: expected %s, got %s", i, name, hooks.events[i].Name)
				}
				if !hooks.events[i].OccurredAt.Equal(now) {
					t.Fatalf("unexpected event time %v", hooks.events[i].OccurredAt)
				}
			}
		})
	}
}

func TestHookNotifierStartedUsesLocalDate(t *testing.T) {
	t.Parallel()
	hooks := &recordingHooks{}
	notifier := sessionout.NewHookNotifier(fixedClock{now: time.Now()}, hooks)
	start := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("X", -5*3600))
	notifier.SessionStarted(context.Background(), domain.ActiveSession{StartTime: start, IsActive: true})
	if len(hooks.events) != 1 || hooks.events[0].Date != "2024-03-09" {
		t.Fatalf("unexpected events %+v", hooks.events)
	}
}
