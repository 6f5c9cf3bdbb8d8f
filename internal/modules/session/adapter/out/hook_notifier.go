package out

import (
	"context"

	hookdto "offlinewins/internal/modules/hook/dto"
	hookin "offlinewins/internal/modules/hook/port/in"
	insightsin "offlinewins/internal/modules/insights/port/in"
	"offlinewins/internal/modules/session/domain"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/clock"
	"offlinewins/internal/platform/logger"
)

// HookNotifier turns session lifecycle changes into hook events. Delivery
// errors are logged and swallowed.
type HookNotifier struct {
	clock    clock.Clock
	hooks    hookin.Usecase
	insights insightsin.Usecase
}

func NewHookNotifier(clock clock.Clock, hooks hookin.Usecase) *HookNotifier {
	return &HookNotifier{clock: clock, hooks: hooks}
}

// WatchGoals enables goal.met events. It is set after construction because
// insights reads sessions through the session module.
func (n *HookNotifier) WatchGoals(insights insightsin.Usecase) {
	n.insights = insights
}

func (n *HookNotifier) SessionStarted(ctx context.Context, active domain.ActiveSession) {
	n.dispatch(ctx, hookdto.Event{
		Name: hookdto.EventSessionStarted,
		Date: calendar.DateOf(active.StartTime),
	})
}

func (n *HookNotifier) SessionLogged(ctx context.Context, session domain.Session) {
	n.dispatch(ctx, sessionEvent(hookdto.EventSessionEnded, session))
	n.checkGoal(ctx, session)
}

func (n *HookNotifier) SessionExpired(ctx context.Context, session domain.Session) {
	n.dispatch(ctx, sessionEvent(hookdto.EventSessionExpired, session))
	n.checkGoal(ctx, session)
}

// checkGoal emits goal.met only for the session that crossed the goal.
func (n *HookNotifier) checkGoal(ctx context.Context, session domain.Session) {
	if n.insights == nil {
		return
	}
	summary, err := n.insights.DaySummary(ctx, session.Date)
	if err != nil {
		logger.Warn("goal check failed", "date", session.Date, "error", err)
		return
	}
	if !summary.GoalMet || summary.TotalMinutes-session.DurationMinutes >= summary.GoalMinutes {
		return
	}
	event := sessionEvent(hookdto.EventGoalMet, session)
	event.TotalMinutes = summary.TotalMinutes
	event.GoalMinutes = summary.GoalMinutes
	n.dispatch(ctx, event)
}

func (n *HookNotifier) dispatch(ctx context.Context, event hookdto.Event) {
	if n.hooks == nil {
		return
	}
	event.OccurredAt = n.clock.Now()
	results, err := n.hooks.Dispatch(ctx, event)
	if err != nil {
		logger.Warn("hook dispatch failed", "event", event.Name, "error", err)
		return
	}
	for _, r := range results {
		if r.Error != "" {
			logger.Warn("hook rejected event", "hook", r.Name, "event", event.Name, "error", r.Error)
		}
	}
}

func sessionEvent(name string, session domain.Session) hookdto.Event {
	return hookdto.Event{
		Name:            name,
		SessionID:       session.ID,
		Date:            session.Date,
		DurationMinutes: session.DurationMinutes,
	}
}
