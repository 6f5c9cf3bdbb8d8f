package out

import (
	"context"

	"offlinewins/internal/modules/insights/domain"
	insightsout "offlinewins/internal/modules/insights/port/out"
	profilein "offlinewins/internal/modules/profile/port/in"
	reflectionin "offlinewins/internal/modules/reflection/port/in"
	sessionin "offlinewins/internal/modules/session/port/in"
)

type SessionModuleSource struct {
	sessions sessionin.Usecase
}

func NewSessionModuleSource(sessions sessionin.Usecase) insightsout.SessionSource {
	return SessionModuleSource{sessions: sessions}
}

func (s SessionModuleSource) Entries(ctx context.Context) ([]domain.Entry, error) {
	sessions, err := s.sessions.List(ctx, "")
	if err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(sessions))
	for _, session := range sessions {
		entries = append(entries, domain.Entry{
			Date:            session.Date,
			DurationMinutes: session.DurationMinutes,
			MoodRating:      session.MoodRating,
		})
	}
	return entries, nil
}

type ProfileModuleSource struct {
	profile profilein.Usecase
}

func NewProfileModuleSource(profile profilein.Usecase) insightsout.GoalSource {
	return ProfileModuleSource{profile: profile}
}

func (s ProfileModuleSource) Goal(ctx context.Context) (domain.Goal, error) {
	settings, err := s.profile.Get(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	return domain.Goal{Minutes: settings.DailyGoalMinutes, MemberSince: settings.CreatedAt}, nil
}

type ReflectionModuleSource struct {
	reflection reflectionin.Usecase
}

func NewReflectionModuleSource(reflection reflectionin.Usecase) insightsout.OverrideSource {
	return ReflectionModuleSource{reflection: reflection}
}

func (s ReflectionModuleSource) Overrides(ctx context.Context) (map[string]int, error) {
	overrides, err := s.reflection.ListOverrides(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(overrides))
	for _, o := range overrides {
		out[o.Date] = o.OverrideMood
	}
	return out, nil
}
