package out

import (
	"context"

	reflectionout "offlinewins/internal/modules/reflection/port/out"
	sessionin "offlinewins/internal/modules/session/port/in"
)

type SessionModuleSource struct {
	sessions sessionin.Usecase
}

func NewSessionModuleSource(sessions sessionin.Usecase) reflectionout.SessionSource {
	return SessionModuleSource{sessions: sessions}
}

func (s SessionModuleSource) MoodsOn(ctx context.Context, date string) ([]int, error) {
	sessions, err := s.sessions.List(ctx, date)
	if err != nil {
		return nil, err
	}
	moods := make([]int, 0, len(sessions))
	for _, session := range sessions {
		moods = append(moods, session.MoodRating)
	}
	return moods, nil
}
