package service

import (
	"context"
	"fmt"
	"time"

	"offlinewins/internal/modules/session/domain"
	sessionout "offlinewins/internal/modules/session/port/out"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/clock"
	apperrors "offlinewins/internal/platform/errors"
	"offlinewins/internal/platform/id"
)

type SessionService struct {
	clock      clock.Clock
	idGen      id.Generator
	store      sessionout.SessionStore
	maxMinutes int
}

func NewSessionService(clock clock.Clock, idGen id.Generator, store sessionout.SessionStore, maxMinutes int) *SessionService {
	if maxMinutes <= 0 {
		maxMinutes = domain.MaxActiveMinutes
	}
	return &SessionService{clock: clock, idGen: idGen, store: store, maxMinutes: maxMinutes}
}

func (s *SessionService) Start() domain.ActiveSession {
	return domain.ActiveSession{StartTime: s.clock.Now(), IsActive: true}
}

// Elapsed is measured against the stored start time on every call.
func (s *SessionService) Elapsed(active domain.ActiveSession) time.Duration {
	elapsed := s.clock.Now().Sub(active.StartTime)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Stub ends active now. The result carries no user tags and is not persisted.
func (s *SessionService) Stub(active domain.ActiveSession) domain.Session {
	now := s.clock.Now()
	elapsed := now.Sub(active.StartTime)
	return s.newSession(active.StartTime, now, domain.DurationMinutes(elapsed), now)
}

// Expired reports whether active ran past the cap and, if so, the session
// it turns into: exactly maxMinutes long, ending at start+maxMinutes.
func (s *SessionService) Expired(active domain.ActiveSession) (domain.Session, bool) {
	limit := time.Duration(s.maxMinutes) * time.Minute
	if s.Elapsed(active) <= limit {
		return domain.Session{}, false
	}
	now := s.clock.Now()
	return s.newSession(active.StartTime, active.StartTime.Add(limit), s.maxMinutes, now), true
}

// Complete tags stub and appends it to the store.
func (s *SessionService) Complete(ctx context.Context, stub domain.Session, tags domain.Tags) (domain.Session, error) {
	if err := checkTags(tags); err != nil {
		return domain.Session{}, err
	}
	if stub.ID == "" {
		return domain.Session{}, fmt.Errorf("%w: session stub has no id", apperrors.ErrInvalidInput)
	}
	session := stub.WithTags(tags, s.clock.Now())
	if err := session.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Append(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *SessionService) ValidateTags(tags domain.Tags) error {
	return checkTags(tags)
}

// Edit replaces the tags of a stored session.
func (s *SessionService) Edit(ctx context.Context, id string, tags domain.Tags) (domain.Session, error) {
	if err := checkTags(tags); err != nil {
		return domain.Session{}, err
	}
	now := s.clock.Now()
	return s.store.Update(ctx, id, func(session *domain.Session) {
		*session = session.WithTags(tags, now)
	})
}

func (s *SessionService) newSession(start, end time.Time, minutes int, now time.Time) domain.Session {
	return domain.Session{
		ID:              s.idGen.New(),
		Date:            calendar.DateOf(start),
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: minutes,
		Activities:      []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func checkTags(tags domain.Tags) error {
	if tags.MoodRating != 0 && !domain.ValidMood(tags.MoodRating) {
		return fmt.Errorf("%w: mood rating must be between %d and %d", apperrors.ErrInvalidInput, domain.MinMood, domain.MaxMood)
	}
	return nil
}
