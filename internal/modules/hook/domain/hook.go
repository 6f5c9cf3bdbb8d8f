package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

type EventName string

const (
	EventSessionStarted EventName = "session.started"
	EventSessionEnded   EventName = "session.ended"
	EventSessionExpired EventName = "session.expired"
	EventGoalMet        EventName = "goal.met"
)

var (
	ErrHookDisabled     = errors.New("hook is disabled")
	ErrChecksumMismatch = errors.New("hook checksum mismatch")
	ErrHookTimeout      = errors.New("hook timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest declares one hook binary in hooks.yaml.
type Manifest struct {
	Name    string      `yaml:"name"`
	Version string      `yaml:"version"`
	Binary  string      `yaml:"binary"`
	SHA256  string      `yaml:"sha256"`
	Enabled bool        `yaml:"enabled"`
	Events  []EventName `yaml:"events"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("hook name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("hook version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("hook binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("hook sha256 must be lowercase 64-char hex")
	}
	if len(m.Events) == 0 {
		return fmt.Errorf("hook events are required")
	}
	seen := map[EventName]struct{}{}
	for _, event := range m.Events {
		if err := event.Validate(); err != nil {
			return err
		}
		if _, ok := seen[event]; ok {
			return fmt.Errorf("duplicate event: %s", event)
		}
		seen[event] = struct{}{}
	}
	return nil
}

func (e EventName) Validate() error {
	switch e {
	case EventSessionStarted, EventSessionEnded, EventSessionExpired, EventGoalMet:
		return nil
	default:
		return fmt.Errorf("unknown event: %s", e)
	}
}

func (m Manifest) Subscribes(event EventName) bool {
	for _, e := range m.Events {
		if e == event {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name    string
	Version string
	Events  []EventName
}

type Event struct {
	Name            EventName
	OccurredAt      time.Time
	SessionID       string
	Date            string
	DurationMinutes int
	TotalMinutes    int
	GoalMinutes     int
}

func (e Event) Validate() error {
	if err := e.Name.Validate(); err != nil {
		return err
	}
	if e.OccurredAt.IsZero() {
		return fmt.Errorf("event time is required")
	}
	return nil
}

type Ack struct {
	Accepted bool
	Message  string
}
