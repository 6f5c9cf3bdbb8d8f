package dto

import "time"

const (
	EventSessionStarted = "session.started"
	EventSessionEnded   = "session.ended"
	EventSessionExpired = "session.expired"
	EventGoalMet        = "goal.met"
)

type HookInfo struct {
	Name    string
	Version string
	Enabled bool
	Binary  string
	Events  []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

type Event struct {
	Name            string
	OccurredAt      time.Time
	SessionID       string
	Date            string
	DurationMinutes int
	TotalMinutes    int
	GoalMinutes     int
}

type DispatchResult struct {
	Name      string
	Delivered bool
	Message   string
	Error     string
}
