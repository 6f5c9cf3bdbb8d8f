package dto

import "time"

// Activities is the catalogue offered when tagging a session. Free-form
// activities are accepted as well.
var Activities = []string{
	"📚 Reading",
	"🚶 Walking",
	"🏋️ Exercise",
	"🍳 Cooking",
	"👥 Socializing",
	"🧘 Meditation",
	"🌿 Nature",
	"🎨 Creating",
	"🎮 Playing",
	"✏️ Other",
}

type StartInput struct {
	// Replace discards an existing active session instead of failing.
	Replace bool
}

type ActiveSessionOutput struct {
	StartTime time.Time
	IsActive  bool
}

type SessionOutput struct {
	ID              string
	Date            string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Activities      []string
	CustomActivity  string
	MoodRating      int
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type EndOutput struct {
	// Ended is false when there was no active session to end.
	Ended bool
	Stub  SessionOutput
}

type Tags struct {
	Activities     []string
	CustomActivity string
	MoodRating     int
	Notes          string
}

type LogInput struct {
	Stub SessionOutput
	Tags Tags
}

type EditInput struct {
	ID   string
	Tags Tags
}

type ElapsedOutput struct {
	Active  bool
	Elapsed time.Duration
	Minutes int
}

type ExpiredOutput struct {
	Expired bool
	Session SessionOutput
}

type ExportOutput struct {
	Paths []string
}
