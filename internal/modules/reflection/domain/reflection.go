package domain

import "time"

// PromptMinSessions is how many sessions a day needs before it is worth
// reflecting on.
const PromptMinSessions = 2

// DayOverride is a user-chosen mood for a whole day. It takes precedence
// over the moods of that day's sessions.
type DayOverride struct {
	Date         string    `json:"date" validate:"required,datetime=2006-01-02"`
	OverrideMood int       `json:"overrideMood" validate:"min=1,max=5"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Prompt struct {
	Date         string
	SessionCount int
	// Mood is the day's current mood, 0 when none.
	Mood int
}

func ShouldPrompt(sessionCount int, dismissed bool) bool {
	return sessionCount >= PromptMinSessions && !dismissed
}
