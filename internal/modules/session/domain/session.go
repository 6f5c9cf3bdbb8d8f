package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxActiveMinutes caps an active session that was never ended.
	MaxActiveMinutes = 480
	MinMood          = 1
	MaxMood          = 5
)

var validate = validator.New()

type ActiveSession struct {
	StartTime time.Time `json:"startTime"`
	IsActive  bool      `json:"isActive"`
}

type Session struct {
	ID              string    `json:"id" validate:"required,uuid"`
	Date            string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       time.Time `json:"startTime" validate:"required"`
	EndTime         time.Time `json:"endTime" validate:"required,gtefield=StartTime"`
	DurationMinutes int       `json:"durationMinutes" validate:"min=1"`
	Activities      []string  `json:"activities"`
	CustomActivity  *string   `json:"customActivity"`
	MoodRating      *int      `json:"moodRating" validate:"omitempty,min=1,max=5"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Tags are the user-entered fields of a session.
type Tags struct {
	Activities     []string
	CustomActivity string
	MoodRating     int
	Notes          string
}

func (s Session) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid session: %w", err)
	}
	return nil
}

// WithTags returns a copy of s carrying tags. Blank strings and a zero mood
// are stored as null.
func (s Session) WithTags(tags Tags, now time.Time) Session {
	activities := make([]string, 0, len(tags.Activities))
	seen := map[string]struct{}{}
	for _, a := range tags.Activities {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		activities = append(activities, a)
	}
	s.Activities = activities
	s.CustomActivity = optionalString(tags.CustomActivity)
	s.Notes = optionalString(tags.Notes)
	s.MoodRating = nil
	if tags.MoodRating != 0 {
		mood := tags.MoodRating
		s.MoodRating = &mood
	}
	s.UpdatedAt = now
	return s
}

// DurationMinutes rounds elapsed to the nearest minute with a floor of one.
func DurationMinutes(elapsed time.Duration) int {
	minutes := int(math.Round(elapsed.Minutes()))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func ValidMood(rating int) bool {
	return rating >= MinMood && rating <= MaxMood
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
