package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	DefaultGoalMinutes = 60
	MinGoalMinutes     = 5
	MaxGoalMinutes     = 480
)

// GoalPresets are the quick picks offered when choosing a daily goal.
var GoalPresets = []int{30, 60, 120, 180}

type Settings struct {
	Name               *string   `json:"name"`
	DailyGoalMinutes   int       `json:"dailyGoalMinutes" validate:"gt=0"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
}

func Default(now time.Time) Settings {
	return Settings{DailyGoalMinutes: DefaultGoalMinutes, CreatedAt: now}
}

func (s Settings) DisplayName() string {
	if s.Name == nil {
		return ""
	}
	return *s.Name
}

func ClampGoal(minutes int) int {
	if minutes < MinGoalMinutes {
		return MinGoalMinutes
	}
	if minutes > MaxGoalMinutes {
		return MaxGoalMinutes
	}
	return minutes
}

// ParseGoal reads the leading integer of raw ("45", "90 min"). ok is false
// when there is none or it is not positive.
func ParseGoal(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) {
		c := rune(raw[end])
		if unicode.IsDigit(c) || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	minutes, err := strconv.Atoi(raw[:end])
	if err != nil || minutes <= 0 {
		return 0, false
	}
	return minutes, true
}
