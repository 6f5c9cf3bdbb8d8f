package dto

import "time"

type SettingsOutput struct {
	Name               string
	DailyGoalMinutes   int
	OnboardingComplete bool
	CreatedAt          time.Time
}

type OnboardInput struct {
	Name        string
	GoalMinutes int
}

type SetGoalOutput struct {
	Settings SettingsOutput
	// Changed is false when the input was not a usable goal.
	Changed bool
}
