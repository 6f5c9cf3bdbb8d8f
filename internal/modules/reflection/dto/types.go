package dto

import "time"

type OverrideOutput struct {
	Date         string
	OverrideMood int
	UpdatedAt    time.Time
}

type PromptOutput struct {
	Show         bool
	Date         string
	SessionCount int
	Mood         int
}
