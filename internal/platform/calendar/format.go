package calendar

import (
	"fmt"
	"time"
)

// FormatDuration renders whole minutes as "< 1m", "45m", "2h" or "1h 5m".
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 1 {
		return "< 1m"
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// FormatElapsed renders a running timer: "1h 05m", "3m 07s" or "12s".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %02ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
