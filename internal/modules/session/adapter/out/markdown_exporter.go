package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"offlinewins/internal/modules/session/domain"
	sessionout "offlinewins/internal/modules/session/port/out"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/markdown"
	"offlinewins/internal/platform/slug"
)

// MarkdownExporter writes one note per session with YAML frontmatter under
// sessions/YYYY/MM/DD.
type MarkdownExporter struct{}

func NewMarkdownExporter() sessionout.Exporter {
	return MarkdownExporter{}
}

func (MarkdownExporter) Export(_ context.Context, dir string, sessions []domain.Session) ([]string, error) {
	paths := make([]string, 0, len(sessions))
	for _, session := range sessions {
		path, err := writeNote(dir, session)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeNote(root string, session domain.Session) (string, error) {
	start := session.StartTime
	dir := filepath.Join(root, "sessions", start.Format("2006"), start.Format("01"), start.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	label := "offline"
	if len(session.Activities) > 0 {
		label = session.Activities[0]
	} else if session.CustomActivity != nil {
		label = *session.CustomActivity
	}
	name := fmt.Sprintf("%s-%s.md", start.Format("150405"), slug.Make(label, "offline"))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"id":               session.ID,
		"date":             session.Date,
		"start_time":       session.StartTime.Format(time.RFC3339),
		"end_time":         session.EndTime.Format(time.RFC3339),
		"duration_minutes": session.DurationMinutes,
		"activities":       session.Activities,
	}
	if session.CustomActivity != nil {
		meta["custom_activity"] = *session.CustomActivity
	}
	if session.MoodRating != nil {
		meta["mood_rating"] = *session.MoodRating
	}

	body := strings.Builder{}
	fmt.Fprintf(&body, "# Offline %s\n\n", calendar.FormatDayHeader(session.Date))
	fmt.Fprintf(&body, "- Time: %s\n", calendar.FormatTimeRange(session.StartTime, session.EndTime))
	fmt.Fprintf(&body, "- Duration: %s\n", calendar.FormatDuration(session.DurationMinutes))
	if len(session.Activities) > 0 {
		body.WriteString("\n## Activities\n\n")
		for _, activity := range session.Activities {
			fmt.Fprintf(&body, "- %s\n", activity)
		}
	}
	if session.Notes != nil {
		fmt.Fprintf(&body, "\n## Notes\n\n%s\n", *session.Notes)
	}

	rendered, err := markdown.Render(meta, body.String())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, rendered, 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}
