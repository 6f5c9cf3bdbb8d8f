package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sessionout "offlinewins/internal/modules/session/adapter/out"
	"offlinewins/internal/modules/session/domain"
	"offlinewins/internal/platform/markdown"
)

func TestMarkdownExporterWritesFrontmatterNote(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	start := time.Date(2024, 2, 1, 9, 5, 0, 0, time.UTC)
	mood := 4
	notes := "Left the phone at home"
	session := domain.Session{
		ID:              "00000000-0000-4000-8000-000000000001",
		Date:            "2024-02-01",
		StartTime:       start,
		EndTime:         start.Add(85 * time.Minute),
		DurationMinutes: 85,
		Activities:      []string{"🚶 Walking"},
		MoodRating:      &mood,
		Notes:           &notes,
	}

	paths, err := sessionout.NewMarkdownExporter().Export(context.Background(), dir, []domain.Session{session})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := filepath.Join(dir, "sessions", "2024", "02", "01", "090500-walking.md")
	if len(paths) != 1 || paths[0] != want {
		t.Fatalf("unexpected paths %v, want %s", paths, want)
	}
	raw, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	meta := map[string]any{}
	body, err := markdown.Parse(raw, &meta)
	if err != nil {
		t.Fatalf("parse note: %v", err)
	}
	if meta["duration_minutes"] != 85 || meta["mood_rating"] != 4 {
		t.Fatalf("unexpected frontmatter %v", meta)
	}
	if !strings.Contains(body, "1h 25m") || !strings.Contains(body, notes) {
		t.Fatalf("unexpected body %q", body)
	}
}
