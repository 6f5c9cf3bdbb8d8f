package markdown_test

import (
	"strings"
	"testing"

	"offlinewins/internal/platform/markdown"
)

type note struct {
	ID       string   `yaml:"id"`
	Duration int      `yaml:"duration_minutes"`
	Tags     []string `yaml:"activities"`
}

func TestRenderThenParse(t *testing.T) {
	t.Parallel()
	raw, err := markdown.Render(note{ID: "a", Duration: 42, Tags: []string{"walking"}}, "# Walk\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(raw), "---\nid: a\n") {
		t.Fatalf("unexpected frontmatter: %s", raw)
	}
	var got note
	body, err := markdown.Parse(raw, &got)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.ID != "a" || got.Duration != 42 || len(got.Tags) != 1 {
		t.Fatalf("unexpected meta: %+v", got)
	}
	if body != "# Walk\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestParseRejectsUnterminatedFrontmatter(t *testing.T) {
	t.Parallel()
	var got note
	if _, err := markdown.Parse([]byte("---\nid: a\n"), &got); err == nil {
		t.Fatalf("expected error for missing closing separator")
	}
	body, err := markdown.Parse([]byte("plain"), &got)
	if err != nil || body != "plain" {
		t.Fatalf("plain content should pass through: %q %v", body, err)
	}
}
