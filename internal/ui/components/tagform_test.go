package components

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTagFormSubmitCollectsSelection(t *testing.T) {
	t.Parallel()

	form := NewTagForm([]string{"Reading", "Walking", "Cooking"})
	form.Open("9:00 AM - 10:00 AM")

	keys := []tea.KeyMsg{
		{Type: tea.KeySpace},
		{Type: tea.KeyDown},
		{Type: tea.KeyDown},
		runes("x"),
		runes("4"),
	}
	for _, k := range keys {
		form, _ = form.Update(k)
	}
	form, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if form.Visible() {
		t.Fatalf("form should close on enter")
	}
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	got, ok := cmd().(TagSubmitMsg)
	if !ok {
		t.Fatalf("expected TagSubmitMsg, got %T", cmd())
	}
	if !reflect.DeepEqual(got.Activities, []string{"Reading", "Cooking"}) {
		t.Fatalf("unexpected activities: %v", got.Activities)
	}
	if got.MoodRating != 4 {
		t.Fatalf("expected mood 4, got %d", got.MoodRating)
	}
}

func TestTagFormEscapeSkips(t *testing.T) {
	t.Parallel()

	form := NewTagForm([]string{"Reading"})
	form.Open("")
	form, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if form.Visible() {
		t.Fatalf("form should close on esc")
	}
	if _, ok := cmd().(TagSkipMsg); !ok {
		t.Fatalf("expected TagSkipMsg")
	}
}

func TestTagFormIgnoresKeysWhenHidden(t *testing.T) {
	t.Parallel()

	form := NewTagForm([]string{"Reading"})
	if _, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("hidden form should not emit commands")
	}
}

func TestTagFormCustomActivityAndNotes(t *testing.T) {
	t.Parallel()

	form := NewTagForm([]string{"Reading"})
	form.Open("")
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form, _ = form.Update(runes("Chess 3"))
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form, _ = form.Update(runes("  park  "))
	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got, ok := cmd().(TagSubmitMsg)
	if !ok {
		t.Fatalf("expected TagSubmitMsg")
	}
	if got.CustomActivity != "Chess 3" {
		t.Fatalf("expected custom activity, got %q", got.CustomActivity)
	}
	if got.Notes != "park" {
		t.Fatalf("expected trimmed notes, got %q", got.Notes)
	}
	if got.MoodRating != 0 {
		t.Fatalf("digits typed into a text field must not set the mood, got %d", got.MoodRating)
	}
	if len(got.Activities) != 0 {
		t.Fatalf("expected no activities, got %v", got.Activities)
	}
}
