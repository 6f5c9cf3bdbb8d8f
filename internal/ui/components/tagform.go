package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offlinewins/internal/platform/mood"
	"offlinewins/internal/ui/theme"
)

// TagSubmitMsg carries the tags chosen for an ended session.
type TagSubmitMsg struct {
	Activities     []string
	CustomActivity string
	MoodRating     int
	Notes          string
}

// TagSkipMsg asks for the ended session to be saved without tags.
type TagSkipMsg struct{}

type tagField int

const (
	fieldActivities tagField = iota
	fieldCustom
	fieldNotes
)

var formStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Lavender).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 1)

// TagForm collects activities, a mood and notes after a session ends.
type TagForm struct {
	activities []string
	selected   map[int]bool
	cursor     int
	mood       int
	custom     textinput.Model
	notes      textinput.Model
	field      tagField
	visible    bool
	summary    string
	width      int
}

func NewTagForm(activities []string) TagForm {
	custom := textinput.New()
	custom.Placeholder = "something else? (optional)"
	custom.CharLimit = 60
	notes := textinput.New()
	notes.Placeholder = "notes (optional)"
	notes.CharLimit = 500
	return TagForm{activities: activities, selected: map[int]bool{}, custom: custom, notes: notes}
}

func (f TagForm) Visible() bool { return f.visible }

// Open resets the form. summary is shown above the fields, e.g. the
// session's time range and duration.
func (f *TagForm) Open(summary string) {
	f.visible = true
	f.summary = summary
	f.selected = map[int]bool{}
	f.cursor = 0
	f.mood = 0
	f.field = fieldActivities
	f.custom.SetValue("")
	f.custom.Blur()
	f.notes.SetValue("")
	f.notes.Blur()
}

func (f *TagForm) SetWidth(w int) { f.width = w }

func (f TagForm) Update(msg tea.Msg) (TagForm, tea.Cmd) {
	if !f.visible {
		return f, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}
	switch key.String() {
	case "esc":
		f.visible = false
		return f, func() tea.Msg { return TagSkipMsg{} }
	case "enter":
		f.visible = false
		submit := TagSubmitMsg{
			CustomActivity: strings.TrimSpace(f.custom.Value()),
			MoodRating:     f.mood,
			Notes:          strings.TrimSpace(f.notes.Value()),
		}
		for i, a := range f.activities {
			if f.selected[i] {
				submit.Activities = append(submit.Activities, a)
			}
		}
		return f, func() tea.Msg { return submit }
	case "tab":
		f.custom.Blur()
		f.notes.Blur()
		switch f.field {
		case fieldActivities:
			f.field = fieldCustom
			return f, f.custom.Focus()
		case fieldCustom:
			f.field = fieldNotes
			return f, f.notes.Focus()
		default:
			f.field = fieldActivities
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.field {
	case fieldCustom:
		f.custom, cmd = f.custom.Update(msg)
		return f, cmd
	case fieldNotes:
		f.notes, cmd = f.notes.Update(msg)
		return f, cmd
	}
	switch key.String() {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		if f.cursor < len(f.activities)-1 {
			f.cursor++
		}
	case " ", "x":
		f.selected[f.cursor] = !f.selected[f.cursor]
	case "0":
		f.mood = 0
	case "1", "2", "3", "4", "5":
		f.mood = int(key.String()[0] - '0')
	}
	return f, nil
}

func (f TagForm) View() string {
	if !f.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("How was it?") + "\n")
	if f.summary != "" {
		sb.WriteString(theme.Muted.Render(f.summary) + "\n")
	}
	sb.WriteString("\n")
	for i, a := range f.activities {
		box := "[ ]"
		if f.selected[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, a)
		if i == f.cursor && f.field == fieldActivities {
			line = theme.Hot.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(f.custom.View() + "\n")
	sb.WriteString("\nmood: ")
	for r := 1; r <= 5; r++ {
		d := mood.For(r)
		cell := fmt.Sprintf(" %d %s ", r, d.Emoji)
		if r == f.mood {
			cell = theme.MoodColor(d.Color, "["+strings.TrimSpace(cell)+"]")
		}
		sb.WriteString(cell)
	}
	if f.mood != 0 {
		sb.WriteString("  " + mood.For(f.mood).Label)
	}
	sb.WriteString("\n" + f.notes.View() + "\n\n")
	sb.WriteString(theme.Muted.Render("space: toggle  1-5: mood  tab: next field  enter: save  esc: skip"))

	w := f.width
	if w < 20 {
		w = 64
	}
	return formStyle.Width(w - 2).Render(sb.String())
}
