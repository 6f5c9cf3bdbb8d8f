package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "offlinewins/internal/modules/insights/dto"
	profiledto "offlinewins/internal/modules/profile/dto"
	reflectiondto "offlinewins/internal/modules/reflection/dto"
	sessiondto "offlinewins/internal/modules/session/dto"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/mood"
	"offlinewins/internal/ui/theme"
)

type HomePort interface {
	Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error)
	Stats(ctx context.Context) (insightsdto.LifetimeOutput, error)
	Settings(ctx context.Context) (profiledto.SettingsOutput, error)
	Prompt(ctx context.Context) (reflectiondto.PromptOutput, error)
}

// TickMsg drives the live timer. It is scheduled once per second while the
// program runs.
type TickMsg time.Time

type ElapsedMsg struct {
	Elapsed sessiondto.ElapsedOutput
	Err     error
}

type LoadedMsg struct {
	Stats    insightsdto.LifetimeOutput
	Settings profiledto.SettingsOutput
	Prompt   reflectiondto.PromptOutput
	Err      error
}

type Model struct {
	port     HomePort
	elapsed  sessiondto.ElapsedOutput
	stats    insightsdto.LifetimeOutput
	settings profiledto.SettingsOutput
	prompt   reflectiondto.PromptOutput
	bar      progress.Model
	err      error
	width    int
	height   int
}

func New(port HomePort) Model {
	bar := progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green)))
	return Model{port: port, bar: bar}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.elapsedCmd(), Tick())
}

// Tick schedules the next TickMsg.
func Tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Refresh reloads stats, settings and the reflection prompt.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := m.port.Stats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		settings, err := m.port.Settings(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		prompt, err := m.port.Prompt(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Stats: stats, Settings: settings, Prompt: prompt}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(m.width-8, 60))
	case TickMsg:
		return m, tea.Batch(m.elapsedCmd(), Tick())
	case ElapsedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.elapsed = msg.Elapsed
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
			m.settings = msg.Settings
			m.prompt = msg.Prompt
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	name := m.settings.Name
	if name == "" {
		name = "friend"
	}
	sb.WriteString(theme.Title.Render("Hi "+name) + "\n\n")

	if m.elapsed.Active {
		sb.WriteString(theme.Hot.Render("● offline  "+calendar.FormatElapsed(m.elapsed.Elapsed)) + "\n")
		sb.WriteString(theme.Muted.Render("e: end session") + "\n\n")
	} else {
		sb.WriteString(theme.Muted.Render("Not offline right now.  s: start session") + "\n\n")
	}

	goal := m.stats.GoalMinutes
	sb.WriteString(fmt.Sprintf("Today  %s / %s\n",
		calendar.FormatDuration(m.stats.TodayMinutes), calendar.FormatDuration(goal)))
	sb.WriteString(m.bar.ViewAs(m.stats.TodayProgress) + "\n")
	if m.stats.TodayGoalMet {
		sb.WriteString(theme.Good.Render("Goal met!") + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %d days   %s %d days\n",
		theme.Muted.Render("streak"), m.stats.CurrentStreak,
		theme.Muted.Render("best"), m.stats.LongestStreak))

	if m.prompt.Show {
		d := mood.For(m.prompt.Mood)
		sb.WriteString("\n" + theme.Title.Render("Yesterday") + "\n")
		sb.WriteString(fmt.Sprintf("%d sessions, felt %s %s\n", m.prompt.SessionCount, d.Emoji, d.Label))
		sb.WriteString(theme.Muted.Render(":reflect:keep  :reflect:change <1-5>  :reflect:dismiss") + "\n")
	}
	if m.err != nil {
		sb.WriteString("\n" + theme.Bad.Render(m.err.Error()) + "\n")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(sb.String()))
}

// Active reports whether a session is running as of the last tick.
func (m Model) Active() bool { return m.elapsed.Active }

// PromptDate is the date the reflection prompt is about, or "" when hidden.
func (m Model) PromptDate() string {
	if !m.prompt.Show {
		return ""
	}
	return m.prompt.Date
}

func (m Model) elapsedCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Elapsed(context.Background())
		return ElapsedMsg{Elapsed: out, Err: err}
	}
}
