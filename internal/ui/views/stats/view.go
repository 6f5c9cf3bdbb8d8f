package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	insightsdto "offlinewins/internal/modules/insights/dto"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/ui/theme"
)

// HeatmapWeeks is the number of columns in the activity heatmap.
const HeatmapWeeks = 12

type StatsPort interface {
	Stats(ctx context.Context) (insightsdto.LifetimeOutput, error)
	Heatmap(ctx context.Context, days int) ([]insightsdto.DayCell, error)
}

type LoadedMsg struct {
	Stats   insightsdto.LifetimeOutput
	Heatmap []insightsdto.DayCell
	Err     error
}

type Model struct {
	port    StatsPort
	stats   insightsdto.LifetimeOutput
	heatmap []insightsdto.DayCell
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(port StatsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := m.port.Stats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		cells, err := m.port.Heatmap(ctx, HeatmapWeeks*7)
		return LoadedMsg{Stats: stats, Heatmap: cells, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
			m.heatmap = msg.Heatmap
		}
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading stats…")
	}
	s := m.stats
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Lifetime") + "\n\n")
	row := func(label, value string) {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-16s", label)) + value + "\n")
	}
	row("total offline", fmt.Sprintf("%.1f h", s.TotalHours))
	row("sessions", humanize.Comma(int64(s.TotalSessions)))
	row("current streak", fmt.Sprintf("%d days", s.CurrentStreak))
	row("longest streak", fmt.Sprintf("%d days", s.LongestStreak))
	row("daily goal", calendar.FormatDuration(s.GoalMinutes))
	if !s.MemberSince.IsZero() {
		row("member since", humanize.Time(s.MemberSince))
	}

	sb.WriteString("\n" + theme.Title.Render(fmt.Sprintf("Last %d weeks", HeatmapWeeks)) + "\n\n")
	sb.WriteString(renderHeatmap(m.heatmap))
	sb.WriteString("\n" + theme.Muted.Render("less "))
	for _, c := range theme.Intensity {
		sb.WriteString(lipgloss.NewStyle().Background(c).Render("  ") + " ")
	}
	sb.WriteString(theme.Muted.Render(" more"))
	if m.err != nil {
		sb.WriteString("\n\n" + theme.Bad.Render(m.err.Error()))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(sb.String()))
}

// renderHeatmap lays cells out in columns of seven, oldest first.
func renderHeatmap(cells []insightsdto.DayCell) string {
	if len(cells) == 0 {
		return theme.Muted.Render("no data yet") + "\n"
	}
	rows := make([]strings.Builder, 7)
	for i, c := range cells {
		level := c.Intensity
		if level < 0 || level > 4 {
			level = 0
		}
		block := lipgloss.NewStyle().Background(theme.Intensity[level]).Render("  ")
		rows[i%7].WriteString(block + " ")
	}
	var sb strings.Builder
	for i := range rows {
		sb.WriteString(rows[i].String() + "\n")
	}
	return sb.String()
}
