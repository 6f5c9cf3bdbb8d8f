package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "offlinewins/internal/modules/insights/dto"
	cal "offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/mood"
	"offlinewins/internal/ui/theme"
)

type CalendarPort interface {
	Month(ctx context.Context, year, month int) (insightsdto.MonthOutput, error)
	Day(ctx context.Context, date string) (insightsdto.DaySummaryOutput, error)
}

type MonthLoadedMsg struct {
	Month insightsdto.MonthOutput
	Err   error
}

type DayLoadedMsg struct {
	Day insightsdto.DaySummaryOutput
	Err error
}

// OpenDayMsg asks the app to show the sessions of Date.
type OpenDayMsg struct{ Date string }

var weekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

type Model struct {
	port     CalendarPort
	year     int
	month    int // 0-based
	selected int // day of month, 1-based
	data     insightsdto.MonthOutput
	day      insightsdto.DaySummaryOutput
	err      error
	width    int
	height   int
}

func New(port CalendarPort, today time.Time) Model {
	return Model{port: port, year: today.Year(), month: int(today.Month()) - 1, selected: today.Day()}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload fetches the displayed month and the selected day.
func (m Model) Reload() tea.Cmd {
	return tea.Batch(m.loadMonthCmd(), m.loadDayCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case MonthLoadedMsg:
		m.err = msg.Err
		if msg.Err == nil && msg.Month.Year == m.year && msg.Month.Month == m.month {
			m.data = msg.Month
		}
	case DayLoadedMsg:
		if msg.Err == nil {
			m.day = msg.Day
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "[", "pgup":
			m.shiftMonth(-1)
			return m, m.Reload()
		case "]", "pgdown":
			m.shiftMonth(1)
			return m, m.Reload()
		case "left", "h":
			return m, m.moveDay(-1)
		case "right", "l":
			return m, m.moveDay(1)
		case "up", "k":
			return m, m.moveDay(-7)
		case "down", "j":
			return m, m.moveDay(7)
		case "enter":
			date := cal.FormatDateString(m.year, m.month, m.selected)
			return m, func() tea.Msg { return OpenDayMsg{Date: date} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(cal.FormatMonthYear(m.year, m.month)) + "\n\n")
	for _, w := range weekdays {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf(" %-5s", w)))
	}
	sb.WriteString("\n")

	for i, cell := range m.data.Cells {
		sb.WriteString(m.renderCell(cell))
		if i%7 == 6 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.renderDay())
	sb.WriteString("\n" + theme.Muted.Render("←→↑↓: select  [ / ]: month  enter: sessions"))
	if m.err != nil {
		sb.WriteString("\n" + theme.Bad.Render(m.err.Error()))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(sb.String()))
}

func (m Model) renderCell(cell insightsdto.DayCell) string {
	if cell.Day == 0 {
		return strings.Repeat(" ", 6)
	}
	mark := "  "
	if cell.Mood != 0 {
		mark = mood.For(cell.Mood).Emoji
	} else if cell.GoalMet {
		mark = "✓ "
	}
	style := lipgloss.NewStyle().Background(theme.Intensity[clampLevel(cell.Intensity)]).Foreground(theme.Text)
	if cell.IsToday {
		style = style.Bold(true).Underline(true)
	}
	if cell.Day == m.selected {
		style = style.Foreground(theme.Peach).Bold(true)
	}
	return style.Render(fmt.Sprintf("%2d %s", cell.Day, mark)) + " "
}

func (m Model) renderDay() string {
	d := m.day
	if d.Date == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Hot.Render(cal.FormatDayHeader(d.Date)) + "\n")
	sb.WriteString(fmt.Sprintf("%s of %s across %d sessions",
		cal.FormatDuration(d.TotalMinutes), cal.FormatDuration(d.GoalMinutes), d.SessionCount))
	if d.GoalMet {
		sb.WriteString("  " + theme.Good.Render("goal met"))
	}
	if d.Mood != nil {
		sb.WriteString("  " + theme.MoodColor(d.Mood.Color, d.Mood.Emoji+" "+d.Mood.Label))
	}
	return sb.String()
}

func (m *Model) shiftMonth(delta int) {
	t := time.Date(m.year, time.Month(m.month+1)+time.Month(delta), 1, 0, 0, 0, 0, time.Local)
	m.year = t.Year()
	m.month = int(t.Month()) - 1
	last := time.Date(m.year, time.Month(m.month+2), 0, 0, 0, 0, 0, time.Local).Day()
	if m.selected > last {
		m.selected = last
	}
}

func (m *Model) moveDay(delta int) tea.Cmd {
	t := time.Date(m.year, time.Month(m.month+1), m.selected+delta, 0, 0, 0, 0, time.Local)
	monthChanged := t.Year() != m.year || int(t.Month())-1 != m.month
	m.year = t.Year()
	m.month = int(t.Month()) - 1
	m.selected = t.Day()
	if monthChanged {
		return m.Reload()
	}
	return m.loadDayCmd()
}

func (m Model) loadMonthCmd() tea.Cmd {
	year, month := m.year, m.month
	return func() tea.Msg {
		out, err := m.port.Month(context.Background(), year, month)
		return MonthLoadedMsg{Month: out, Err: err}
	}
}

func (m Model) loadDayCmd() tea.Cmd {
	date := cal.FormatDateString(m.year, m.month, m.selected)
	return func() tea.Msg {
		out, err := m.port.Day(context.Background(), date)
		return DayLoadedMsg{Day: out, Err: err}
	}
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 4 {
		return 4
	}
	return level
}
