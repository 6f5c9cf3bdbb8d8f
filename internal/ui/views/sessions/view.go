package sessions

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "offlinewins/internal/modules/session/dto"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/platform/mood"
	"offlinewins/internal/ui/theme"
)

type SessionsPort interface {
	List(ctx context.Context, date string) ([]sessiondto.SessionOutput, error)
	Delete(ctx context.Context, id string) error
}

type SessionsLoadedMsg struct {
	Date     string
	Sessions []sessiondto.SessionOutput
	Err      error
}

type DeletedMsg struct {
	ID  string
	Err error
}

type sessionItem struct {
	session sessiondto.SessionOutput
}

func (i sessionItem) Title() string {
	return calendar.FormatTimeRange(i.session.StartTime, i.session.EndTime)
}

func (i sessionItem) Description() string {
	desc := calendar.FormatDuration(i.session.DurationMinutes)
	if i.session.MoodRating != 0 {
		desc += "  " + mood.For(i.session.MoodRating).Emoji
	}
	if len(i.session.Activities) > 0 {
		desc += "  " + strings.Join(i.session.Activities, ", ")
	}
	return desc
}

func (i sessionItem) FilterValue() string {
	return strings.Join(append([]string{i.session.Notes, i.session.CustomActivity}, i.session.Activities...), " ")
}

type Model struct {
	port    SessionsPort
	date    string
	list    list.Model
	detail  viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port SessionsPort, today string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	m := Model{port: port, date: today, list: l, detail: vp, spinner: sp, loading: true}
	m.setTitle()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Load(m.date), m.spinner.Tick)
}

// Load switches the view to date and fetches its sessions.
func (m Model) Load(date string) tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.List(context.Background(), date)
		return SessionsLoadedMsg{Date: date, Sessions: sessions, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SessionsLoadedMsg:
		m.loading = false
		m.date = msg.Date
		m.setTitle()
		if msg.Err != nil {
			m.list.Title = calendar.FormatDayHeader(m.date) + ": " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())

	case DeletedMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.Load(m.date))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if !m.Filtering() {
			switch msg.String() {
			case "[":
				return m, m.shift(-1)
			case "]":
				return m, m.shift(1)
			case "x":
				if item, ok := m.list.SelectedItem().(sessionItem); ok {
					return m, m.deleteCmd(item.session.ID)
				}
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.detail.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading sessions…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Date() string { return m.date }

func (m *Model) setTitle() {
	m.list.Title = calendar.FormatDayHeader(m.date)
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) shift(days int) tea.Cmd {
	date, err := calendar.AddDays(m.date, days)
	if err != nil {
		return nil
	}
	return m.Load(date)
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(sessionItem)
	if !ok {
		return theme.Muted.Render("No sessions on this day.\n\n[ / ]: previous / next day")
	}
	s := item.session
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(calendar.FormatTimeRange(s.StartTime, s.EndTime)) + "\n\n")
	sb.WriteString(theme.Muted.Render("duration: ") + calendar.FormatDuration(s.DurationMinutes) + "\n")
	if s.MoodRating != 0 {
		d := mood.For(s.MoodRating)
		sb.WriteString(theme.Muted.Render("mood:     ") + theme.MoodColor(d.Color, d.Emoji+" "+d.Label) + "\n")
	}
	if len(s.Activities) > 0 {
		sb.WriteString(theme.Muted.Render("did:      ") + strings.Join(s.Activities, ", ") + "\n")
	}
	if s.CustomActivity != "" {
		sb.WriteString(theme.Muted.Render("also:     ") + s.CustomActivity + "\n")
	}
	if s.Notes != "" {
		sb.WriteString("\n" + s.Notes + "\n")
	}
	sb.WriteString(fmt.Sprintf("\n%s%s\n", theme.Muted.Render("id: "), s.ID))
	sb.WriteString("\n" + theme.Muted.Render("[ / ]: previous / next day  x: delete"))
	return sb.String()
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return DeletedMsg{ID: id, Err: m.port.Delete(context.Background(), id)}
	}
}
