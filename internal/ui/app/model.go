package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	hookdto "offlinewins/internal/modules/hook/dto"
	insightsdto "offlinewins/internal/modules/insights/dto"
	profiledto "offlinewins/internal/modules/profile/dto"
	reflectiondto "offlinewins/internal/modules/reflection/dto"
	sessiondto "offlinewins/internal/modules/session/dto"
	"offlinewins/internal/platform/calendar"
	"offlinewins/internal/ui/components"
	"offlinewins/internal/ui/theme"
	calendarview "offlinewins/internal/ui/views/calendar"
	homeview "offlinewins/internal/ui/views/home"
	hooksview "offlinewins/internal/ui/views/hooks"
	sessionsview "offlinewins/internal/ui/views/sessions"
	statsview "offlinewins/internal/ui/views/stats"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	Start(ctx context.Context, replace bool) (sessiondto.ActiveSessionOutput, error)
	Stop(ctx context.Context) (sessiondto.EndOutput, error)
	Log(ctx context.Context, stub sessiondto.SessionOutput, tags sessiondto.Tags) (sessiondto.SessionOutput, error)
	Skip(ctx context.Context, stub sessiondto.SessionOutput) (sessiondto.SessionOutput, error)
	Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error)
	List(ctx context.Context, date string) ([]sessiondto.SessionOutput, error)
	Delete(ctx context.Context, id string) error
	RecoverExpired(ctx context.Context) (sessiondto.ExpiredOutput, error)
}

type profilePort interface {
	Get(ctx context.Context) (profiledto.SettingsOutput, error)
	SetGoal(ctx context.Context, raw string) (profiledto.SetGoalOutput, error)
	SetName(ctx context.Context, name string) (profiledto.SettingsOutput, error)
}

type insightsPort interface {
	Stats(ctx context.Context) (insightsdto.LifetimeOutput, error)
	Day(ctx context.Context, date string) (insightsdto.DaySummaryOutput, error)
	Month(ctx context.Context, year, month int) (insightsdto.MonthOutput, error)
	Heatmap(ctx context.Context, days int) ([]insightsdto.DayCell, error)
}

type reflectionPort interface {
	SetDayMood(ctx context.Context, date string, mood int) (reflectiondto.OverrideOutput, error)
	Prompt(ctx context.Context, today string) (reflectiondto.PromptOutput, error)
	Keep(ctx context.Context, date string) error
	Change(ctx context.Context, date string, mood int) error
	Dismiss(ctx context.Context, date string) error
}

type hookPort interface {
	List(ctx context.Context) ([]hookdto.HookInfo, error)
	Doctor(ctx context.Context) ([]hookdto.DoctorResult, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabSessions
	tabCalendar
	tabStats
	tabHooks
	tabCount
)

var tabLabels = [tabCount]string{
	"Home", "Sessions", "Calendar", "Stats", "Hooks",
}

// ─── async messages ───────────────────────────────────────────────────────────

type expiredMsg struct {
	out sessiondto.ExpiredOutput
	err error
}

type sessionStartedMsg struct {
	active sessiondto.ActiveSessionOutput
	err    error
}

type sessionEndedMsg struct {
	out sessiondto.EndOutput
	err error
}

type sessionSavedMsg struct {
	session sessiondto.SessionOutput
	err     error
}

// statusMsg reports the outcome of a palette command and triggers a refresh.
type statusMsg struct {
	text string
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	End     key.Binding
	Browse  key.Binding
	Month   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		End:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end session")),
		Browse:  key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "prev/next day or month")),
		Month:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open day")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Start, k.End},
		{k.Browse, k.Month},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the session
// lifecycle, the tagging form, the help overlay and the command palette.
type Model struct {
	session    sessionPort
	profile    profilePort
	reflection reflectionPort
	now        func() time.Time

	homeView     homeview.Model
	sessionsView sessionsview.Model
	calendarView calendarview.Model
	statsView    statsview.Model
	hooksView    hooksview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	tagForm   components.TagForm
	stub      *sessiondto.SessionOutput
	status    string
	width     int
	height    int
}

func NewModel(session sessionPort, profile profilePort, insights insightsPort, reflection reflectionPort, hooks hookPort) Model {
	now := time.Now
	today := now()
	return Model{
		session:    session,
		profile:    profile,
		reflection: reflection,
		now:        now,
		homeView: homeview.New(homeBridge{
			session: session, insights: insights, profile: profile, reflection: reflection, now: now,
		}),
		sessionsView: sessionsview.New(session, calendar.DateOf(today)),
		calendarView: calendarview.New(insights, today),
		statsView:    statsview.New(insights),
		hooksView:    hooksview.New(hooks),
		activeTab:    tabHome,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		tagForm:      components.NewTagForm(sessiondto.Activities),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Sequence(
		m.recoverExpiredCmd(),
		tea.Batch(
			m.homeView.Init(),
			m.sessionsView.Init(),
			m.calendarView.Init(),
			m.statsView.Init(),
			m.hooksView.Init(),
		),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Overlays intercept all input while open.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		if m.tagForm.Visible() {
			var cmd tea.Cmd
			m.tagForm, cmd = m.tagForm.Update(msg)
			return m, cmd
		}
		if m.palette.Visible() {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.tagForm.SetWidth(min(m.width-4, 72))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// The home view schedules the one-second tick; it must reach the home
	// view whichever tab is shown.
	case homeview.TickMsg, homeview.ElapsedMsg, homeview.LoadedMsg:
		var cmd tea.Cmd
		m.homeView, cmd = m.homeView.Update(msg)
		return m, cmd

	case calendarview.MonthLoadedMsg, calendarview.DayLoadedMsg:
		var cmd tea.Cmd
		m.calendarView, cmd = m.calendarView.Update(msg)
		return m, cmd

	case statsview.LoadedMsg:
		var cmd tea.Cmd
		m.statsView, cmd = m.statsView.Update(msg)
		return m, cmd

	case hooksview.HooksLoadedMsg, hooksview.DoctorDoneMsg:
		var cmd tea.Cmd
		m.hooksView, cmd = m.hooksView.Update(msg)
		return m, cmd

	case sessionsview.SessionsLoadedMsg, sessionsview.DeletedMsg:
		if deleted, ok := msg.(sessionsview.DeletedMsg); ok {
			if deleted.Err != nil {
				m.status = "delete failed: " + deleted.Err.Error()
			} else {
				m.status = "session deleted"
				cmds = append(cmds, m.refreshAll())
			}
		}
		var cmd tea.Cmd
		m.sessionsView, cmd = m.sessionsView.Update(msg)
		return m, tea.Batch(append(cmds, cmd)...)

	case calendarview.OpenDayMsg:
		m.activeTab = tabSessions
		return m, m.sessionsView.Load(msg.Date)

	case expiredMsg:
		if msg.err != nil {
			m.status = "expiry check: " + msg.err.Error()
		} else if msg.out.Expired {
			m.status = fmt.Sprintf("your last session ran past %s and was saved as %s",
				calendar.FormatDuration(msg.out.Session.DurationMinutes),
				calendar.FormatTimeRange(msg.out.Session.StartTime, msg.out.Session.EndTime))
		}
		return m, nil

	case sessionStartedMsg:
		if msg.err != nil {
			m.status = "start failed: " + msg.err.Error() + " (use :start:replace)"
			return m, nil
		}
		m.status = "offline since " + msg.active.StartTime.Format("3:04 PM")
		return m, m.homeView.Refresh()

	case sessionEndedMsg:
		if msg.err != nil {
			m.status = "end failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.out.Ended {
			m.status = "no active session"
			return m, nil
		}
		stub := msg.out.Stub
		m.stub = &stub
		m.tagForm.Open(fmt.Sprintf("%s  %s",
			calendar.FormatTimeRange(stub.StartTime, stub.EndTime), calendar.FormatDuration(stub.DurationMinutes)))
		return m, nil

	case components.TagSubmitMsg:
		return m, m.saveStubCmd(sessiondto.Tags{
			Activities:     msg.Activities,
			CustomActivity: msg.CustomActivity,
			MoodRating:     msg.MoodRating,
			Notes:          msg.Notes,
		}, false)

	case components.TagSkipMsg:
		return m, m.saveStubCmd(sessiondto.Tags{}, true)

	case sessionSavedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.stub = nil
		m.status = "logged " + calendar.FormatDuration(msg.session.DurationMinutes) + " offline"
		return m, m.refreshAll()

	case statusMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.text
		return m, m.refreshAll()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if m.activeTab == tabSessions && m.sessionsView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "s":
			return m, m.startSessionCmd(false)
		case "e":
			return m, m.endSessionCmd()
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabHome:
		m.homeView, tabCmd = m.homeView.Update(msg)
	case tabSessions:
		m.sessionsView, tabCmd = m.sessionsView.Update(msg)
	case tabCalendar:
		m.calendarView, tabCmd = m.calendarView.Update(msg)
	case tabStats:
		m.statsView, tabCmd = m.statsView.Update(msg)
	case tabHooks:
		m.hooksView, tabCmd = m.hooksView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.tagForm.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.tagForm.View())
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabSessions:
		return m.sessionsView.View()
	case tabCalendar:
		return m.calendarView.View()
	case tabStats:
		return m.statsView.View()
	case tabHooks:
		return m.hooksView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "offlinewins  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.homeView.Active() {
		left = theme.Hot.Render("● offline") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	today := calendar.DateOf(m.now())

	switch parts[0] {
	case "start":
		return m, m.startSessionCmd(false)

	case "start:replace":
		return m, m.startSessionCmd(true)

	case "end":
		return m, m.endSessionCmd()

	case "skip":
		if m.stub == nil {
			m.status = "nothing to skip"
			return m, nil
		}
		return m, m.saveStubCmd(sessiondto.Tags{}, true)

	case "mood":
		if len(parts) < 2 {
			m.status = "usage: mood <1-5> [YYYY-MM-DD]"
			return m, nil
		}
		rating, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "mood must be 1-5"
			return m, nil
		}
		date := today
		if len(parts) >= 3 {
			date = parts[2]
		}
		return m, m.runCmd("mood saved for "+date, func(ctx context.Context) error {
			_, err := m.reflection.SetDayMood(ctx, date, rating)
			return err
		})

	case "goal":
		if len(parts) < 2 {
			m.status = "usage: goal <minutes>"
			return m, nil
		}
		return m, func() tea.Msg {
			out, err := m.profile.SetGoal(context.Background(), parts[1])
			if err != nil {
				return statusMsg{err: err}
			}
			if !out.Changed {
				return statusMsg{text: "goal unchanged: " + calendar.FormatDuration(out.Settings.DailyGoalMinutes)}
			}
			return statusMsg{text: "daily goal is now " + calendar.FormatDuration(out.Settings.DailyGoalMinutes)}
		}

	case "name":
		name := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.runCmd("name updated", func(ctx context.Context) error {
			_, err := m.profile.SetName(ctx, name)
			return err
		})

	case "reflect:keep", "reflect:dismiss", "reflect:change":
		date := m.homeView.PromptDate()
		if date == "" {
			m.status = "no reflection pending"
			return m, nil
		}
		switch parts[0] {
		case "reflect:keep":
			return m, m.runCmd("kept mood for "+date, func(ctx context.Context) error {
				return m.reflection.Keep(ctx, date)
			})
		case "reflect:dismiss":
			return m, m.runCmd("dismissed", func(ctx context.Context) error {
				return m.reflection.Dismiss(ctx, date)
			})
		default:
			if len(parts) < 2 {
				m.status = "usage: reflect:change <1-5>"
				return m, nil
			}
			rating, err := strconv.Atoi(parts[1])
			if err != nil {
				m.status = "mood must be 1-5"
				return m, nil
			}
			return m, m.runCmd("mood changed for "+date, func(ctx context.Context) error {
				return m.reflection.Change(ctx, date, rating)
			})
		}

	case "refresh":
		m.status = "refreshed"
		return m, m.refreshAll()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.sessionsView, _ = m.sessionsView.Update(sz)
	m.calendarView, _ = m.calendarView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
	m.hooksView, _ = m.hooksView.Update(sz)
}

func (m Model) refreshAll() tea.Cmd {
	return tea.Batch(
		m.homeView.Refresh(),
		m.sessionsView.Load(m.sessionsView.Date()),
		m.calendarView.Reload(),
		m.statsView.Reload(),
	)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) recoverExpiredCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.RecoverExpired(context.Background())
		return expiredMsg{out: out, err: err}
	}
}

func (m Model) startSessionCmd(replace bool) tea.Cmd {
	return func() tea.Msg {
		active, err := m.session.Start(context.Background(), replace)
		return sessionStartedMsg{active: active, err: err}
	}
}

func (m Model) endSessionCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Stop(context.Background())
		return sessionEndedMsg{out: out, err: err}
	}
}

func (m Model) saveStubCmd(tags sessiondto.Tags, skip bool) tea.Cmd {
	if m.stub == nil {
		return nil
	}
	stub := *m.stub
	return func() tea.Msg {
		ctx := context.Background()
		if skip {
			saved, err := m.session.Skip(ctx, stub)
			return sessionSavedMsg{session: saved, err: err}
		}
		saved, err := m.session.Log(ctx, stub, tags)
		return sessionSavedMsg{session: saved, err: err}
	}
}

func (m Model) runCmd(done string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: done}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────

type homeBridge struct {
	session    sessionPort
	insights   insightsPort
	profile    profilePort
	reflection reflectionPort
	now        func() time.Time
}

func (b homeBridge) Elapsed(ctx context.Context) (sessiondto.ElapsedOutput, error) {
	return b.session.Elapsed(ctx)
}
func (b homeBridge) Stats(ctx context.Context) (insightsdto.LifetimeOutput, error) {
	return b.insights.Stats(ctx)
}
func (b homeBridge) Settings(ctx context.Context) (profiledto.SettingsOutput, error) {
	return b.profile.Get(ctx)
}
func (b homeBridge) Prompt(ctx context.Context) (reflectiondto.PromptOutput, error) {
	return b.reflection.Prompt(ctx, calendar.DateOf(b.now()))
}
