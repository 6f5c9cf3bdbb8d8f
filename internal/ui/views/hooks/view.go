package hooks

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	hookdto "offlinewins/internal/modules/hook/dto"
	"offlinewins/internal/ui/theme"
)

// Port is the minimal interface this view needs from the hook use-case.
type Port interface {
	List(ctx context.Context) ([]hookdto.HookInfo, error)
	Doctor(ctx context.Context) ([]hookdto.DoctorResult, error)
}

type HooksLoadedMsg struct {
	Hooks []hookdto.HookInfo
	Err   error
}

type DoctorDoneMsg struct {
	Results []hookdto.DoctorResult
	Err     error
}

type hookItem struct{ hook hookdto.HookInfo }

func (i hookItem) Title() string {
	if !i.hook.Enabled {
		return i.hook.Name + " (disabled)"
	}
	return i.hook.Name
}
func (i hookItem) Description() string { return i.hook.Version + "  " + strings.Join(i.hook.Events, ", ") }
func (i hookItem) FilterValue() string { return i.hook.Name }

// Model lists configured hooks; d runs the doctor checks.
type Model struct {
	port    Port
	list    list.Model
	output  viewport.Model
	spinner spinner.Model
	doctor  []hookdto.DoctorResult
	loading bool
	err     error
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Hooks"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, output: vp, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case HooksLoadedMsg:
		m.err = msg.Err
		items := make([]list.Item, len(msg.Hooks))
		for i, h := range msg.Hooks {
			items[i] = hookItem{hook: h}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.output.SetContent(m.renderOutput())

	case DoctorDoneMsg:
		m.loading = false
		m.err = msg.Err
		m.doctor = msg.Results
		m.output.SetContent(m.renderOutput())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "d":
			m.loading = true
			return m, tea.Batch(m.doctorCmd(), m.spinner.Tick)
		case "r":
			return m, m.loadCmd()
		}
	}

	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	var vCmd tea.Cmd
	m.output, vCmd = m.output.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	outW := m.width - listW

	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())

	body := m.output.View()
	if m.loading {
		body = m.spinner.View() + " Checking hooks…"
	}
	outPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(outW - 2).
		Height(m.height - 2).
		Render(body)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, outPane)
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	m.list.SetSize(listW, m.height)
	m.output.Width = m.width - listW - 4
	m.output.Height = m.height - 4
}

func (m Model) renderOutput() string {
	var sb strings.Builder
	if m.err != nil {
		sb.WriteString(theme.Bad.Render(m.err.Error()) + "\n\n")
	}
	if len(m.list.Items()) == 0 {
		sb.WriteString(theme.Muted.Render("No hooks configured. Declare them in <data-dir>/hooks/hooks.yaml.") + "\n")
	}
	if len(m.doctor) > 0 {
		sb.WriteString(theme.Title.Render("Doctor") + "\n\n")
		for _, r := range m.doctor {
			sb.WriteString(fmt.Sprintf("%s  binary %s  checksum %s  handshake %s\n",
				r.Name, mark(r.BinaryReachable), mark(r.ChecksumValid), mark(r.LifecycleOK)))
			if r.Error != "" {
				sb.WriteString("  " + theme.Bad.Render(r.Error) + "\n")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(theme.Muted.Render("d: run doctor  r: reload"))
	return sb.String()
}

func mark(ok bool) string {
	if ok {
		return theme.Good.Render("✓")
	}
	return theme.Bad.Render("✗")
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		hooks, err := m.port.List(context.Background())
		return HooksLoadedMsg{Hooks: hooks, Err: err}
	}
}

func (m Model) doctorCmd() tea.Cmd {
	return func() tea.Msg {
		results, err := m.port.Doctor(context.Background())
		return DoctorDoneMsg{Results: results, Err: err}
	}
}
