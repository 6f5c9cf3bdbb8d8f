package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Bad   = lipgloss.NewStyle().Foreground(Red)
)

// Intensity shades a calendar cell from no time offline (0) to at least
// double the daily goal (4).
var Intensity = [5]lipgloss.Color{
	Surface0,
	lipgloss.Color("#2f4b3a"),
	lipgloss.Color("#4f7a55"),
	lipgloss.Color("#7fb77e"),
	Green,
}

// MoodColor renders s in the hex colour of a mood display entry, falling
// back to Text for an empty colour.
func MoodColor(hex, s string) string {
	if hex == "" {
		return lipgloss.NewStyle().Foreground(Text).Render(s)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}
