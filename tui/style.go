package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan    = lipgloss.Color("#00E5FF")
	magenta = lipgloss.Color("#FF1B6B")
	yellow  = lipgloss.Color("#FFB500")
	green   = lipgloss.Color("#2AFFAA")
	red     = lipgloss.Color("#FF5555")
	muted   = lipgloss.Color("#6C7280")
	text    = lipgloss.Color("#ECEFF4")
)

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Section     lipgloss.Style
	Label       lipgloss.Style
	Input       lipgloss.Style
	Focused     lipgloss.Style
	Value       lipgloss.Style
	Success     lipgloss.Style
	Info        lipgloss.Style
	Error       lipgloss.Style
	Muted       lipgloss.Style
	Panel       lipgloss.Style
	TableHeader lipgloss.Style
	Avalanche   lipgloss.Style
	Snowball    lipgloss.Style
	Help        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(cyan).
			Bold(true).
			MarginBottom(1),

		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ActiveTab: lipgloss.NewStyle().
			Foreground(text).
			Background(magenta).
			Bold(true).
			Padding(0, 2),

		Section: lipgloss.NewStyle().
			Foreground(cyan).
			Bold(true).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Foreground(text).
			Width(26),

		Input: lipgloss.NewStyle().
			Foreground(text).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(muted),

		Focused: lipgloss.NewStyle().
			Foreground(text).
			Padding(0, 1).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(cyan),

		Value: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(green).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(yellow),

		Error: lipgloss.NewStyle().
			Foreground(red).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),

		TableHeader: lipgloss.NewStyle().
			Foreground(cyan).
			Bold(true),

		Avalanche: lipgloss.NewStyle().Foreground(cyan),
		Snowball:  lipgloss.NewStyle().Foreground(magenta),

		Help: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
	}
}
