// Package tui is the terminal front end of the volunteering app. It renders
// navigation screens and drives the navigation reducer from key presses.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	lightBackground = lipgloss.Color("#f4f5f6")
	lightForeground = lipgloss.Color("#101F38")
	lightMuted      = lipgloss.Color("#6b7280")
	lightBorder     = lipgloss.Color("#dce0e5")

	darkBackground = lipgloss.Color("#0E1117")
	darkForeground = lipgloss.Color("#FAFAFA")
	darkMuted      = lipgloss.Color("#9ca3af")
	darkBorder     = lipgloss.Color("#2a3850")

	accent      = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
	info        = lipgloss.Color("#2196F3")
)

// Theme is one of the two color schemes toggled from the dashboard.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Background: lightBackground,
		Foreground: lightForeground,
		Muted:      lightMuted,
		Border:     lightBorder,
	}
}

func DarkTheme() Theme {
	return Theme{
		Background: darkBackground,
		Foreground: darkForeground,
		Muted:      darkMuted,
		Border:     darkBorder,
		IsDark:     true,
	}
}

type Styles struct {
	Theme Theme

	App         lipgloss.Style
	Sidebar     lipgloss.Style
	SidebarItem lipgloss.Style
	ActiveItem  lipgloss.Style
	Content     lipgloss.Style
	Title       lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style
	Option      lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Label       lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Info        lipgloss.Style
	Card        lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	base := lipgloss.NewStyle().Foreground(theme.Foreground)
	if theme.IsDark {
		base = base.Background(theme.Background)
	}

	return Styles{
		Theme:       theme,
		App:         base.Padding(1, 2),
		Sidebar:     base.Width(22).Padding(0, 1).Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(theme.Border),
		SidebarItem: base,
		ActiveItem:  base.Bold(true).Foreground(accent),
		Content:     base.PaddingLeft(2),
		Title:       base.Bold(true).MarginBottom(1),
		Body:        base,
		Muted:       base.Foreground(theme.Muted),
		Option:      base.PaddingLeft(2),
		Tab:         base.Padding(0, 1).Foreground(theme.Muted),
		ActiveTab:   base.Padding(0, 1).Bold(true).Underline(true),
		Label:       base.Bold(true),
		Success:     base.Foreground(accent).Bold(true),
		Error:       base.Foreground(destructive).Bold(true),
		Info:        base.Foreground(info),
		Card:        base.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border).Padding(0, 1).MarginBottom(1),
	}
}

func stylesFor(dark bool) Styles {
	if dark {
		return NewStyles(DarkTheme())
	}
	return NewStyles(LightTheme())
}
