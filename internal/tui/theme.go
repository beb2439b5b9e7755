package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles a screen renders with. Each screen owns a copy so
// toggling one screen does not repaint another.
type Theme struct {
	Name      string
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Pending   lipgloss.Style
	Current   lipgloss.Style
	Cursor    lipgloss.Style
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Footer    lipgloss.Style
	Selected  lipgloss.Style
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	return Theme{
		Name:      "dark",
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		Pending:   pending,
		Current:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		Cursor:    pending.Underline(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")),
	}
}

// LightTheme is the palette for light terminals.
func LightTheme() Theme {
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	return Theme{
		Name:      "light",
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1F1F1F")),
		Incorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("#CF1322")),
		Pending:   pending,
		Current:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1677FF")),
		Cursor:    pending.Underline(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1F1F1F")).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#595959")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#CF1322")).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#389E0D")).Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#595959")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1F1F1F")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#1677FF")),
	}
}

// ThemeFor returns the light or dark theme.
func ThemeFor(light bool) Theme {
	if light {
		return LightTheme()
	}
	return DarkTheme()
}

// Toggle switches between the dark and light palettes.
func (t Theme) Toggle() Theme {
	return ThemeFor(t.Name != "light")
}
