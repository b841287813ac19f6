package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Path    lipgloss.Style
	LineNo  lipgloss.Style
	Reason  lipgloss.Style
	GiveUp  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass string
	Fail string
}

// Theme names accepted by ThemeByName.
const (
	ThemeDefault = "default"
	ThemeOrca    = "orca"
	ThemeMono    = "mono"
)

// DefaultTheme returns a vibrant color theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    ThemeDefault,
		Path:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		LineNo:  r.NewStyle().Foreground(lipgloss.Color("242")),           // gray
		Reason:  r.NewStyle(),
		GiveUp:  r.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Success: r.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")), // red
		Icons:   ThemeIcons{Pass: "✓", Fail: "✗"},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    ThemeOrca,
		Path:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("75")), // pale blue
		LineNo:  r.NewStyle().Foreground(lipgloss.Color("245")),           // lighter gray
		Reason:  r.NewStyle(),
		GiveUp:  r.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Success: r.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Error:   r.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Icons:   ThemeIcons{Pass: "✓", Fail: "✗"},
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    ThemeMono,
		Path:    r.NewStyle().Bold(true),
		LineNo:  r.NewStyle(),
		Reason:  r.NewStyle(),
		GiveUp:  r.NewStyle(),
		Success: r.NewStyle(),
		Error:   r.NewStyle(),
		Icons:   ThemeIcons{Pass: "+", Fail: "x"},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	switch name {
	case ThemeOrca:
		return OrcaTheme(r)
	case ThemeMono:
		return MonoTheme(r)
	default:
		return DefaultTheme(r)
	}
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	switch name {
	case ThemeDefault, ThemeOrca, ThemeMono:
		return true
	}
	return false
}
