package form

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	warnColor   = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
)

// labelStyle renders field labels.
func labelStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if focused {
		return s.Foreground(accentColor)
	}
	return s.Foreground(dimColor)
}

// buttonStyle renders the submit button.
func buttonStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2)
	if focused {
		return s.
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
			Background(accentColor)
	}
	return s.Foreground(dimColor)
}

// hintStyle renders field-level validation hints.
func hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(warnColor)
}

// alertStyle renders the blocking notification box.
func alertStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(warnColor).
		Padding(1, 2)
}
