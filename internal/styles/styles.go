package styles

import "github.com/charmbracelet/lipgloss"

// Shared style helpers built on the current theme.

func Header() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(Current().Primary).
		Padding(0, 1)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Current().Error)
}

func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Current().Success)
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Current().Muted)
}

func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Current().Accent)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Current().TextPrimary)
}

func BorderBox() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Current().Border).
		Padding(0, 1)
}

func StatusBar() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Current().TextSecondary)
}

func StatusBarError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Current().Error).Bold(true)
}
