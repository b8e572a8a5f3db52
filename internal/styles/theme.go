package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette used across components.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	UserBubble    lipgloss.Color
	AIBubble      lipgloss.Color
}

var current = Theme{
	Primary:       lipgloss.Color("12"),
	Secondary:     lipgloss.Color("13"),
	Accent:        lipgloss.Color("14"),
	Success:       lipgloss.Color("10"),
	Warning:       lipgloss.Color("11"),
	Error:         lipgloss.Color("9"),
	Muted:         lipgloss.Color("8"),
	Border:        lipgloss.Color("240"),
	TextPrimary:   lipgloss.Color("15"),
	TextSecondary: lipgloss.Color("7"),
	UserBubble:    lipgloss.Color("4"),
	AIBubble:      lipgloss.Color("5"),
}

// Current returns the active theme.
func Current() Theme {
	return current
}
