package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newsdigest/internal/markdown"
	"newsdigest/internal/styles"
)

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderItems())
}

func (m *Model) renderItems() string {
	theme := styles.Current()
	categoryStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	refStyle := lipgloss.NewStyle().Foreground(theme.Primary).Underline(true)

	if m.itemCount() == 0 {
		return styles.MutedStyle().Render("No news summaries available.")
	}

	var blocks []string
	idx := 0
	for _, category := range m.categories {
		blocks = append(blocks, categoryStyle.Render(category.Name))
		for _, item := range category.Items {
			marker := "▼"
			if item.loading {
				marker = "…"
			} else if item.expandedShown {
				marker = "▲"
			}
			prefix := "  "
			if m.focus == focusList && idx == m.cursor {
				prefix = cursorStyle.Render("> ")
			}

			lines := []string{prefix + titleStyle.Render(item.Title) + " " + marker}
			if item.Content != "" {
				lines = append(lines, strings.TrimRight(markdown.Render(item.Content), "\n"))
			}
			if item.expandedShown && item.ExpandedContent != "" {
				lines = append(lines, strings.TrimRight(markdown.Render(item.ExpandedContent), "\n"))
			}
			for i, url := range item.ReferenceURLs {
				lines = append(lines, refStyle.Render(fmt.Sprintf("  Ref %d: %s", i+1, url)))
			}
			blocks = append(blocks, strings.Join(lines, "\n"))
			idx++
		}
	}
	return strings.Join(blocks, "\n\n")
}

// View renders the browser: item list, then the options form and help.
func (m Model) View() string {
	var sections []string

	if m.errText != "" {
		sections = append(sections, styles.ErrorStyle().Render("✗ "+m.errText+"  (esc to dismiss)"))
	}
	if m.notice != "" {
		sections = append(sections, styles.SuccessStyle().Render(m.notice))
	}

	if m.fetching {
		sections = append(sections, m.spin.View())
	} else {
		sections = append(sections, m.viewport.View())
	}

	sections = append(sections, m.renderOptions())

	help := "enter: expand/collapse • o: options • L/D: like/dislike"
	if m.focus == focusOptions {
		help = "←/→: change • ↑/↓: field • enter: submit • o: back to list"
	}
	sections = append(sections, styles.MutedStyle().Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderOptions() string {
	theme := styles.Current()
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextSecondary)
	valueStyle := lipgloss.NewStyle().Foreground(theme.TextPrimary)
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)

	startLabel := ""
	if len(m.choices) > 0 {
		startLabel = m.choices[m.choiceIdx]
	}

	fields := []struct {
		field optionField
		label string
		value string
	}{
		{fieldChunking, "Strategy", chunkingLabel(m.options.Chunking)},
		{fieldPreference, "Preference", preferenceLabel(m.options.PreferenceApplication)},
		{fieldPeriod, "Period", periodLabel(m.options.PeriodType)},
		{fieldStartDate, "Start date", startLabel},
	}

	var parts []string
	for _, f := range fields {
		value := valueStyle.Render(f.value)
		if m.focus == focusOptions && m.field == f.field {
			value = activeStyle.Render("‹" + f.value + "›")
		}
		parts = append(parts, labelStyle.Render(f.label+": ")+value)
	}
	return styles.BorderBox().Render(strings.Join(parts, "   "))
}
