package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newsdigest/internal/styles"
)

// View renders the whole screen: header, sidebar beside the active
// component, status bar.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.snapshot == nil {
		return m.bootView()
	}

	header := styles.Header().Width(m.width).Render("News Digest · " + m.mode.String())

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		lipgloss.NewStyle().Width(m.mainWidth()).Height(m.mainHeight()).Render(m.mainView()),
	)

	return strings.Join([]string{header, body, m.statusBar()}, "\n")
}

func (m Model) mainView() string {
	if m.loading {
		return "\n  " + m.spin.View()
	}
	switch m.mode {
	case ModeCollectRSSFeeds:
		return m.feedsUI.View()
	case ModeCreatePreference:
		return m.survey.View()
	case ModeEditPreference:
		return m.prefEdit.View()
	case ModeSummary:
		return m.summary.View()
	case ModeNewsResearch:
		return m.research.View()
	}
	return ""
}

// bootView covers the first fetch: spinner, or the retryable error screen.
func (m Model) bootView() string {
	var b strings.Builder
	b.WriteString("\n  " + styles.TitleStyle().Render("News Digest") + "\n\n")
	if m.initErr != "" {
		b.WriteString("  " + styles.ErrorStyle().Render(m.initErr) + "\n\n")
		b.WriteString("  " + styles.MutedStyle().Render("r: retry • ctrl+c: quit") + "\n")
		return b.String()
	}
	b.WriteString("  " + m.spin.View() + "\n")
	return b.String()
}

func (m Model) statusBar() string {
	if m.notice != "" {
		return styles.StatusBarError().Width(m.width).Render(m.notice)
	}
	hint := "ctrl+b: sidebar • ctrl+c: quit"
	if m.sidebarFocused {
		hint = "↑/↓: move • enter: open • ctrl+b: back"
	}
	return styles.StatusBar().Width(m.width).Render(hint)
}
