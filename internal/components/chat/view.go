package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"newsdigest/internal/markdown"
	"newsdigest/internal/styles"
	"newsdigest/sdk/news"
)

// refresh re-renders the message list into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderMessages())
}

func (m *Model) renderMessages() string {
	theme := styles.Current()
	bubbleWidth := m.width * 3 / 4
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	userStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.UserBubble).
		Padding(0, 1).
		MaxWidth(bubbleWidth)
	aiStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.AIBubble).
		Padding(0, 1).
		MaxWidth(bubbleWidth)

	var blocks []string
	for i, msg := range m.thread.Messages() {
		content := msg.Content
		if i == m.revealing {
			content = m.reveal.View()
		}

		var block string
		if msg.Author == news.AuthorUser {
			wrapped := wordwrap.String(content, bubbleWidth-4)
			block = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, userStyle.Render(wrapped))
		} else {
			block = aiStyle.Render(strings.TrimRight(markdown.Render(content), "\n"))
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

// View renders the chat: error banner, messages, then the input row.
func (m Model) View() string {
	var sections []string

	if m.errText != "" {
		sections = append(sections, styles.ErrorStyle().Render("✗ "+m.errText+"  (esc to dismiss)"))
	}

	sections = append(sections, m.viewport.View())

	if m.thread.InFlight() || m.loading {
		sections = append(sections, m.spin.View())
		disabled := styles.MutedStyle().Italic(true).Render("Waiting for response...")
		sections = append(sections, disabled)
	} else {
		sections = append(sections, m.input.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
