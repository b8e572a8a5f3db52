package feeds

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newsdigest/internal/styles"
)

// View renders the three zones stacked: OPML picker, manual add form,
// subscription list. The focused zone carries an accent title.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.zoneTitle("OPML upload", zonePicker))
	b.WriteString("\n")
	if m.selected != "" {
		b.WriteString(styles.SuccessStyle().Render("Selected: "+m.selected) + "\n")
	}
	if m.uploadErr != "" {
		b.WriteString(styles.ErrorStyle().Render(m.uploadErr) + "\n")
	}
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle().Render("enter: select file • u: upload • d: use default feeds"))
	b.WriteString("\n\n")

	b.WriteString(m.zoneTitle("Add a feed", zoneForm))
	b.WriteString("\n")
	if m.addErr != "" {
		b.WriteString(styles.ErrorStyle().Render(m.addErr) + "\n")
	}
	b.WriteString(m.titleInput.View() + "\n")
	b.WriteString(m.urlInput.View() + "\n")
	b.WriteString(styles.MutedStyle().Render("up/down: switch field • enter: add"))
	b.WriteString("\n\n")

	b.WriteString(m.zoneTitle(fmt.Sprintf("Subscribed feeds (%d)", len(m.feeds)), zoneList))
	b.WriteString("\n")
	if m.fetchErr != "" {
		b.WriteString(styles.ErrorStyle().Render(m.fetchErr) + "\n")
	}
	if m.deleteErr != "" {
		b.WriteString(styles.ErrorStyle().Render(m.deleteErr) + "\n")
	}
	b.WriteString(m.renderFeeds())

	if m.spin.IsActive() {
		b.WriteString("\n" + m.spin.View())
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func (m Model) zoneTitle(title string, z zone) string {
	if m.zone == z {
		return styles.AccentStyle().Render("▸ " + title)
	}
	return styles.MutedStyle().Render("  " + title)
}

func (m Model) renderFeeds() string {
	if len(m.feeds) == 0 {
		return styles.MutedStyle().Render("  No feeds subscribed yet.") + "\n"
	}
	var b strings.Builder
	for i, f := range m.feeds {
		line := fmt.Sprintf("%s  %s", f.Title, styles.MutedStyle().Render(f.FeedURL))
		if m.zone == zoneList && i == m.listCursor {
			b.WriteString(styles.AccentStyle().Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(styles.MutedStyle().Render("x: unsubscribe") + "\n")
	return b.String()
}
