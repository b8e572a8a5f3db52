package sidebar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"newsdigest/internal/styles"
)

// Item is one selectable row. Selected is derived by the owner on every
// rebuild; the sidebar never stores its own notion of what is selected.
type Item struct {
	Label    string
	ID       string
	Selected bool
}

// Section is a titled group of items.
type Section struct {
	Title string
	Items []Item
}

// SelectMsg is emitted when the user activates an item.
type SelectMsg struct {
	ID string
}

// Model renders the side panel and tracks only the navigation cursor.
type Model struct {
	sections []Section
	cursor   int
	focused  bool
	width    int
}

// New creates a sidebar.
func New(width int) Model {
	return Model{width: width}
}

// SetSections replaces the sections wholesale.
func (m *Model) SetSections(sections []Section) {
	m.sections = sections
	if n := m.itemCount(); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

// Focus gives the sidebar key focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes key focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the sidebar has key focus.
func (m Model) Focused() bool { return m.focused }

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) { m.width = width }

// Update handles navigation keys while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}
	case "enter":
		if item, ok := m.itemAt(m.cursor); ok {
			id := item.ID
			return m, func() tea.Msg { return SelectMsg{ID: id} }
		}
	}
	return m, nil
}

// View renders all sections.
func (m Model) View() string {
	theme := styles.Current()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	itemStyle := lipgloss.NewStyle().Foreground(theme.TextSecondary).PaddingLeft(1)
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).PaddingLeft(1)
	cursorStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	var rows []string
	idx := 0
	for _, section := range m.sections {
		rows = append(rows, titleStyle.Render(section.Title))
		for _, item := range section.Items {
			style := itemStyle
			if item.Selected {
				style = selectedStyle
			}
			prefix := "  "
			if m.focused && idx == m.cursor {
				prefix = cursorStyle.Render("> ")
			}
			rows = append(rows, prefix+style.MaxWidth(m.width-2).Render(item.Label))
			idx++
		}
		rows = append(rows, "")
	}
	return lipgloss.NewStyle().Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) itemCount() int {
	n := 0
	for _, s := range m.sections {
		n += len(s.Items)
	}
	return n
}

func (m Model) itemAt(index int) (Item, bool) {
	for _, s := range m.sections {
		if index < len(s.Items) {
			return s.Items[index], true
		}
		index -= len(s.Items)
	}
	return Item{}, false
}
