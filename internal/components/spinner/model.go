package spinner

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"newsdigest/internal/styles"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// TickMsg advances the spinner animation.
type TickMsg struct {
	ID int
}

// Model is a small animated spinner with a message.
type Model struct {
	id      int
	frame   int
	active  bool
	message string
}

var nextID int

// New creates a spinner.
func New() Model {
	nextID++
	return Model{id: nextID}
}

// Start begins the animation.
func (m *Model) Start(message string) tea.Cmd {
	m.active = true
	m.frame = 0
	m.message = message
	return m.tick()
}

// Stop halts the animation.
func (m *Model) Stop() {
	m.active = false
}

// IsActive reports whether the spinner is running.
func (m Model) IsActive() bool {
	return m.active
}

// Update handles tick messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || !m.active {
		return m, nil
	}
	m.frame = (m.frame + 1) % len(frames)
	return m, m.tick()
}

// View renders the spinner with its message.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	theme := styles.Current()
	frame := lipgloss.NewStyle().Foreground(theme.Accent).Render(frames[m.frame])
	if m.message == "" {
		return frame
	}
	return frame + " " + lipgloss.NewStyle().Foreground(theme.TextSecondary).Render(m.message)
}

func (m Model) tick() tea.Cmd {
	id := m.id
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}
