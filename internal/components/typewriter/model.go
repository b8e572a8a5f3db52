package typewriter

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the reveal by one word.
type TickMsg struct {
	ID  int
	Gen int
}

// DoneMsg is emitted exactly once when the last word has been shown.
type DoneMsg struct {
	ID int
}

// Model reveals a text word by word at a fixed interval. Changing the text
// mid-reveal restarts from the first word.
type Model struct {
	id       int
	gen      int
	text     string
	words    []string
	shown    int
	interval time.Duration
	active   bool
	doneSent bool
}

var nextID int

// New creates a reveal model. interval is the delay between words.
func New(interval time.Duration) Model {
	nextID++
	if interval <= 0 {
		interval = 150 * time.Millisecond
	}
	return Model{id: nextID, interval: interval}
}

// Start begins revealing text from the first word. A later Start supersedes
// any reveal still in progress.
func (m *Model) Start(text string) tea.Cmd {
	m.gen++
	m.text = text
	m.words = strings.Fields(text)
	m.shown = 0
	m.doneSent = false

	if len(m.words) == 0 {
		m.active = false
		m.doneSent = true
		id := m.id
		return func() tea.Msg { return DoneMsg{ID: id} }
	}
	m.active = true
	return m.tick()
}

// Stop reveals everything immediately without emitting DoneMsg.
func (m *Model) Stop() {
	m.shown = len(m.words)
	m.active = false
}

// Update handles tick messages. Ticks from a superseded reveal are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.Gen != m.gen || !m.active {
		return m, nil
	}

	m.shown++
	if m.shown >= len(m.words) {
		m.shown = len(m.words)
		m.active = false
		if !m.doneSent {
			m.doneSent = true
			id := m.id
			return m, func() tea.Msg { return DoneMsg{ID: id} }
		}
		return m, nil
	}
	return m, m.tick()
}

// View returns the words revealed so far.
func (m Model) View() string {
	if m.shown >= len(m.words) {
		return m.text
	}
	return strings.Join(m.words[:m.shown], " ")
}

// Active reports whether a reveal is in progress.
func (m Model) Active() bool {
	return m.active
}

// ID returns the model's unique ID for message routing.
func (m Model) ID() int {
	return m.id
}

func (m Model) tick() tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen}
	})
}
