package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"newsdigest/internal/components/spinner"
	"newsdigest/internal/components/typewriter"
	"newsdigest/sdk/news"
)

// Outgoing is one user turn handed to the owner's send function.
type Outgoing struct {
	ChatID          int
	ThreadID        string
	ParentMessageID string
	LastAIContent   string
	Text            string
}

// SendFunc turns an outgoing user message into a backend command. The
// command must resolve to a ReplyMsg or SendFailedMsg for this chat, or to
// an owner-level message that retires the thread.
type SendFunc func(out Outgoing) tea.Cmd

// ReplyMsg confirms the outstanding user message and carries the AI reply.
type ReplyMsg struct {
	ChatID        int
	UserMessageID string
	UserThreadID  string
	Reply         news.ChatMessage
}

// SendFailedMsg rolls back the outstanding user message.
type SendFailedMsg struct {
	ChatID int
	Detail string
}

// HistoryMsg replaces the thread with fetched history.
type HistoryMsg struct {
	ChatID   int
	Messages []news.ChatMessage
}

// HistoryFailedMsg reports a failed history fetch.
type HistoryFailedMsg struct {
	ChatID int
	Detail string
}

// Model is a turn-taking chat over one conversation thread. Input is
// disabled while a submission is outstanding; a failed submission restores
// the typed text.
type Model struct {
	id     int
	thread Thread
	send   SendFunc

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model
	reveal   typewriter.Model

	// revealing is the index of the message being revealed, -1 when none.
	revealing int
	errText   string
	loading   bool
	width     int
	height    int
}

var nextID int

// New creates a chat bound to a send function.
func New(send SendFunc, placeholder string, revealInterval time.Duration) Model {
	nextID++

	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 0

	return Model{
		id:        nextID,
		send:      send,
		input:     input,
		viewport:  viewport.New(80, 20),
		spin:      spinner.New(),
		reveal:    typewriter.New(revealInterval),
		revealing: -1,
	}
}

// ID returns the chat's routing ID.
func (m Model) ID() int { return m.id }

// Err returns the scoped error text, empty when none.
func (m Model) Err() string { return m.errText }

// SetHistory replaces the thread with seeded history.
func (m *Model) SetHistory(history []news.ChatMessage) {
	m.thread = NewThread(history)
	m.revealing = -1
	m.errText = ""
	m.loading = false
	m.refresh()
	m.viewport.GotoBottom()
}

// SetLoading toggles the initial-history loading state.
func (m *Model) SetLoading(v bool) tea.Cmd {
	m.loading = v
	if v {
		return m.spin.Start("Loading chat history...")
	}
	m.spin.Stop()
	return nil
}

// Focus gives the input key focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes key focus from the input.
func (m *Model) Blur() {
	m.input.Blur()
}

// SetSize updates component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 4
	m.viewport.Width = width
	vh := height - 4
	if vh < 3 {
		vh = 3
	}
	m.viewport.Height = vh
	m.refresh()
}

// Update handles chat messages and input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.submit()
		case "esc":
			m.errText = ""
		}

	case ReplyMsg:
		if msg.ChatID != m.id {
			return m, nil
		}
		m.thread.Confirm(msg.UserMessageID, msg.UserThreadID)
		m.thread.AppendAI(msg.Reply)
		m.spin.Stop()
		cmds = append(cmds, m.input.Focus())
		if msg.Reply.Author == news.AuthorAI && !msg.Reply.IsInitData {
			m.revealing = m.thread.Len() - 1
			cmds = append(cmds, m.reveal.Start(msg.Reply.Content))
		}
		m.refresh()
		m.viewport.GotoBottom()
		return m, tea.Batch(cmds...)

	case SendFailedMsg:
		if msg.ChatID != m.id {
			return m, nil
		}
		restored := m.thread.Rollback()
		m.input.SetValue(restored)
		m.errText = msg.Detail
		m.spin.Stop()
		m.refresh()
		return m, m.input.Focus()

	case HistoryMsg:
		if msg.ChatID != m.id {
			return m, nil
		}
		m.SetHistory(msg.Messages)
		m.spin.Stop()
		m.loading = false
		return m, m.input.Focus()

	case HistoryFailedMsg:
		if msg.ChatID != m.id {
			return m, nil
		}
		m.loading = false
		m.errText = msg.Detail
		m.spin.Stop()
		return m, nil

	case typewriter.TickMsg:
		var cmd tea.Cmd
		m.reveal, cmd = m.reveal.Update(msg)
		m.refresh()
		m.viewport.GotoBottom()
		return m, cmd

	case typewriter.DoneMsg:
		if msg.ID == m.reveal.ID() {
			m.revealing = -1
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if !m.thread.InFlight() && !m.loading {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) submit() (Model, tea.Cmd) {
	lastAI := m.thread.LastAIContent()
	sent, ok := m.thread.Submit(m.input.Value())
	if !ok {
		return m, nil
	}

	m.errText = ""
	m.input.SetValue("")
	m.input.Blur()
	m.refresh()
	m.viewport.GotoBottom()

	out := Outgoing{
		ChatID:          m.id,
		ThreadID:        sent.ThreadID,
		ParentMessageID: sent.ParentMessageID,
		LastAIContent:   lastAI,
		Text:            sent.Content,
	}
	return m, tea.Batch(m.spin.Start("Waiting for answer..."), m.send(out))
}
