package prefedit

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"newsdigest/internal/components/spinner"
	"newsdigest/internal/styles"
)

// LoadFunc fetches the stored preference text; resolves to LoadedMsg or
// LoadFailedMsg.
type LoadFunc func() tea.Cmd

// SaveFunc persists edited preference text; resolves to SavedMsg or
// SaveFailedMsg.
type SaveFunc func(text string) tea.Cmd

// LoadedMsg carries the stored preference summary.
type LoadedMsg struct {
	Text string
}

// LoadFailedMsg reports a failed preference fetch.
type LoadFailedMsg struct {
	Detail string
}

// SavedMsg confirms a successful save.
type SavedMsg struct{}

// SaveFailedMsg reports a failed save; the edited text is kept.
type SaveFailedMsg struct {
	Detail string
}

// Model is the free-form preference editor shown once a preference
// already exists.
type Model struct {
	load LoadFunc
	save SaveFunc

	editor  textarea.Model
	spin    spinner.Model
	loading bool
	saving  bool
	errText string
	notice  string
	width   int
	height  int
}

// New creates the editor. Content arrives via LoadedMsg after Init.
func New(load LoadFunc, save SaveFunc) Model {
	ed := textarea.New()
	ed.Placeholder = "Describe the news you want to see..."
	ed.CharLimit = 0
	return Model{
		load:    load,
		save:    save,
		editor:  ed,
		spin:    spinner.New(),
		loading: true,
	}
}

// Init starts the preference fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.editor.Focus())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.editor.SetWidth(width - 4)
	eh := height - 6
	if eh < 3 {
		eh = 3
	}
	m.editor.SetHeight(eh)
}

// Update handles editor messages and input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.saving || m.loading {
			return m, nil
		}
		if msg.String() == "ctrl+s" {
			text := strings.TrimSpace(m.editor.Value())
			if text == "" {
				m.errText = "Preference cannot be empty"
				return m, nil
			}
			m.saving = true
			m.errText = ""
			m.notice = ""
			return m, tea.Batch(m.spin.Start("Saving preference..."), m.save(text))
		}

	case LoadedMsg:
		m.loading = false
		m.errText = ""
		m.editor.SetValue(msg.Text)
		return m, nil

	case LoadFailedMsg:
		m.loading = false
		m.errText = msg.Detail
		return m, nil

	case SavedMsg:
		m.saving = false
		m.spin.Stop()
		m.notice = "Preference saved"
		return m, nil

	case SaveFailedMsg:
		m.saving = false
		m.spin.Stop()
		m.errText = msg.Detail
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View renders the editor with its status line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render("Your news preference") + "\n\n")

	switch {
	case m.loading:
		b.WriteString(styles.MutedStyle().Render("Loading preference...") + "\n")
	default:
		if m.errText != "" {
			b.WriteString(styles.ErrorStyle().Render(m.errText) + "\n")
		}
		if m.notice != "" {
			b.WriteString(styles.SuccessStyle().Render(m.notice) + "\n")
		}
		b.WriteString(m.editor.View() + "\n")
		if m.spin.IsActive() {
			b.WriteString(m.spin.View() + "\n")
		} else {
			b.WriteString(styles.MutedStyle().Render("ctrl+s: save") + "\n")
		}
	}
	return b.String()
}
