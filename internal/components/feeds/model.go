package feeds

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"newsdigest/internal/components/spinner"
	"newsdigest/sdk/news"
)

// UploadFunc uploads an OPML file (or the default set when path is empty
// and useDefault is true); resolves to UploadedMsg or UploadFailedMsg.
type UploadFunc func(path string, useDefault bool) tea.Cmd

// ListFunc fetches subscriptions; resolves to LoadedMsg or LoadFailedMsg.
type ListFunc func() tea.Cmd

// SubscribeFunc adds one feed; resolves to SubscribedMsg or SubscribeFailedMsg.
type SubscribeFunc func(feed news.RSSFeed) tea.Cmd

// DeleteFunc removes one feed; resolves to DeletedMsg or DeleteFailedMsg.
type DeleteFunc func(feedID int) tea.Cmd

// LoadedMsg replaces the subscription list.
type LoadedMsg struct {
	Feeds []news.RSSFeed
}

// LoadFailedMsg reports a failed subscription fetch.
type LoadFailedMsg struct {
	Detail string
}

// UploadedMsg reports a finished OPML (or default-set) upload. The owner
// also watches this to advance the onboarding flow.
type UploadedMsg struct{}

// UploadFailedMsg reports a failed upload.
type UploadFailedMsg struct {
	Detail string
}

// SubscribedMsg carries the newly added feed with its assigned ID.
type SubscribedMsg struct {
	Feed news.RSSFeed
}

// SubscribeFailedMsg reports a failed manual addition.
type SubscribeFailedMsg struct {
	Detail string
}

// DeletedMsg confirms a feed removal.
type DeletedMsg struct {
	ID int
}

// DeleteFailedMsg reports a failed removal.
type DeleteFailedMsg struct {
	Detail string
}

type zone int

const (
	zonePicker zone = iota
	zoneForm
	zoneList
	zoneCount
)

// Model is the RSS feed collection view: OPML upload, manual feed
// addition, and the subscription list. Each operation keeps its own error
// so one failure never clobbers another's notice.
type Model struct {
	upload    UploadFunc
	list      ListFunc
	subscribe SubscribeFunc
	remove    DeleteFunc

	picker     filepicker.Model
	titleInput textinput.Model
	urlInput   textinput.Model
	feeds      []news.RSSFeed

	zone       zone
	formField  int
	listCursor int
	selected   string
	uploading  bool

	uploadErr string
	addErr    string
	deleteErr string
	fetchErr  string

	spin   spinner.Model
	width  int
	height int
}

// New creates the feed collection view.
func New(upload UploadFunc, list ListFunc, subscribe SubscribeFunc, remove DeleteFunc) Model {
	picker := filepicker.New()
	picker.AllowedTypes = []string{".opml"}
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}

	title := textinput.New()
	title.Placeholder = "Feed title"
	url := textinput.New()
	url.Placeholder = "https://example.com/rss"

	return Model{
		upload:     upload,
		list:       list,
		subscribe:  subscribe,
		remove:     remove,
		picker:     picker,
		titleInput: title,
		urlInput:   url,
		spin:       spinner.New(),
	}
}

// Init starts the file picker and loads current subscriptions.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), m.list())
}

// Feeds returns the current subscription list.
func (m Model) Feeds() []news.RSSFeed { return m.feeds }

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.titleInput.Width = width / 2
	m.urlInput.Width = width / 2
	ph := height / 3
	if ph < 5 {
		ph = 5
	}
	m.picker.Height = ph
}

// Update handles feed view messages and input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, model, cmd := m.handleKey(msg); handled {
			return model, cmd
		}

	case LoadedMsg:
		m.feeds = msg.Feeds
		m.fetchErr = ""
		if m.listCursor >= len(m.feeds) && len(m.feeds) > 0 {
			m.listCursor = len(m.feeds) - 1
		}
		return m, nil

	case LoadFailedMsg:
		m.fetchErr = msg.Detail
		return m, nil

	case UploadedMsg:
		m.uploading = false
		m.spin.Stop()
		m.uploadErr = ""
		m.selected = ""
		return m, m.list()

	case UploadFailedMsg:
		m.uploading = false
		m.spin.Stop()
		m.uploadErr = msg.Detail
		return m, nil

	case SubscribedMsg:
		m.uploading = false
		m.spin.Stop()
		m.addErr = ""
		m.feeds = append(m.feeds, msg.Feed)
		m.titleInput.SetValue("")
		m.urlInput.SetValue("")
		return m, nil

	case SubscribeFailedMsg:
		m.uploading = false
		m.spin.Stop()
		m.addErr = msg.Detail
		return m, nil

	case DeletedMsg:
		m.deleteErr = ""
		kept := m.feeds[:0]
		for _, f := range m.feeds {
			if f.ID != msg.ID {
				kept = append(kept, f)
			}
		}
		m.feeds = kept
		if m.listCursor >= len(m.feeds) && len(m.feeds) > 0 {
			m.listCursor = len(m.feeds) - 1
		}
		return m, nil

	case DeleteFailedMsg:
		m.deleteErr = msg.Detail
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateChildren(msg)
}

// handleKey processes zone switching and zone-specific actions. Returns
// handled=false for keys the focused child should consume.
func (m Model) handleKey(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.uploading {
		return true, m, nil
	}

	switch msg.String() {
	case "tab":
		m.zone = (m.zone + 1) % zoneCount
		return true, m, m.syncFocus()
	case "esc":
		m.uploadErr = ""
		m.addErr = ""
		m.deleteErr = ""
		m.fetchErr = ""
		return true, m, nil
	}

	switch m.zone {
	case zonePicker:
		switch msg.String() {
		case "u":
			model, cmd := m.startUpload(false)
			return true, model, cmd
		case "d":
			model, cmd := m.startUpload(true)
			return true, model, cmd
		}
	case zoneForm:
		switch msg.String() {
		case "enter":
			model, cmd := m.submitForm()
			return true, model, cmd
		case "up", "down":
			m.formField = 1 - m.formField
			return true, m, m.syncFocus()
		}
	case zoneList:
		switch msg.String() {
		case "up", "k":
			if m.listCursor > 0 {
				m.listCursor--
			}
			return true, m, nil
		case "down", "j":
			if m.listCursor < len(m.feeds)-1 {
				m.listCursor++
			}
			return true, m, nil
		case "x", "delete":
			if m.listCursor < len(m.feeds) {
				m.deleteErr = ""
				return true, m, m.remove(m.feeds[m.listCursor].ID)
			}
			return true, m, nil
		}
	}
	return false, m, nil
}

func (m Model) updateChildren(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.zone == zonePicker {
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)

		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.selected = path
			m.uploadErr = ""
		}
		if ok, _ := m.picker.DidSelectDisabledFile(msg); ok {
			m.selected = ""
			m.uploadErr = "Please select a valid .opml file"
		}
	}

	if m.zone == zoneForm && !m.uploading {
		m.titleInput, cmd = m.titleInput.Update(msg)
		cmds = append(cmds, cmd)
		m.urlInput, cmd = m.urlInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startUpload validates client-side before any network call.
func (m Model) startUpload(useDefault bool) (Model, tea.Cmd) {
	if !useDefault {
		if m.selected == "" {
			m.uploadErr = "Please select an OPML file first"
			return m, nil
		}
		if !strings.HasSuffix(m.selected, ".opml") {
			m.uploadErr = "Please select a valid .opml file"
			return m, nil
		}
	}
	m.uploading = true
	m.uploadErr = ""
	path := ""
	if !useDefault {
		path = m.selected
	}
	return m, tea.Batch(m.spin.Start("Uploading feeds..."), m.upload(path, useDefault))
}

func (m Model) submitForm() (Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	url := strings.TrimSpace(m.urlInput.Value())
	if title == "" || url == "" {
		m.addErr = "Feed title and URL are both required"
		return m, nil
	}
	m.uploading = true
	m.addErr = ""
	return m, tea.Batch(
		m.spin.Start("Adding feed..."),
		m.subscribe(news.RSSFeed{Title: title, FeedURL: url}),
	)
}

func (m *Model) syncFocus() tea.Cmd {
	m.titleInput.Blur()
	m.urlInput.Blur()
	if m.zone == zoneForm {
		if m.formField == 0 {
			return m.titleInput.Focus()
		}
		return m.urlInput.Focus()
	}
	return nil
}
