package summary

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"newsdigest/internal/components/spinner"
	"newsdigest/sdk/news"
)

// FetchFunc requests a summary list for a selector; it must resolve to a
// LoadedMsg carrying the same seq and selector, or a LoadFailedMsg.
type FetchFunc func(seq int, sel news.Selector) tea.Cmd

// ExpandFunc requests expanded content for one item; it must resolve to an
// ExpandedMsg or ExpandFailedMsg for that item.
type ExpandFunc func(summaryID int) tea.Cmd

// FeedbackFunc records like/dislike for a selector, fire-and-forget.
type FeedbackFunc func(sel news.Selector, action news.LikeDislikeAction) tea.Cmd

// LoadedMsg replaces the item list wholesale. Seq echoes the fetch it
// answers; a reply from a superseded fetch is dropped.
type LoadedMsg struct {
	Seq      int
	Selector news.Selector
	Items    []news.SummaryItem
}

// LoadFailedMsg reports a failed summary fetch.
type LoadFailedMsg struct {
	Seq    int
	Detail string
}

// FeedbackFailedMsg reports a failed like/dislike submission. It never
// touches fetch state.
type FeedbackFailedMsg struct {
	Detail string
}

// ExpandedMsg carries the expanded content for one item.
type ExpandedMsg struct {
	ID   int
	Item news.SummaryItem
}

// ExpandFailedMsg returns one item to Collapsed, retryable.
type ExpandFailedMsg struct {
	ID     int
	Detail string
}

type focusArea int

const (
	focusList focusArea = iota
	focusOptions
)

type optionField int

const (
	fieldChunking optionField = iota
	fieldPreference
	fieldPeriod
	fieldStartDate
	fieldCount
)

// Model is the summary browser: a categorized item list with per-item
// expand state plus the options form driving refetches.
type Model struct {
	fetch    FetchFunc
	expand   ExpandFunc
	feedback FeedbackFunc

	categories []Category
	options    news.SummaryOptions
	allDates   []string
	choices    []string
	choiceIdx  int

	// lastSelector keys like/dislike; nil until a list has loaded.
	lastSelector *news.Selector

	// fetchSeq numbers fetches so a slow reply cannot clobber a newer one.
	fetchSeq int

	focus    focusArea
	field    optionField
	cursor   int
	fetching bool
	errText  string
	notice   string

	viewport viewport.Model
	spin     spinner.Model
	width    int
	height   int
	now      func() time.Time
}

// New creates a summary browser.
func New(fetch FetchFunc, expand ExpandFunc, feedback FeedbackFunc) Model {
	return Model{
		fetch:    fetch,
		expand:   expand,
		feedback: feedback,
		options: news.SummaryOptions{
			Chunking:              news.ChunkingAggregateDaily,
			PreferenceApplication: news.ApplyPreference,
			PeriodType:            news.PeriodWeekly,
		},
		viewport: viewport.New(80, 20),
		spin:     spinner.New(),
		now:      time.Now,
	}
}

// SetClock overrides the clock, for tests.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// Load starts an externally driven fetch, e.g. for a past period picked in
// the side panel.
func (m *Model) Load(sel news.Selector) tea.Cmd {
	m.fetchSeq++
	m.fetching = true
	m.errText = ""
	m.notice = ""
	m.focus = focusList
	return tea.Batch(
		m.spin.Start("Loading summary..."),
		m.fetch(m.fetchSeq, sel),
	)
}

// Seed installs the snapshot's latest summary and option defaults. The
// seeded list is keyed by the resolved default selector.
func (m *Model) Seed(items []news.SummaryItem, defaults *news.SummaryOptions, availableDates []string) {
	if defaults != nil {
		m.options = *defaults
	}
	m.allDates = availableDates
	m.resetChoices()

	m.categories = Categorize(items)
	m.cursor = 0
	m.errText = ""
	if len(items) > 0 {
		sel := m.currentSelector()
		m.lastSelector = &sel
	} else {
		m.lastSelector = nil
	}
	m.refresh()
}

// Empty reports whether no items are shown.
func (m Model) Empty() bool {
	return len(m.categories) == 0
}

// Err returns the scoped error text.
func (m Model) Err() string { return m.errText }

// Options returns the current form options.
func (m Model) Options() news.SummaryOptions { return m.options }

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	vh := height - 6
	if vh < 3 {
		vh = 3
	}
	m.viewport.Height = vh
	m.refresh()
}

// Update handles browser messages and input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case LoadedMsg:
		if msg.Seq != m.fetchSeq {
			return m, nil
		}
		m.fetching = false
		m.spin.Stop()
		m.categories = Categorize(msg.Items)
		m.cursor = 0
		m.errText = ""
		if len(msg.Items) > 0 {
			sel := msg.Selector
			m.lastSelector = &sel
		} else {
			m.lastSelector = nil
		}
		m.refresh()
		return m, nil

	case LoadFailedMsg:
		if msg.Seq != m.fetchSeq {
			return m, nil
		}
		m.fetching = false
		m.spin.Stop()
		m.errText = msg.Detail
		return m, nil

	case FeedbackFailedMsg:
		m.notice = ""
		m.errText = msg.Detail
		return m, nil

	case ExpandedMsg:
		if it := m.itemByID(msg.ID); it != nil {
			it.applyExpanded(msg.Item)
			m.refresh()
		}
		return m, nil

	case ExpandFailedMsg:
		if it := m.itemByID(msg.ID); it != nil {
			it.expandFailed()
			m.errText = msg.Detail
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.fetching {
		return m, nil
	}

	switch msg.String() {
	case "o":
		if m.focus == focusList {
			m.focus = focusOptions
		} else {
			m.focus = focusList
		}
		return m, nil
	case "esc":
		m.errText = ""
		m.notice = ""
		return m, nil
	}

	if m.focus == focusOptions {
		return m.handleOptionsKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}
	case "down", "j":
		if m.cursor < m.itemCount()-1 {
			m.cursor++
			m.refresh()
		}
	case "enter":
		return m.toggleCursorItem()
	case "L":
		return m.sendFeedback(news.ActionLike)
	case "D":
		return m.sendFeedback(news.ActionDislike)
	}
	return m, nil
}

func (m Model) handleOptionsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.field > 0 {
			m.field--
		}
	case "down", "j", "tab":
		if m.field < fieldCount-1 {
			m.field++
		}
	case "left", "h":
		m.cycleField(-1)
	case "right", "l":
		m.cycleField(1)
	case "enter":
		return m.submit()
	}
	m.refresh()
	return m, nil
}

func (m *Model) cycleField(dir int) {
	switch m.field {
	case fieldChunking:
		m.options.Chunking = cycle(chunkingChoices, m.options.Chunking, dir)
	case fieldPreference:
		m.options.PreferenceApplication = cycle(preferenceChoices, m.options.PreferenceApplication, dir)
	case fieldPeriod:
		m.options.PeriodType = cycle(periodChoices, m.options.PeriodType, dir)
		m.resetChoices()
	case fieldStartDate:
		if n := len(m.choices); n > 0 {
			m.choiceIdx = (m.choiceIdx + dir + n) % n
		}
	}
}

func cycle[T comparable](choices []T, current T, dir int) T {
	for i, c := range choices {
		if c == current {
			return choices[(i+dir+len(choices))%len(choices)]
		}
	}
	return choices[0]
}

// submit resolves the sentinel label now and replaces the whole list,
// discarding all per-item expansion state.
func (m Model) submit() (Model, tea.Cmd) {
	sel := m.currentSelector()
	m.fetchSeq++
	m.fetching = true
	m.errText = ""
	m.notice = ""
	m.focus = focusList
	return m, tea.Batch(
		m.spin.Start("Generating news summaries... this may take several minutes"),
		m.fetch(m.fetchSeq, sel),
	)
}

func (m Model) sendFeedback(action news.LikeDislikeAction) (Model, tea.Cmd) {
	if m.Empty() || m.lastSelector == nil {
		return m, nil
	}
	m.notice = "Feedback sent: " + string(action)
	return m, m.feedback(*m.lastSelector, action)
}

func (m Model) toggleCursorItem() (Model, tea.Cmd) {
	it := m.itemAt(m.cursor)
	if it == nil {
		return m, nil
	}
	if it.toggle() == actionFetch {
		id := it.ID
		m.refresh()
		return m, m.expand(id)
	}
	m.refresh()
	return m, nil
}

func (m *Model) resetChoices() {
	m.choices = FilterStartDates(m.allDates, m.options.PeriodType, m.now())
	m.choiceIdx = 0
}

func (m Model) currentSelector() news.Selector {
	label := ""
	if len(m.choices) > 0 {
		label = m.choices[m.choiceIdx]
	}
	return news.Selector{
		StartDate: ResolveStartDate(label, m.now()),
		Option:    m.options,
	}
}

func (m Model) itemCount() int {
	n := 0
	for _, c := range m.categories {
		n += len(c.Items)
	}
	return n
}

func (m *Model) itemAt(index int) *Item {
	for ci := range m.categories {
		items := m.categories[ci].Items
		if index < len(items) {
			return &items[index]
		}
		index -= len(items)
	}
	return nil
}

func (m *Model) itemByID(id int) *Item {
	for ci := range m.categories {
		for ii := range m.categories[ci].Items {
			if m.categories[ci].Items[ii].ID == id {
				return &m.categories[ci].Items[ii]
			}
		}
	}
	return nil
}
