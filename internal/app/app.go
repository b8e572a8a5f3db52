package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"newsdigest/internal/components/chat"
	"newsdigest/internal/components/feeds"
	"newsdigest/internal/components/prefedit"
	"newsdigest/internal/components/sidebar"
	"newsdigest/internal/components/spinner"
	"newsdigest/internal/components/summary"
	"newsdigest/internal/config"
	"newsdigest/internal/markdown"
	"newsdigest/sdk/news"
)

// Mode is the top-level screen. It is derived from the server snapshot at
// every fetch and by explicit navigation, never stored server-side beyond
// the onboarding funnel position.
type Mode int

const (
	ModeCollectRSSFeeds Mode = iota
	ModeCreatePreference
	ModeEditPreference
	ModeSummary
	ModeNewsResearch
)

func (m Mode) String() string {
	switch m {
	case ModeCollectRSSFeeds:
		return "Feeds"
	case ModeCreatePreference:
		return "Preference survey"
	case ModeEditPreference:
		return "Edit preference"
	case ModeSummary:
		return "Summary"
	case ModeNewsResearch:
		return "Research"
	}
	return "Unknown"
}

const sidebarWidth = 30

// Model is the root application state. All server interaction flows
// through commands built in commands.go; Update is the only place state
// changes.
type Model struct {
	client *news.Client
	logger *zap.Logger
	prefs  *config.Preferences

	mode     Mode
	snapshot *news.InitSnapshot

	// fetchSeq tags snapshot fetches; responses carrying an older tag
	// are discarded so a slow refetch can never clobber a newer one.
	fetchSeq int
	loading  bool
	initErr  string

	sidebar  sidebar.Model
	feedsUI  feeds.Model
	survey   chat.Model
	research chat.Model
	prefEdit prefedit.Model
	summary  summary.Model
	spin     spinner.Model

	// spinTick is the first spinner tick, armed in New because Init runs
	// on a copy and could not keep the spinner marked active.
	spinTick tea.Cmd

	// selectedPeriodID is the past-summary period shown in the browser,
	// 0 when the latest summary is shown. Sidebar highlighting is derived
	// from it on every rebuild.
	selectedPeriodID int

	researchSeeded bool
	sidebarFocused bool
	notice         string
	width          int
	height         int
}

// New wires the root model to its backend client.
func New(client *news.Client, logger *zap.Logger, prefs *config.Preferences) Model {
	m := Model{
		client:  client,
		logger:  logger,
		prefs:   prefs,
		sidebar: sidebar.New(sidebarWidth),
		spin:    spinner.New(),
		loading: true,
	}
	m.feedsUI = feeds.New(m.uploadFeeds, m.listFeeds, m.subscribeFeed, m.deleteFeed)
	m.survey = chat.New(m.sendSurveyAnswer, "Answer the question...", prefs.RevealInterval)
	m.research = chat.New(m.sendResearchQuestion, "Ask about the news...", prefs.RevealInterval)
	m.prefEdit = prefedit.New(m.loadPreference, m.savePreference)
	m.summary = summary.New(m.fetchSummary, m.expandSummary, m.sendFeedback)
	m.spinTick = m.spin.Start("Connecting...")
	return m
}

// Init fetches the initial snapshot.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinTick, m.fetchSnapshot(m.fetchSeq))
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	if err := markdown.Init(m.mainWidth() - 2); err != nil {
		m.logger.Warn("markdown renderer unavailable, falling back to raw text", zap.Error(err))
	}

	m.sidebar.SetWidth(sidebarWidth)
	main := m.mainWidth()
	body := m.mainHeight()
	m.feedsUI.SetSize(main, body)
	m.survey.SetSize(main, body)
	m.research.SetSize(main, body)
	m.prefEdit.SetSize(main, body)
	m.summary.SetSize(main, body)
}

func (m Model) mainWidth() int {
	w := m.width - sidebarWidth - 1
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) mainHeight() int {
	h := m.height - 3
	if h < 5 {
		h = 5
	}
	return h
}
