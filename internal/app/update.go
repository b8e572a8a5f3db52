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
	"newsdigest/internal/components/typewriter"
	"newsdigest/sdk/news"
)

// Update is the single transition function. Every state change in the
// program happens here or in a child Update it calls.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case sidebar.SelectMsg:
		return m.navigate(msg.ID)

	case snapshotLoadedMsg:
		if msg.Seq != m.fetchSeq {
			return m, nil
		}
		return m.applySnapshot(msg.Snapshot)

	case snapshotFailedMsg:
		if msg.Seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		m.spin.Stop()
		if m.snapshot == nil {
			m.initErr = msg.Detail
		} else {
			m.notice = msg.Detail
		}
		return m, nil

	case surveyClosedMsg:
		// The server has a preference now; close the thread with a plain
		// confirmation and let the refetched snapshot replace the screen.
		var cmd tea.Cmd
		m.survey, cmd = m.survey.Update(chat.ReplyMsg{
			ChatID:        msg.ChatID,
			UserMessageID: msg.UserMessageID,
			Reply: news.ChatMessage{
				Content:    "Your preference is saved. Generating your first summary...",
				Author:     news.AuthorAI,
				IsInitData: true,
			},
		})
		m.fetchSeq++
		m.loading = true
		m.logger.Info("preference survey closed")
		return m, tea.Batch(
			cmd,
			m.spin.Start("Generating your summary..."),
			m.fetchSnapshot(m.fetchSeq),
		)

	case feeds.UploadedMsg:
		var cmd tea.Cmd
		m.feedsUI, cmd = m.feedsUI.Update(msg)
		if m.snapshot != nil && m.snapshot.Mode == news.ServerModeCollectRSSFeeds {
			m.fetchSeq++
			m.loading = true
			return m, tea.Batch(cmd, m.spin.Start("Loading..."), m.fetchSnapshot(m.fetchSeq))
		}
		return m, cmd

	case feeds.LoadedMsg, feeds.LoadFailedMsg, feeds.UploadFailedMsg,
		feeds.SubscribedMsg, feeds.SubscribeFailedMsg, feeds.DeletedMsg, feeds.DeleteFailedMsg:
		var cmd tea.Cmd
		m.feedsUI, cmd = m.feedsUI.Update(msg)
		return m, cmd

	case chat.HistoryFailedMsg:
		// A failed research history fetch must re-arm the seed, or the next
		// visit would silently start an unparented thread.
		if msg.ChatID == m.research.ID() {
			m.researchSeeded = false
		}
		return m.routeChats(msg)

	case chat.ReplyMsg, chat.SendFailedMsg, chat.HistoryMsg,
		typewriter.TickMsg, typewriter.DoneMsg:
		return m.routeChats(msg)

	case summary.LoadedMsg:
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		// Remember the options that produced a summary, so the next run's
		// form opens the way the user left it.
		opts := m.summary.Options()
		m.prefs.SummaryOptions = &opts
		return m, tea.Batch(cmd, m.savePreferences())

	case summary.LoadFailedMsg, summary.FeedbackFailedMsg,
		summary.ExpandedMsg, summary.ExpandFailedMsg:
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		return m, cmd

	case prefedit.LoadedMsg, prefedit.LoadFailedMsg, prefedit.SavedMsg, prefedit.SaveFailedMsg:
		var cmd tea.Cmd
		m.prefEdit, cmd = m.prefEdit.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		return m.routeSpinners(msg)
	}

	// Component-internal traffic (filepicker reads, cursor blinks) goes to
	// whichever component the mode owns.
	return m.routeToActive(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+b":
		m.sidebarFocused = !m.sidebarFocused
		if m.sidebarFocused {
			m.sidebar.Focus()
			m.blurActive()
			return m, nil
		}
		m.sidebar.Blur()
		return m, m.focusActive()
	case "r":
		if m.snapshot == nil && m.initErr != "" {
			m.initErr = ""
			m.loading = true
			m.fetchSeq++
			return m, tea.Batch(m.spin.Start("Connecting..."), m.fetchSnapshot(m.fetchSeq))
		}
	}

	if m.loading && m.snapshot == nil {
		return m, nil
	}

	if m.sidebarFocused {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}
	return m.routeToActive(msg)
}

// navigate applies a sidebar selection, enforcing the onboarding guards:
// the survey needs feeds, summary and research need a finished funnel.
func (m Model) navigate(id string) (tea.Model, tea.Cmd) {
	serverMode := news.ServerMode("")
	if m.snapshot != nil {
		serverMode = m.snapshot.Mode
	}

	var cmd tea.Cmd
	switch id {
	case actionUploadFeeds:
		m.mode = ModeCollectRSSFeeds
		cmd = m.feedsUI.Init()

	case actionPreference:
		if serverMode == news.ServerModeCollectRSSFeeds || serverMode == "" {
			m.notice = "Add your RSS feeds first"
			return m, nil
		}
		if serverMode == news.ServerModeShowSummary {
			m.mode = ModeEditPreference
			m.prefEdit = prefedit.New(m.loadPreference, m.savePreference)
			m.prefEdit.SetSize(m.mainWidth(), m.mainHeight())
			cmd = m.prefEdit.Init()
		} else {
			m.mode = ModeCreatePreference
		}

	case actionResearch:
		if serverMode != news.ServerModeShowSummary {
			m.notice = "Research opens once your first summary exists"
			return m, nil
		}
		m.mode = ModeNewsResearch
		if !m.researchSeeded {
			m.researchSeeded = true
			cmd = tea.Batch(m.research.SetLoading(true), m.fetchResearchHistory(m.research.ID()))
		}

	case actionSummary:
		if serverMode != news.ServerModeShowSummary {
			m.notice = "No summary yet"
			return m, nil
		}
		if m.selectedPeriodID != 0 {
			m.summary.Seed(m.snapshot.LatestSummary, m.summaryDefaults(m.snapshot), m.snapshot.AvailableStartDates)
		}
		m.selectedPeriodID = 0
		m.mode = ModeSummary

	default:
		if pid := periodID(id); pid != 0 {
			return m.openPeriod(pid)
		}
		return m, nil
	}

	m.sidebarFocused = false
	m.sidebar.Blur()
	m.refreshSidebar()
	return m, tea.Batch(cmd, m.focusActive())
}

func (m Model) openPeriod(pid int) (tea.Model, tea.Cmd) {
	if m.snapshot == nil || m.snapshot.Mode != news.ServerModeShowSummary {
		m.notice = "No summary yet"
		return m, nil
	}
	var period *news.SummaryPeriod
	for i := range m.snapshot.Periods {
		if m.snapshot.Periods[i].ID == pid {
			period = &m.snapshot.Periods[i]
			break
		}
	}
	if period == nil {
		return m, nil
	}

	m.mode = ModeSummary
	m.selectedPeriodID = pid
	m.sidebarFocused = false
	m.sidebar.Blur()
	m.refreshSidebar()

	sel := news.Selector{StartDate: periodStartDate(*period), Option: m.summary.Options()}
	fetch := m.summary.Load(sel)
	return m, tea.Batch(fetch, m.focusActive())
}

// applySnapshot replaces local state wholesale from the server snapshot
// and derives the mode from the funnel position.
func (m Model) applySnapshot(snapshot *news.InitSnapshot) (tea.Model, tea.Cmd) {
	m.snapshot = snapshot
	m.loading = false
	m.initErr = ""
	m.spin.Stop()
	m.logger.Info("snapshot applied", zap.String("mode", string(snapshot.Mode)))

	var cmd tea.Cmd
	switch snapshot.Mode {
	case news.ServerModeCollectRSSFeeds:
		m.mode = ModeCollectRSSFeeds
		cmd = m.feedsUI.Init()

	case news.ServerModeCollectPreference:
		m.mode = ModeCreatePreference
		m.survey.SetHistory(snapshot.PreferenceHistory)

	default:
		m.mode = ModeSummary
		m.selectedPeriodID = 0
		m.summary.Seed(snapshot.LatestSummary, m.summaryDefaults(snapshot), snapshot.AvailableStartDates)
	}

	m.refreshSidebar()
	return m, tea.Batch(cmd, m.focusActive())
}

// summaryDefaults prefers the options from the last run over the server's
// defaults, so the form reopens the way the user left it.
func (m Model) summaryDefaults(snapshot *news.InitSnapshot) *news.SummaryOptions {
	if m.prefs.SummaryOptions != nil {
		return m.prefs.SummaryOptions
	}
	return snapshot.DefaultOptions
}

func (m *Model) refreshSidebar() {
	m.sidebar.SetSections(buildSections(m.snapshot, m.mode, m.selectedPeriodID))
}

// routeToActive sends a key to the component the mode owns.
func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case ModeCollectRSSFeeds:
		m.feedsUI, cmd = m.feedsUI.Update(msg)
	case ModeCreatePreference:
		m.survey, cmd = m.survey.Update(msg)
	case ModeEditPreference:
		m.prefEdit, cmd = m.prefEdit.Update(msg)
	case ModeSummary:
		m.summary, cmd = m.summary.Update(msg)
	case ModeNewsResearch:
		m.research, cmd = m.research.Update(msg)
	}
	return m, cmd
}

// routeChats delivers ID-routed chat traffic to both chat instances; each
// ignores messages addressed to the other.
func (m Model) routeChats(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.survey, cmd = m.survey.Update(msg)
	cmds = append(cmds, cmd)
	m.research, cmd = m.research.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) routeSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	cmds = append(cmds, cmd)
	m.survey, cmd = m.survey.Update(msg)
	cmds = append(cmds, cmd)
	m.research, cmd = m.research.Update(msg)
	cmds = append(cmds, cmd)
	m.feedsUI, cmd = m.feedsUI.Update(msg)
	cmds = append(cmds, cmd)
	m.prefEdit, cmd = m.prefEdit.Update(msg)
	cmds = append(cmds, cmd)
	m.summary, cmd = m.summary.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) blurActive() {
	m.survey.Blur()
	m.research.Blur()
}

func (m *Model) focusActive() tea.Cmd {
	switch m.mode {
	case ModeCreatePreference:
		m.research.Blur()
		return m.survey.Focus()
	case ModeNewsResearch:
		m.survey.Blur()
		return m.research.Focus()
	}
	m.blurActive()
	return nil
}
