package app

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"newsdigest/internal/components/chat"
	"newsdigest/internal/components/feeds"
	"newsdigest/internal/components/prefedit"
	"newsdigest/internal/components/summary"
	"newsdigest/internal/config"
	"newsdigest/sdk/news"
)

// fetchSnapshot requests the authoritative server state. The seq tag is
// echoed back so Update can discard responses that were superseded by a
// later fetch.
func (m Model) fetchSnapshot(seq int) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		snapshot, err := client.Initialize(context.Background())
		if err != nil {
			logger.Error("initialize failed", zap.Error(err))
			return snapshotFailedMsg{Seq: seq, Detail: errDetail(err)}
		}
		return snapshotLoadedMsg{Seq: seq, Snapshot: snapshot}
	}
}

// sendSurveyAnswer submits one survey turn. A response carrying a
// preference summary closes the survey instead of continuing it.
func (m Model) sendSurveyAnswer(out chat.Outgoing) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		req := &news.PreferenceSurveyRequest{
			Question: out.LastAIContent,
			Answer:   out.Text,
		}
		if out.ParentMessageID != "" {
			req.ParentMessageID = news.String(out.ParentMessageID)
		}
		resp, err := client.PreferenceSurvey(context.Background(), req)
		if err != nil {
			logger.Error("preference survey failed", zap.Error(err))
			return chat.SendFailedMsg{ChatID: out.ChatID, Detail: errDetail(err)}
		}
		if resp.PreferenceSummary != "" {
			return surveyClosedMsg{ChatID: out.ChatID, UserMessageID: resp.ParentMessageID}
		}
		return chat.ReplyMsg{
			ChatID:        out.ChatID,
			UserMessageID: resp.ParentMessageID,
			Reply: news.ChatMessage{
				MessageID:       resp.NextQuestionMessageID,
				ParentMessageID: resp.ParentMessageID,
				Content:         resp.NextQuestion,
				Author:          news.AuthorAI,
			},
		}
	}
}

// sendResearchQuestion submits one research turn.
func (m Model) sendResearchQuestion(out chat.Outgoing) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		req := &news.ResearchRequest{Question: out.Text}
		if out.ParentMessageID != "" {
			req.ParentMessageID = news.String(out.ParentMessageID)
		}
		if out.ThreadID != "" {
			req.ThreadID = news.String(out.ThreadID)
		}
		resp, err := client.ResearchAnswer(context.Background(), req)
		if err != nil {
			logger.Error("research question failed", zap.Error(err))
			return chat.SendFailedMsg{ChatID: out.ChatID, Detail: errDetail(err)}
		}
		return chat.ReplyMsg{
			ChatID:        out.ChatID,
			UserMessageID: resp.Question.MessageID,
			UserThreadID:  resp.Question.ThreadID,
			Reply:         resp.Answer,
		}
	}
}

func (m Model) fetchResearchHistory(chatID int) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		history, err := client.ResearchHistory(context.Background())
		if err != nil {
			logger.Error("research history failed", zap.Error(err))
			return chat.HistoryFailedMsg{ChatID: chatID, Detail: errDetail(err)}
		}
		return chat.HistoryMsg{ChatID: chatID, Messages: history}
	}
}

func (m Model) fetchSummary(seq int, sel news.Selector) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		items, err := client.NewsSummary(context.Background(), sel)
		if err != nil {
			logger.Error("summary fetch failed",
				zap.String("start_date", sel.StartDate), zap.Error(err))
			return summary.LoadFailedMsg{Seq: seq, Detail: errDetail(err)}
		}
		return summary.LoadedMsg{Seq: seq, Selector: sel, Items: items}
	}
}

func (m Model) expandSummary(summaryID int) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		item, err := client.ExpandSummary(context.Background(), summaryID)
		if err != nil {
			logger.Error("expand failed", zap.Int("summary_id", summaryID), zap.Error(err))
			return summary.ExpandFailedMsg{ID: summaryID, Detail: errDetail(err)}
		}
		return summary.ExpandedMsg{ID: summaryID, Item: *item}
	}
}

func (m Model) sendFeedback(sel news.Selector, action news.LikeDislikeAction) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		if err := client.LikeDislike(context.Background(), sel, action); err != nil {
			logger.Error("feedback failed", zap.String("action", string(action)), zap.Error(err))
			return summary.FeedbackFailedMsg{Detail: errDetail(err)}
		}
		return nil
	}
}

// uploadFeeds reads the OPML file inside the command so a slow disk never
// blocks the event loop. An empty path with useDefault subscribes the
// default feed set.
func (m Model) uploadFeeds(path string, useDefault bool) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		var err error
		if useDefault {
			err = client.UploadRSSFeeds(context.Background(), nil, "", true)
		} else {
			var f *os.File
			f, err = os.Open(path)
			if err != nil {
				return feeds.UploadFailedMsg{Detail: err.Error()}
			}
			defer f.Close()
			err = client.UploadRSSFeeds(context.Background(), f, filepath.Base(path), false)
		}
		if err != nil {
			logger.Error("feed upload failed", zap.Error(err))
			return feeds.UploadFailedMsg{Detail: errDetail(err)}
		}
		return feeds.UploadedMsg{}
	}
}

func (m Model) listFeeds() tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		list, err := client.SubscribedRSSFeeds(context.Background())
		if err != nil {
			logger.Error("feed list failed", zap.Error(err))
			return feeds.LoadFailedMsg{Detail: errDetail(err)}
		}
		return feeds.LoadedMsg{Feeds: list}
	}
}

func (m Model) subscribeFeed(feed news.RSSFeed) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		id, err := client.SubscribeRSSFeed(context.Background(), feed)
		if err != nil {
			logger.Error("feed subscribe failed", zap.String("url", feed.FeedURL), zap.Error(err))
			return feeds.SubscribeFailedMsg{Detail: errDetail(err)}
		}
		feed.ID = id
		return feeds.SubscribedMsg{Feed: feed}
	}
}

func (m Model) deleteFeed(feedID int) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		if err := client.DeleteRSSFeed(context.Background(), feedID); err != nil {
			logger.Error("feed delete failed", zap.Int("feed_id", feedID), zap.Error(err))
			return feeds.DeleteFailedMsg{Detail: errDetail(err)}
		}
		return feeds.DeletedMsg{ID: feedID}
	}
}

func (m Model) loadPreference() tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		text, err := client.Preference(context.Background())
		if err != nil {
			logger.Error("preference load failed", zap.Error(err))
			return prefedit.LoadFailedMsg{Detail: errDetail(err)}
		}
		return prefedit.LoadedMsg{Text: text}
	}
}

func (m Model) savePreference(text string) tea.Cmd {
	client, logger := m.client, m.logger
	return func() tea.Msg {
		if err := client.SavePreference(context.Background(), text); err != nil {
			logger.Error("preference save failed", zap.Error(err))
			return prefedit.SaveFailedMsg{Detail: errDetail(err)}
		}
		return prefedit.SavedMsg{}
	}
}

// savePreferences writes the local preferences file. Failures are
// log-only; a broken config dir must not disturb the session.
func (m Model) savePreferences() tea.Cmd {
	prefs, logger := m.prefs, m.logger
	return func() tea.Msg {
		if err := config.SavePreferences(prefs); err != nil {
			logger.Warn("preferences save failed", zap.Error(err))
		}
		return nil
	}
}

// errDetail surfaces the backend's detail string verbatim when present.
func errDetail(err error) string {
	return err.Error()
}
