package news

// ServerMode is the backend's view of where the user is in the onboarding
// funnel. The UI derives its top-level mode from it on every snapshot fetch.
type ServerMode string

const (
	ServerModeCollectRSSFeeds   ServerMode = "collect_rss_feeds"
	ServerModeCollectPreference ServerMode = "collect_news_preference"
	ServerModeShowSummary       ServerMode = "show_summary"
)

// Author identifies who produced a chat message.
type Author string

const (
	AuthorUser Author = "user"
	AuthorAI   Author = "ai"
)

// ChatMessage is one turn in a conversation thread. Messages form a
// singly-linked ancestry via ParentMessageID within a thread; the UI
// materializes the chain as a flat tail-appended list.
type ChatMessage struct {
	ThreadID        string `json:"thread_id,omitempty"`
	MessageID       string `json:"message_id,omitempty"`
	ParentMessageID string `json:"parent_message_id,omitempty"`
	Content         string `json:"content"`
	Author          Author `json:"author"`

	// IsInitData marks messages that were not produced this session.
	// Client-side only; historical messages never get the reveal effect.
	IsInitData bool `json:"-"`
}

// SummaryPeriod is one generated summary window, used for the side panel.
type SummaryPeriod struct {
	StartDateTimestamp int64 `json:"start_date_timestamp"`
	EndDateTimestamp   int64 `json:"end_date_timestamp"`
	ID                 int   `json:"id"`
}

// InitSnapshot is the authoritative server state fetched at mount and after
// every mode-completing action. It is superseded wholesale by the next
// fetch; nothing merges into it.
type InitSnapshot struct {
	Mode                ServerMode      `json:"mode"`
	LatestSummary       []SummaryItem   `json:"latest_summary,omitempty"`
	DefaultOptions      *SummaryOptions `json:"default_options,omitempty"`
	AvailableStartDates []string        `json:"available_period_start_dates,omitempty"`
	Periods             []SummaryPeriod `json:"news_summary_periods,omitempty"`
	PreferenceHistory   []ChatMessage   `json:"preference_conversation_history,omitempty"`
}
