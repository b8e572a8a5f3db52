package app

import "newsdigest/sdk/news"

// snapshotLoadedMsg carries a fresh server snapshot. Seq is the fetch tag
// it was requested with; stale tags are dropped on arrival.
type snapshotLoadedMsg struct {
	Seq      int
	Snapshot *news.InitSnapshot
}

// snapshotFailedMsg reports a failed snapshot fetch.
type snapshotFailedMsg struct {
	Seq    int
	Detail string
}

// surveyClosedMsg signals that the preference survey produced a final
// preference summary. The survey thread is retired and the snapshot
// refetched; the server has moved past collect_news_preference.
type surveyClosedMsg struct {
	ChatID        int
	UserMessageID string
}
