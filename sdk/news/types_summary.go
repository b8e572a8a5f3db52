package news

// SummaryItem is one entry of a generated news summary.
type SummaryItem struct {
	ID              int      `json:"id"`
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	ExpandedContent string   `json:"expanded_content,omitempty"`
	ReferenceURLs   []string `json:"reference_urls,omitempty"`
	DisplayOrder    int      `json:"display_order"`
	// Clicked is sent by the backend but not acted on by any client handler.
	Clicked bool `json:"clicked"`
}

// ChunkingStrategy selects how crawled news entries are grouped before
// summarization.
type ChunkingStrategy string

const (
	ChunkingAggregateDaily      ChunkingStrategy = "aggregate_daily"
	ChunkingEmbeddingClustering ChunkingStrategy = "embedding_clustering"
)

// PreferenceApplication selects whether the stored news preference is
// applied to the generation.
type PreferenceApplication string

const (
	ApplyPreference PreferenceApplication = "apply_preference"
	NoPreference    PreferenceApplication = "no_preference"
)

// PeriodType is the summarization window.
type PeriodType string

const (
	PeriodDaily  PeriodType = "daily"
	PeriodWeekly PeriodType = "weekly"
)

// SummaryOptions are the generation options of a summary request.
type SummaryOptions struct {
	Chunking              ChunkingStrategy      `json:"news_chunking_experiment"`
	PreferenceApplication PreferenceApplication `json:"news_preference_application_experiment"`
	PeriodType            PeriodType            `json:"period_type"`
}

// Selector identifies one summary generation: the period anchor date plus
// the options it was generated with. Feedback calls are keyed by the same
// selector as the summary fetch they refer to.
type Selector struct {
	StartDate string         `json:"start_date"`
	Option    SummaryOptions `json:"option"`
}

// LikeDislikeAction is the feedback verb.
type LikeDislikeAction string

const (
	ActionLike    LikeDislikeAction = "like"
	ActionDislike LikeDislikeAction = "dislike"
)

type likeDislikeRequest struct {
	Selector Selector          `json:"selector"`
	Action   LikeDislikeAction `json:"action"`
}
