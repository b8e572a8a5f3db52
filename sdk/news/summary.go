package news

import (
	"context"
	"net/http"
)

// NewsSummary fetches (or generates) the summary for the given selector.
// Generation can take minutes; the context controls how long to wait.
func (c *Client) NewsSummary(ctx context.Context, sel Selector) ([]SummaryItem, error) {
	var result []SummaryItem
	if err := c.doRequest(ctx, http.MethodPost, "/news_summary/get_news_summary", sel, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ExpandSummary fetches the expanded content for one summary item.
func (c *Client) ExpandSummary(ctx context.Context, summaryID int) (*SummaryItem, error) {
	var result SummaryItem
	path := "/news_summary/expand_summary?summary_id=" + itoa(summaryID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LikeDislike records feedback for the summary identified by the selector.
func (c *Client) LikeDislike(ctx context.Context, sel Selector, action LikeDislikeAction) error {
	req := likeDislikeRequest{Selector: sel, Action: action}
	return c.doRequest(ctx, http.MethodPost, "/news_summary/like_dislike_news_summary", req, nil)
}
