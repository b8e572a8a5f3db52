package news

import (
	"context"
	"io"
	"net/http"
	"strconv"
)

// RSSFeed is one subscribed feed. ID is zero until the backend assigns one.
type RSSFeed struct {
	ID      int    `json:"id,omitempty"`
	Title   string `json:"title"`
	FeedURL string `json:"feed_url"`
}

// UploadRSSFeeds uploads an OPML file, or asks the backend to install the
// default feed set when opml is nil and useDefault is true.
func (c *Client) UploadRSSFeeds(ctx context.Context, opml io.Reader, fileName string, useDefault bool) error {
	fields := map[string]string{
		"use_default": strconv.FormatBool(useDefault),
	}
	return c.doMultipart(ctx, "/news_summary/upload_rss_feeds", fields, "opml_file", fileName, opml)
}

// SubscribedRSSFeeds lists the user's feed subscriptions.
func (c *Client) SubscribedRSSFeeds(ctx context.Context) ([]RSSFeed, error) {
	var result []RSSFeed
	if err := c.doRequest(ctx, http.MethodGet, "/news_summary/get_subscribed_rss_feeds", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteRSSFeed removes one subscription.
func (c *Client) DeleteRSSFeed(ctx context.Context, feedID int) error {
	return c.doRequest(ctx, http.MethodGet, "/news_summary/delete_rss_feed/"+itoa(feedID), nil, nil)
}

// SubscribeRSSFeed adds a single feed and returns its assigned ID.
func (c *Client) SubscribeRSSFeed(ctx context.Context, feed RSSFeed) (int, error) {
	var result struct {
		FeedID int `json:"feed_id"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/news_summary/subscribe_rss_feed", feed, &result); err != nil {
		return 0, err
	}
	return result.FeedID, nil
}
