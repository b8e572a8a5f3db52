package news

import (
	"context"
	"net/http"
)

// ResearchRequest is one free-form research question. ParentMessageID and
// ThreadID are nil on the very first turn of a fresh thread.
type ResearchRequest struct {
	ParentMessageID *string `json:"parent_message_id,omitempty"`
	ThreadID        *string `json:"thread_id,omitempty"`
	Question        string  `json:"question"`
}

// ResearchResponse echoes the persisted question (with its assigned IDs)
// and carries the generated answer.
type ResearchResponse struct {
	Question ChatMessage `json:"question"`
	Answer   ChatMessage `json:"answer"`
}

// ResearchAnswer submits a research question and waits for the answer.
func (c *Client) ResearchAnswer(ctx context.Context, req *ResearchRequest) (*ResearchResponse, error) {
	var result ResearchResponse
	if err := c.doRequest(ctx, http.MethodPost, "/news_summary/news_research_answer_question", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResearchHistory fetches the full research chat history.
func (c *Client) ResearchHistory(ctx context.Context) ([]ChatMessage, error) {
	var result []ChatMessage
	if err := c.doRequest(ctx, http.MethodGet, "/news_summary/get_news_research_chat_history", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
