package news

import (
	"context"
	"net/http"
)

// PreferenceSurveyRequest is one answered survey turn. Question carries the
// text of the AI question being answered so the backend can persist the
// round as a unit.
type PreferenceSurveyRequest struct {
	ParentMessageID *string `json:"parent_message_id"`
	Question        string  `json:"question,omitempty"`
	Answer          string  `json:"answer"`
}

// PreferenceSurveyResponse carries either the next survey question or, when
// PreferenceSummary is non-empty, the closing summary that ends the survey.
type PreferenceSurveyResponse struct {
	ParentMessageID       string `json:"parent_message_id"`
	NextQuestion          string `json:"next_question,omitempty"`
	NextQuestionMessageID string `json:"next_question_message_id,omitempty"`
	PreferenceSummary     string `json:"preference_summary,omitempty"`
}

// PreferenceSurvey submits one survey answer and returns the next turn.
func (c *Client) PreferenceSurvey(ctx context.Context, req *PreferenceSurveyRequest) (*PreferenceSurveyResponse, error) {
	var result PreferenceSurveyResponse
	if err := c.doRequest(ctx, http.MethodPost, "/news_summary/preference_survey", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Preference returns the stored preference summary text.
func (c *Client) Preference(ctx context.Context) (string, error) {
	var result struct {
		PreferenceSummary string `json:"preference_summary"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/news_summary/get_preference", nil, &result); err != nil {
		return "", err
	}
	return result.PreferenceSummary, nil
}

// SavePreference replaces the stored preference summary text.
func (c *Client) SavePreference(ctx context.Context, preferenceSummary string) error {
	req := struct {
		PreferenceSummary string `json:"preference_summary"`
	}{PreferenceSummary: preferenceSummary}
	return c.doRequest(ctx, http.MethodPost, "/news_summary/save_preference", req, nil)
}
