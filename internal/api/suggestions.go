package api

import (
	"context"
	"net/http"
)

// SuggestionRecord is the wire shape of a piece of public feedback,
// optionally tied to one document by its API identifier.
type SuggestionRecord struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	PolicyID  string `json:"policy_id,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// SubmitSuggestionInput is the body for POST /api/suggestions. Submission
// is public; the email domain check happens client-side before any call.
type SubmitSuggestionInput struct {
	Email    string `json:"email"`
	Content  string `json:"content"`
	PolicyID string `json:"policy_id,omitempty"`
}

// SubmitSuggestion posts new feedback.
func (c *Client) SubmitSuggestion(ctx context.Context, in SubmitSuggestionInput) (SuggestionRecord, error) {
	var record SuggestionRecord
	err := c.do(ctx, http.MethodPost, "/api/suggestions", in, &record)
	return record, err
}

// Suggestions lists all submitted feedback. Authenticated.
func (c *Client) Suggestions(ctx context.Context) ([]SuggestionRecord, error) {
	var records []SuggestionRecord
	if err := c.do(ctx, http.MethodGet, "/api/suggestions", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteSuggestion removes one piece of feedback. Authenticated.
func (c *Client) DeleteSuggestion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/suggestions/"+id, nil, nil)
}
