package api

import (
	"context"
	"net/http"
	"net/url"
)

// Review stances accepted by the API.
const (
	ReviewConfirmed = "confirmed"
	ReviewNeedsWork = "needs_work"
)

// ReviewSummary is the server-side aggregation of per-user stances on one
// policy: counts plus the reviewer emails behind each count.
type ReviewSummary struct {
	PolicyID        string   `json:"policy_id"`
	ConfirmedCount  int      `json:"confirmed_count"`
	NeedsWorkCount  int      `json:"needs_work_count"`
	ConfirmedEmails []string `json:"confirmed_emails"`
	NeedsWorkEmails []string `json:"needs_work_emails"`
}

type submitReviewInput struct {
	Status string `json:"status"`
}

// PolicyReviews fetches the aggregated review stances for one policy.
// Authenticated.
func (c *Client) PolicyReviews(ctx context.Context, policyID string) (ReviewSummary, error) {
	var summary ReviewSummary
	err := c.do(ctx, http.MethodGet, "/api/policies/"+url.PathEscape(policyID)+"/reviews", nil, &summary)
	return summary, err
}

// SubmitReview records the calling user's stance on one policy, replacing
// any previous stance. Authenticated.
func (c *Client) SubmitReview(ctx context.Context, policyID, status string) error {
	return c.do(ctx, http.MethodPost, "/api/policies/"+url.PathEscape(policyID)+"/reviews",
		submitReviewInput{Status: status}, nil)
}

// ResetAllReviews wipes every recorded stance across all policies. Admin
// only; used when a new review cycle starts.
func (c *Client) ResetAllReviews(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/policies/reviews/reset-all", nil, nil)
}
