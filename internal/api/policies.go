package api

import (
	"context"
	"net/http"
	"net/url"
)

// PolicyRecord is the wire shape of a policy. Policies are keyed by the
// human-readable dotted PolicyID on every endpoint except creation; the
// UUID in ID exists for navigation only.
type PolicyRecord struct {
	ID            string `json:"id"`
	PolicyID      string `json:"policy_id"`
	PolicyName    string `json:"policy_name"`
	Section       string `json:"section"`
	PolicyContent string `json:"policy_content"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	CreatedBy     string `json:"created_by"`
	UpdatedBy     string `json:"updated_by"`
}

// CreatePolicyInput is the body for POST /api/policies. Status is always
// forced to draft server-side; it is included so the request matches the
// documented contract.
type CreatePolicyInput struct {
	PolicyID      string `json:"policy_id"`
	PolicyName    string `json:"policy_name"`
	Section       string `json:"section"`
	PolicyContent string `json:"policy_content"`
	Status        string `json:"status"`
}

// UpdatePolicyInput is the body for PUT /api/policies/{policy_id}. The
// dotted identifier itself is immutable and deliberately absent.
type UpdatePolicyInput struct {
	PolicyName    string `json:"policy_name"`
	Section       string `json:"section"`
	PolicyContent string `json:"policy_content"`
}

// ApprovedPolicies lists approved policies, optionally limited to one
// section via the documented query parameter.
func (c *Client) ApprovedPolicies(ctx context.Context, section string) ([]PolicyRecord, error) {
	path := "/api/policies/approved"
	if section != "" {
		path += "?section=" + url.QueryEscape(section)
	}
	var records []PolicyRecord
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Policy fetches a single policy by its dotted identifier.
func (c *Client) Policy(ctx context.Context, policyID string) (PolicyRecord, error) {
	var record PolicyRecord
	err := c.do(ctx, http.MethodGet, "/api/policies/"+url.PathEscape(policyID), nil, &record)
	return record, err
}

// AllPolicies lists every policy regardless of status. Authenticated.
func (c *Client) AllPolicies(ctx context.Context) ([]PolicyRecord, error) {
	var records []PolicyRecord
	if err := c.do(ctx, http.MethodGet, "/api/policies", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreatePolicy submits a new draft policy. Authenticated.
func (c *Client) CreatePolicy(ctx context.Context, in CreatePolicyInput) (PolicyRecord, error) {
	in.Status = "draft"
	var record PolicyRecord
	err := c.do(ctx, http.MethodPost, "/api/policies", in, &record)
	return record, err
}

// UpdatePolicy replaces a policy's name, section and content. Authenticated.
func (c *Client) UpdatePolicy(ctx context.Context, policyID string, in UpdatePolicyInput) (PolicyRecord, error) {
	var record PolicyRecord
	err := c.do(ctx, http.MethodPut, "/api/policies/"+url.PathEscape(policyID), in, &record)
	return record, err
}

// DeletePolicy removes a policy. Deleting a draft is how disapproval works;
// there is no rejected status. Admin only.
func (c *Client) DeletePolicy(ctx context.Context, policyID string) error {
	return c.do(ctx, http.MethodDelete, "/api/policies/"+url.PathEscape(policyID), nil, nil)
}

// ApprovePolicy transitions a draft to approved. Admin only.
func (c *Client) ApprovePolicy(ctx context.Context, policyID string) (PolicyRecord, error) {
	var record PolicyRecord
	err := c.do(ctx, http.MethodPut, "/api/policies/"+url.PathEscape(policyID)+"/approve", nil, &record)
	return record, err
}
