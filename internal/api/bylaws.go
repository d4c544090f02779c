package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// BylawRecord is the wire shape of a bylaw. Unlike policies, every bylaw
// endpoint is keyed by the UUID in ID; BylawNumber is display-only.
type BylawRecord struct {
	ID           string `json:"id"`
	BylawNumber  int    `json:"bylaw_number"`
	BylawTitle   string `json:"bylaw_title"`
	BylawContent string `json:"bylaw_content"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	CreatedBy    string `json:"created_by"`
	UpdatedBy    string `json:"updated_by"`
}

// CreateBylawInput is the body for POST /api/bylaws.
type CreateBylawInput struct {
	BylawNumber  int    `json:"bylaw_number"`
	BylawTitle   string `json:"bylaw_title"`
	BylawContent string `json:"bylaw_content"`
	Status       string `json:"status"`
}

// UpdateBylawInput is the body for PUT /api/bylaws/{id}.
type UpdateBylawInput struct {
	BylawNumber  int    `json:"bylaw_number"`
	BylawTitle   string `json:"bylaw_title"`
	BylawContent string `json:"bylaw_content"`
}

func bylawPath(id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid bylaw id %q: %w", id, err)
	}
	return "/api/bylaws/" + id, nil
}

// ApprovedBylaws lists approved bylaws.
func (c *Client) ApprovedBylaws(ctx context.Context) ([]BylawRecord, error) {
	var records []BylawRecord
	if err := c.do(ctx, http.MethodGet, "/api/bylaws/approved", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Bylaw fetches a single bylaw by UUID.
func (c *Client) Bylaw(ctx context.Context, id string) (BylawRecord, error) {
	var record BylawRecord
	path, err := bylawPath(id)
	if err != nil {
		return record, err
	}
	err = c.do(ctx, http.MethodGet, path, nil, &record)
	return record, err
}

// AllBylaws lists every bylaw regardless of status. Authenticated.
func (c *Client) AllBylaws(ctx context.Context) ([]BylawRecord, error) {
	var records []BylawRecord
	if err := c.do(ctx, http.MethodGet, "/api/bylaws", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateBylaw submits a new draft bylaw. Authenticated.
func (c *Client) CreateBylaw(ctx context.Context, in CreateBylawInput) (BylawRecord, error) {
	in.Status = "draft"
	var record BylawRecord
	err := c.do(ctx, http.MethodPost, "/api/bylaws", in, &record)
	return record, err
}

// UpdateBylaw replaces a bylaw's number, title and content. Authenticated.
func (c *Client) UpdateBylaw(ctx context.Context, id string, in UpdateBylawInput) (BylawRecord, error) {
	var record BylawRecord
	path, err := bylawPath(id)
	if err != nil {
		return record, err
	}
	err = c.do(ctx, http.MethodPut, path, in, &record)
	return record, err
}

// DeleteBylaw removes a bylaw. Admin only.
func (c *Client) DeleteBylaw(ctx context.Context, id string) error {
	path, err := bylawPath(id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ApproveBylaw transitions a draft bylaw to approved. Admin only.
func (c *Client) ApproveBylaw(ctx context.Context, id string) (BylawRecord, error) {
	var record BylawRecord
	path, err := bylawPath(id)
	if err != nil {
		return record, err
	}
	err = c.do(ctx, http.MethodPut, path+"/approve", nil, &record)
	return record, err
}
