// Package view holds the normalized document shape the rendering layer
// consumes. Mapping is total: missing optional fields get defaults instead
// of errors, so a half-populated API record still renders.
package view

import (
	"strconv"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
)

// Document kinds.
type Kind string

const (
	KindPolicy Kind = "policy"
	KindBylaw  Kind = "bylaw"
)

// Document lifecycle states.
const (
	StatusDraft    = "draft"
	StatusApproved = "approved"
)

// Defaults substituted for absent optional fields.
const (
	DefaultTitle   = "Untitled"
	DefaultSection = "1"
)

// Document is the view-model for a policy or bylaw. UUID identifies the
// record for navigation; DisplayID is the human identifier and, for
// policies, the key most endpoints accept.
type Document struct {
	Kind      Kind
	UUID      string
	DisplayID string
	Title     string
	Content   string
	Section   string // policies only, empty for bylaws
	Status    string
	CreatedAt string
	UpdatedAt string
	CreatedBy string
	UpdatedBy string
}

// MapPolicy normalizes a raw policy record.
func MapPolicy(rec api.PolicyRecord) Document {
	doc := Document{
		Kind:      KindPolicy,
		UUID:      rec.ID,
		DisplayID: rec.PolicyID,
		Title:     rec.PolicyName,
		Content:   rec.PolicyContent,
		Section:   rec.Section,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		CreatedBy: rec.CreatedBy,
		UpdatedBy: rec.UpdatedBy,
	}
	if doc.Title == "" {
		doc.Title = DefaultTitle
	}
	if doc.Section == "" {
		doc.Section = DefaultSection
	}
	return doc
}

// MapBylaw normalizes a raw bylaw record. The integer bylaw number becomes
// the display identifier; a zero number maps to the empty string so it
// sorts first rather than rendering as "0".
func MapBylaw(rec api.BylawRecord) Document {
	doc := Document{
		Kind:      KindBylaw,
		UUID:      rec.ID,
		DisplayID: strconv.Itoa(rec.BylawNumber),
		Title:     rec.BylawTitle,
		Content:   rec.BylawContent,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		CreatedBy: rec.CreatedBy,
		UpdatedBy: rec.UpdatedBy,
	}
	if rec.BylawNumber == 0 {
		doc.DisplayID = ""
	}
	if doc.Title == "" {
		doc.Title = DefaultTitle
	}
	return doc
}

// MapPolicies normalizes a list, preserving order.
func MapPolicies(recs []api.PolicyRecord) []Document {
	docs := make([]Document, len(recs))
	for i, rec := range recs {
		docs[i] = MapPolicy(rec)
	}
	return docs
}

// MapBylaws normalizes a list, preserving order.
func MapBylaws(recs []api.BylawRecord) []Document {
	docs := make([]Document, len(recs))
	for i, rec := range recs {
		docs[i] = MapBylaw(rec)
	}
	return docs
}

// Field resolves a field by either its wire (snake_case) or UI (camelCase)
// spelling. Consumers written against either shape see the same value.
// Unknown keys return the empty string.
func (d Document) Field(key string) string {
	switch key {
	case "id", "uuid":
		return d.UUID
	case "policy_id", "policyId", "bylaw_number", "bylawNumber", "display_id", "displayId":
		return d.DisplayID
	case "policy_name", "policyName", "bylaw_title", "bylawTitle", "title", "name":
		return d.Title
	case "policy_content", "policyContent", "bylaw_content", "bylawContent", "content":
		return d.Content
	case "section":
		return d.Section
	case "status":
		return d.Status
	case "created_at", "createdAt":
		return d.CreatedAt
	case "updated_at", "updatedAt":
		return d.UpdatedAt
	case "created_by", "createdBy":
		return d.CreatedBy
	case "updated_by", "updatedBy":
		return d.UpdatedBy
	default:
		return ""
	}
}

// IsApproved reports whether the document is publicly visible.
func (d Document) IsApproved() bool { return d.Status == StatusApproved }
