package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
)

func TestMapPolicy(t *testing.T) {
	rec := api.PolicyRecord{
		ID:            "u1",
		PolicyID:      "1.2.1",
		PolicyName:    "Alpha",
		Section:       "2",
		PolicyContent: "<p>body</p>",
		Status:        "approved",
		CreatedAt:     "2024-01-01T00:00:00Z",
		CreatedBy:     "someone@ualberta.ca",
	}

	doc := MapPolicy(rec)

	want := Document{
		Kind:      KindPolicy,
		UUID:      "u1",
		DisplayID: "1.2.1",
		Title:     "Alpha",
		Content:   "<p>body</p>",
		Section:   "2",
		Status:    "approved",
		CreatedAt: "2024-01-01T00:00:00Z",
		CreatedBy: "someone@ualberta.ca",
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("MapPolicy mismatch (-want +got):\n%s", diff)
	}
}

func TestMapPolicyDefaults(t *testing.T) {
	// Mapping must never fail on sparse records; optional fields default.
	doc := MapPolicy(api.PolicyRecord{ID: "u2", PolicyID: "3.1"})

	assert.Equal(t, DefaultTitle, doc.Title)
	assert.Equal(t, DefaultSection, doc.Section)
}

func TestMapBylaw(t *testing.T) {
	doc := MapBylaw(api.BylawRecord{ID: "b1", BylawNumber: 12, BylawTitle: "Quorum"})
	assert.Equal(t, KindBylaw, doc.Kind)
	assert.Equal(t, "12", doc.DisplayID)
	assert.Equal(t, "Quorum", doc.Title)

	missing := MapBylaw(api.BylawRecord{ID: "b2"})
	assert.Equal(t, "", missing.DisplayID)
	assert.Equal(t, DefaultTitle, missing.Title)
}

func TestFieldDualKeys(t *testing.T) {
	// Both the wire spelling and the UI spelling resolve to the same value.
	doc := MapPolicy(api.PolicyRecord{
		ID:            "u1",
		PolicyID:      "1.1.5",
		PolicyName:    "Beta",
		Section:       "1",
		PolicyContent: "text",
		Status:        "draft",
		UpdatedAt:     "2024-06-01T00:00:00Z",
	})

	pairs := [][2]string{
		{"policy_id", "policyId"},
		{"policy_name", "policyName"},
		{"policy_content", "policyContent"},
		{"updated_at", "updatedAt"},
		{"created_by", "createdBy"},
	}
	for _, pair := range pairs {
		assert.Equal(t, doc.Field(pair[0]), doc.Field(pair[1]), "keys %v should agree", pair)
	}

	assert.Equal(t, "1.1.5", doc.Field("displayId"))
	assert.Equal(t, "Beta", doc.Field("title"))
	assert.Equal(t, "", doc.Field("no_such_field"))
}

func TestSortDocumentsScenario(t *testing.T) {
	// Listing returns Alpha 1.2.1 before Beta 1.1.5; rendered order must be
	// Beta first.
	docs := MapPolicies([]api.PolicyRecord{
		{ID: "u1", PolicyID: "1.2.1", PolicyName: "Alpha", Section: "1", Status: "approved"},
		{ID: "u2", PolicyID: "1.1.5", PolicyName: "Beta", Section: "1", Status: "approved"},
	})

	SortDocuments(docs)

	assert.Equal(t, "Beta", docs[0].Title)
	assert.Equal(t, "Alpha", docs[1].Title)
}

func TestIsApproved(t *testing.T) {
	assert.True(t, Document{Status: StatusApproved}.IsApproved())
	assert.False(t, Document{Status: StatusDraft}.IsApproved())
}
