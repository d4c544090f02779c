package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChiobiJason/asa-policy-frontend/internal/view"
)

func doc(id, title, section string) view.Document {
	return view.Document{Kind: view.KindPolicy, DisplayID: id, Title: title, Section: section}
}

func testGroups() []Group {
	return GroupBySection([]view.Document{
		doc("1.1", "Membership", "1"),
		doc("1.10.1", "Elections", "1"),
		doc("2.1", "Finance", "2"),
	})
}

func TestVisibleNoQueryKeepsEmptySections(t *testing.T) {
	c := NewController()
	c.SetGroups(testGroups())

	groups, noResults := c.Visible()
	assert.False(t, noResults)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Documents, 2)
	assert.Len(t, groups[1].Documents, 1)
	// Section 3 is empty but still present for its empty-state placeholder.
	assert.Empty(t, groups[2].Documents)
}

func TestVisibleFiltersBySubstring(t *testing.T) {
	c := NewController()
	c.SetGroups(testGroups())
	c.SetQuery("1.1")

	groups, noResults := c.Visible()
	assert.False(t, noResults)
	// "1.1" matches both "1.1" and "1.10.1" as a literal substring.
	require.Len(t, groups[0].Documents, 2)
	assert.Empty(t, groups[1].Documents)
}

func TestVisibleNoResults(t *testing.T) {
	c := NewController()
	c.SetGroups(testGroups())
	c.SetQuery("zzzz")

	groups, noResults := c.Visible()
	assert.True(t, noResults)
	for _, g := range groups {
		assert.Empty(t, g.Documents)
	}

	c.SetQuery("")
	_, noResults = c.Visible()
	assert.False(t, noResults, "empty query never reports no results")
}

func TestToggleSectionIsolated(t *testing.T) {
	c := NewController()
	for _, sec := range Sections {
		assert.True(t, c.IsOpen(sec.Key), "sections default open")
	}

	c.ToggleSection("2")
	assert.True(t, c.IsOpen("1"))
	assert.False(t, c.IsOpen("2"))
	assert.True(t, c.IsOpen("3"))

	c.ToggleSection("2")
	assert.True(t, c.IsOpen("2"))
}

func TestSetGroupsPreservesCollapsedState(t *testing.T) {
	c := NewController()
	c.ToggleSection("1")
	c.SetGroups(testGroups())
	assert.False(t, c.IsOpen("1"))
}
