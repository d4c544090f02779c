package portal

import "github.com/ChiobiJason/asa-policy-frontend/internal/search"

// Controller is the page-level state for the listing view: the current
// search term, which sections are collapsed, and the last fetched groups.
// Everything is accessed from the single UI event loop, so there is no
// locking; ownership stays with whichever model embeds the controller.
type Controller struct {
	query  string
	groups []Group
	closed map[string]bool // section key -> collapsed; sections default open
}

// NewController creates an empty controller with every section open.
func NewController() *Controller {
	return &Controller{closed: make(map[string]bool)}
}

// SetQuery replaces the search term.
func (c *Controller) SetQuery(q string) { c.query = q }

// Query returns the current search term.
func (c *Controller) Query() string { return c.query }

// SetGroups replaces the fetched groups, preserving open/closed state.
func (c *Controller) SetGroups(groups []Group) { c.groups = groups }

// Groups returns the unfiltered groups as last fetched.
func (c *Controller) Groups() []Group { return c.groups }

// ToggleSection flips one section between open and collapsed without
// touching its siblings.
func (c *Controller) ToggleSection(key string) {
	c.closed[key] = !c.closed[key]
}

// IsOpen reports whether a section is expanded.
func (c *Controller) IsOpen(key string) bool { return !c.closed[key] }

// Visible applies the search term to every group. With no query active,
// every section is returned even when empty, so the view can show an
// empty-state placeholder under the header. With a query active and zero
// matches anywhere, noResults is true and the caller should replace all
// section chrome with a single no-results message.
func (c *Controller) Visible() (groups []Group, noResults bool) {
	groups = make([]Group, len(c.groups))
	total := 0
	for i, g := range c.groups {
		filtered := search.Filter(g.Documents, c.query)
		groups[i] = Group{Section: g.Section, Documents: filtered}
		total += len(filtered)
	}
	noResults = c.query != "" && total == 0
	return groups, noResults
}
