// Package portal implements the listing pipeline behind the browse view:
// fetch, group, filter, sort, and the change-detection poll loop. It holds
// no terminal code; the UI layer renders whatever this package produces.
package portal

import "github.com/ChiobiJason/asa-policy-frontend/internal/view"

// Section is one of the fixed policy categories. The Key is the value the
// API stores in a policy's section field and accepts as a filter parameter.
type Section struct {
	Key   string
	Label string
}

// Sections is the fixed category set, in display order. Documents with an
// unrecognized section are grouped under the first entry.
var Sections = []Section{
	{Key: "1", Label: "Section 1"},
	{Key: "2", Label: "Section 2"},
	{Key: "3", Label: "Section 3"},
}

// Group pairs a section with its (sorted) documents.
type Group struct {
	Section   Section
	Documents []view.Document
}

// GroupBySection buckets documents into the fixed sections client-side,
// defaulting unknown sections to the first category and sorting each bucket
// by display identifier. Used on the fallback path when per-section fetches
// fail, and for any pre-fetched list.
func GroupBySection(docs []view.Document) []Group {
	groups := make([]Group, len(Sections))
	index := make(map[string]int, len(Sections))
	for i, sec := range Sections {
		groups[i] = Group{Section: sec}
		index[sec.Key] = i
	}
	for _, doc := range docs {
		i, ok := index[doc.Section]
		if !ok {
			i = 0
		}
		groups[i].Documents = append(groups[i].Documents, doc)
	}
	for i := range groups {
		view.SortDocuments(groups[i].Documents)
	}
	return groups
}
