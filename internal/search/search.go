// Package search filters fetched document lists client-side. Matching is a
// case-insensitive substring check against the title, the display
// identifier and the section field. Note the identifier check is literal:
// "1.1" matches both "1.1.1" and "1.10.1". That sits oddly next to the
// numeric sort order but it is the filter's contract, so do not "fix" it.
package search

import (
	"strings"

	"github.com/ChiobiJason/asa-policy-frontend/internal/view"
)

// Matches reports whether doc matches the query. An empty query matches
// everything.
func Matches(doc view.Document, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range []string{doc.Title, doc.DisplayID, doc.Section} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Filter returns the documents matching query, preserving input order. An
// empty query returns the input slice unchanged.
func Filter(docs []view.Document, query string) []view.Document {
	if strings.TrimSpace(query) == "" {
		return docs
	}
	matched := make([]view.Document, 0, len(docs))
	for _, doc := range docs {
		if Matches(doc, query) {
			matched = append(matched, doc)
		}
	}
	return matched
}
