package view

import (
	"sort"

	"github.com/ChiobiJason/asa-policy-frontend/internal/docid"
)

// SortDocuments orders documents by display identifier in place, stably,
// using segment-wise numeric comparison.
func SortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docid.Less(docs[i].DisplayID, docs[j].DisplayID)
	})
}
