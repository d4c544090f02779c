// Package docid orders human document identifiers. Policy identifiers are
// dotted numeric strings ("1.1.1", "2.3.10") that must sort numerically per
// segment, not lexicographically; bylaw numbers are plain integers and fall
// out of the same comparison as the single-segment case.
package docid

import (
	"sort"
	"strconv"
	"strings"
)

// Compare returns -1, 0 or 1 ordering a before, equal to or after b.
// Segments are compared as integers left to right; unparsable segments
// count as 0 and shorter identifiers are padded with 0, so "1.2" < "1.2.1"
// and "1.2" < "1.10". Fully equal segment sequences fall back to a plain
// string comparison as a deterministic tie-break. Never panics; empty
// identifiers sort first.
func Compare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av = segment(as[i])
		}
		if i < len(bs) {
			bv = segment(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}

// Less reports whether a orders before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// SortIDs sorts identifiers in place, stably.
func SortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool { return Less(ids[i], ids[j]) })
}

func segment(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
