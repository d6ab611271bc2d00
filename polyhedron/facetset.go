// Package polyhedron implements C7: the append-only arena of Plücker
// points, each carrying its quadric-relative position and its facet
// set — the sorted, deduplicated list of hyperplane indices that is a
// vertex's combinatorial identity (spec.md §3 "Polyhedron").
package polyhedron

import "sort"

// CommonFacetThreshold is the fixed k = 3 spec.md §3 fixes for 5D
// Plücker polytopes: two vertices are joined by an edge only if their
// facet sets share at least this many hyperplanes.
const CommonFacetThreshold = 3

// Contains reports whether sorted facet set fs contains h, via binary
// search (spec.md §3 "membership (binary search)").
func Contains(fs []int32, h int32) bool {
	i := sort.Search(len(fs), func(i int) bool { return fs[i] >= h })
	return i < len(fs) && fs[i] == h
}

// SharedCount counts common elements between two sorted facet sets via a
// sorted-merge scan (spec.md §3 "have ≥ k common elements").
func SharedCount(a, b []int32) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// SharesAtLeast reports whether a and b share at least k common elements,
// short-circuiting once k is reached.
func SharesAtLeast(a, b []int32, k int) bool {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			if n >= k {
				return true
			}
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// WithAdded returns a new sorted, deduplicated facet set equal to fs with
// h inserted (spec.md §3: "'intersection ∪ {h}' with re-sort if h breaks
// order"). fs is not mutated.
func WithAdded(fs []int32, h int32) []int32 {
	if Contains(fs, h) {
		out := make([]int32, len(fs))
		copy(out, fs)
		return out
	}
	out := make([]int32, len(fs), len(fs)+1)
	copy(out, fs)
	out = append(out, h)
	if len(fs) > 0 && fs[len(fs)-1] > h {
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	}
	return out
}

// Intersect returns the sorted intersection of two sorted facet sets.
func Intersect(a, b []int32) []int32 {
	out := make([]int32, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// IntersectPlusOne computes facets(v1) ∩ facets(v2) ∪ {h}, sorted — the
// prospective facet set of a split-induced vertex (spec.md §4.3).
func IntersectPlusOne(a, b []int32, h int32) []int32 {
	return WithAdded(Intersect(a, b), h)
}

// Equal reports whether two sorted facet sets are identical — the "same
// vertex" test of spec.md §3.
func Equal(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
