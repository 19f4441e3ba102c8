// idset.go — set of kind-tagged identifiers.
//
// Removal operations report everything they removed as an IDSet so external
// collaborators that cache identifiers can invalidate precisely.

package core

import "sort"

// IDSet is a set of element identifiers.
type IDSet map[ID]struct{}

// NewIDSet builds a set from the given identifiers.
func NewIDSet(ids ...ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s IDSet) Add(id ID) { s[id] = struct{}{} }

// Has reports whether id is in the set.
func (s IDSet) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s IDSet) Len() int { return len(s) }

// Merge adds every identifier of other into s.
func (s IDSet) Merge(other IDSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Slice returns the identifiers ordered by kind, then number. The order is
// deterministic and intended for tests and rendering, not for replaying the
// cascade sequence.
func (s IDSet) Slice() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].kind != out[j].kind {
			return out[i].kind < out[j].kind
		}
		return out[i].num < out[j].num
	})
	return out
}
