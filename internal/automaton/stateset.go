package automaton

import "sort"

// StateSet is an ordered set of StateIDs: membership backed by a map for
// O(1) tests, but iteration and canonical-key rendering always walk the
// sorted order so results are reproducible across runs (spec.md §5
// "Ordering").
type StateSet struct {
	members map[StateID]bool
}

// NewStateSet builds a StateSet containing the given ids.
func NewStateSet(ids ...StateID) *StateSet {
	s := &StateSet{members: make(map[StateID]bool, len(ids))}
	for _, id := range ids {
		s.members[id] = true
	}
	return s
}

// Contains reports whether id is a member.
func (s *StateSet) Contains(id StateID) bool {
	return s.members[id]
}

// Add inserts id, returning true if it was not already present.
func (s *StateSet) Add(id StateID) bool {
	if s.members[id] {
		return false
	}
	s.members[id] = true
	return true
}

// Len returns the number of members.
func (s *StateSet) Len() int {
	return len(s.members)
}

// Sorted returns the members in ascending order. This is the canonical
// rendering used both for deterministic iteration and subset-construction
// keys (spec.md §4.6).
func (s *StateSet) Sorted() []StateID {
	out := make([]StateID, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Union returns a new StateSet containing the members of both sets.
func (s *StateSet) Union(other *StateSet) *StateSet {
	out := NewStateSet(s.Sorted()...)
	for _, id := range other.Sorted() {
		out.Add(id)
	}
	return out
}

// IsSubsetOf reports whether every member of s is also a member of other —
// used by the closure-monotonicity property test (spec.md §8).
func (s *StateSet) IsSubsetOf(other *StateSet) bool {
	for id := range s.members {
		if !other.members[id] {
			return false
		}
	}
	return true
}
