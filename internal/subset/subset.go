// Package subset implements the subset-construction algorithm (spec.md
// §4.6): determinizing an NFA into an equivalent DFA by materializing the
// epsilon-closed subsets of NFA states reachable from the start subset.
package subset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lexgen-dev/lexgen/internal/automaton"
)

// key renders a StateSet as its canonical subset-construction identity: a
// delimited string of its sorted StateIDs (spec.md §4.6 "Canonical key").
func key(s *automaton.StateSet) string {
	ids := s.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}

// acceptance reports whether any state in s is accepting, and if so the
// minimum rule tag among them (earliest rule wins, spec.md §4.6 "Accepting
// tag policy").
func acceptance(nfa *automaton.NFA, s *automaton.StateSet) (accepting bool, tag automaton.RuleTag) {
	tag = automaton.NoTag
	for _, id := range s.Sorted() {
		st, ok := nfa.GetState(id)
		if !ok || !st.Accepting {
			continue
		}
		accepting = true
		if tag == automaton.NoTag || (st.Tag != automaton.NoTag && st.Tag < tag) {
			tag = st.Tag
		}
	}
	return accepting, tag
}

// labelsOf collects the distinct non-Epsilon labels appearing on any
// outgoing transition of any state in s, in a stable order: Any first if
// present, then all Symbol labels sorted by rune. Sorting keeps DFA
// transition order reproducible across runs (spec.md §5 "Ordering").
func labelsOf(nfa *automaton.NFA, s *automaton.StateSet) []automaton.Label {
	seen := make(map[automaton.Label]bool)
	for _, id := range s.Sorted() {
		st, ok := nfa.GetState(id)
		if !ok {
			continue
		}
		for _, t := range st.Transitions {
			if t.Label.Kind != automaton.Epsilon {
				seen[t.Label] = true
			}
		}
	}

	labels := make([]automaton.Label, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Less(labels[j]) })
	return labels
}

// moveByLabel returns the set of direct targets (not epsilon-closed) of
// transitions from states in s carrying exactly label.
func moveByLabel(nfa *automaton.NFA, s *automaton.StateSet, label automaton.Label) *automaton.StateSet {
	out := automaton.NewStateSet()
	for _, id := range s.Sorted() {
		st, ok := nfa.GetState(id)
		if !ok {
			continue
		}
		for _, t := range st.Transitions {
			if t.Label == label {
				out.Add(t.Target)
			}
		}
	}
	return out
}

// ToDFA determinizes nfa via subset construction (spec.md §4.6): BFS over
// epsilon-closed subsets, keyed canonically, materializing one DFA state
// per distinct subset and one DFA transition per distinct label reachable
// from it. A Symbol(c) transition leads to the closure of both the
// Symbol(c) and the Any targets of the subset, since an Any edge also
// matches c; the Any transition is kept separately as the fallback that
// automaton.DFA.step takes for runes with no Symbol transition (§4.7).
func ToDFA(nfa *automaton.NFA) *automaton.DFA {
	arena := automaton.NewArena()
	stateOf := make(map[string]automaton.StateID)

	startSet := nfa.EpsilonClosure(automaton.NewStateSet(nfa.Start))
	startID := arena.NewState()
	stateOf[key(startSet)] = startID
	if accepting, tag := acceptance(nfa, startSet); accepting {
		arena.SetAccepting(startID, tag)
	}

	type queued struct {
		id  automaton.StateID
		set *automaton.StateSet
	}
	queue := []queued{{id: startID, set: startSet}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, label := range labelsOf(nfa, cur.set) {
			moved := moveByLabel(nfa, cur.set, label)
			if label.Kind == automaton.Symbol {
				moved = moved.Union(moveByLabel(nfa, cur.set, automaton.AnyLabel))
			}
			target := nfa.EpsilonClosure(moved)
			if target.Len() == 0 {
				continue
			}

			k := key(target)
			targetID, exists := stateOf[k]
			if !exists {
				targetID = arena.NewState()
				stateOf[k] = targetID
				if accepting, tag := acceptance(nfa, target); accepting {
					arena.SetAccepting(targetID, tag)
				}
				queue = append(queue, queued{id: targetID, set: target})
			}

			arena.AddTransition(cur.id, targetID, label)
		}
	}

	return &automaton.DFA{Start: startID, Arena: arena}
}
