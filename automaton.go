package lexgen

import (
	"io"

	"github.com/lexgen-dev/lexgen/internal/automaton"
	"github.com/lexgen-dev/lexgen/internal/dot"
	"github.com/lexgen-dev/lexgen/internal/subset"
)

// Simulate runs word against nfa: epsilon-closure over subsets, stepping
// one rune at a time, accepting iff the final subset contains an
// accepting state (spec.md §4.5).
func Simulate(nfa *NFA, word string) SimResult {
	return automaton.Simulate(nfa, word)
}

// SimulateDFA runs word against dfa as a single deterministic walk.
func SimulateDFA(dfa *DFA, word string) SimResult {
	return automaton.SimulateDFA(dfa, word)
}

// ToDFA determinizes nfa via subset construction (spec.md §4.6), producing
// an equivalent DFA.
func ToDFA(nfa *NFA) *DFA {
	return subset.ToDFA(nfa)
}

// Dump writes nfa to w as a Graphviz digraph (spec.md §6, diagnostic
// dump). Non-normative: a debugging utility, not part of the generator's
// output contract.
func Dump(w io.Writer, nfa *NFA) error {
	return dot.WriteNFA(w, nfa)
}

// DumpDFA writes dfa to w as a Graphviz digraph.
func DumpDFA(w io.Writer, dfa *DFA) error {
	return dot.WriteDFA(w, dfa)
}
