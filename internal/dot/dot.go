// Package dot renders an automaton as a Graphviz digraph (spec.md §6,
// "Diagnostic dump"): a non-normative debugging utility, ported from
// original_source/src/nfa.rs's dot_output.
package dot

import (
	"fmt"
	"io"

	"github.com/lexgen-dev/lexgen/internal/automaton"
)

// arenaLike is satisfied by both *automaton.NFA and *automaton.DFA: enough
// surface to walk every state and its transitions for rendering.
type arenaLike interface {
	GetState(id automaton.StateID) (*automaton.State, bool)
}

// WriteNFA writes nfa to w as a Graphviz digraph.
func WriteNFA(w io.Writer, nfa *automaton.NFA) error {
	return write(w, nfa, nfa.Start, nfa.Arena.Len())
}

// WriteDFA writes dfa to w as a Graphviz digraph.
func WriteDFA(w io.Writer, dfa *automaton.DFA) error {
	return write(w, dfa, dfa.Start, dfa.Arena.Len())
}

func write(w io.Writer, a arenaLike, start automaton.StateID, n int) error {
	if _, err := io.WriteString(w, "digraph {\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  graph [rankdir=LR]\n  node [shape=circle]\n"); err != nil {
		return err
	}

	for sid := 0; sid < n; sid++ {
		st, ok := a.GetState(automaton.StateID(sid))
		if !ok {
			continue
		}
		if st.Accepting {
			if _, err := fmt.Fprintf(w, "  %d [shape=doublecircle]\n", sid); err != nil {
				return err
			}
		}
		for _, t := range st.Transitions {
			if _, err := fmt.Fprintf(w, "  %d -> %d [label = %q]\n", sid, t.Target, t.Label.String()); err != nil {
				return err
			}
		}
	}

	if _, err := io.WriteString(w, "  p [shape=point, style=invis]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  p -> %d\n", start); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
