package automaton

// DFA is represented with the same State/Arena types as NFA (spec.md §3):
// no transition carries Epsilon, and for any state and input rune c at
// most one transition applies — Symbol(c) wins over a coexisting Any
// fallback (spec.md §4.7). Accepting tags are carried over from whichever
// NFA subset produced the DFA state.
type DFA struct {
	Start StateID
	Arena *Arena
}

// GetState is a bounds-checked read into the underlying arena.
func (d *DFA) GetState(id StateID) (*State, bool) {
	return d.Arena.GetState(id)
}

// step follows the single applicable transition from id on rune c,
// preferring an explicit Symbol(c) transition and falling back to Any
// (spec.md §4.7's lookup policy), or reports ok=false if neither exists.
func (d *DFA) step(id StateID, c rune) (StateID, bool) {
	st, ok := d.GetState(id)
	if !ok {
		return 0, false
	}

	var anyTarget StateID
	haveAny := false
	for _, t := range st.Transitions {
		if t.Label.Kind == Symbol && t.Label.Rune == c {
			return t.Target, true
		}
		if t.Label.Kind == Any {
			anyTarget, haveAny = t.Target, true
		}
	}
	if haveAny {
		return anyTarget, true
	}
	return 0, false
}

// SimulateDFA runs word against the DFA: a single deterministic walk, one
// transition per rune, rejecting as soon as no transition applies (spec.md
// §7: "any character not matched by any outgoing transition simply yields
// an empty next-subset, and, ultimately, rejection").
func SimulateDFA(d *DFA, word string) SimResult {
	current := d.Start
	for _, c := range word {
		next, ok := d.step(current, c)
		if !ok {
			return SimResult{Tag: NoTag}
		}
		current = next
	}

	st, ok := d.GetState(current)
	if !ok || !st.Accepting {
		return SimResult{Tag: NoTag}
	}
	return SimResult{Accepted: true, Tag: st.Tag}
}
