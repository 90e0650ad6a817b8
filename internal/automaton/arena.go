package automaton

// StateID is a dense, non-negative index assigned monotonically by an
// Arena in creation order. IDs are stable for the lifetime of the arena
// that issued them and must never be used against a different arena.
type StateID int

// RuleTag identifies which input rule an accepting state belongs to in a
// fused multi-rule NFA. Only meaningful on states where Accepting is true.
type RuleTag int

// NoTag marks an accepting state with no associated rule (single-rule
// builds never need one).
const NoTag RuleTag = -1

// Transition is a labeled edge owned by its source State. Duplicate
// transitions (same label, same target) are permitted.
type Transition struct {
	Label  Label
	Target StateID
}

// State is a single automaton state: whether it accepts, its outgoing
// transitions in insertion order, and — only when Accepting — the rule it
// belongs to.
type State struct {
	Accepting   bool
	Tag         RuleTag
	Transitions []Transition
}

// transitionsFor returns the subset of outgoing transitions carrying label.
func (s *State) transitionsFor(label Label) []Transition {
	var out []Transition
	for _, t := range s.Transitions {
		if t.Label == label {
			out = append(out, t)
		}
	}
	return out
}

// Arena owns all states and transitions created during construction. IDs
// are never reused or reordered; the arena only grows.
type Arena struct {
	states []State
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{states: make([]State, 0, 16)}
}

// Len returns the number of states currently in the arena.
func (a *Arena) Len() int {
	return len(a.states)
}

// NewState appends a fresh non-accepting state with no transitions and
// returns its ID.
func (a *Arena) NewState() StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, State{Tag: NoTag, Transitions: make([]Transition, 0, 2)})
	return id
}

// checkID reports whether id names a state in this arena.
func (a *Arena) checkID(id StateID) bool {
	return id >= 0 && int(id) < len(a.states)
}

// GetState returns a bounds-checked read of the state named by id.
func (a *Arena) GetState(id StateID) (*State, bool) {
	if !a.checkID(id) {
		return nil, false
	}
	return &a.states[id], true
}

// SetAccepting marks id as accepting, optionally recording its rule tag.
// Passing NoTag leaves the state untagged (the single-rule case).
func (a *Arena) SetAccepting(id StateID, tag RuleTag) {
	st, ok := a.GetState(id)
	if !ok {
		return
	}
	st.Accepting = true
	st.Tag = tag
}

// AddTransition appends a transition from src to dst labeled label. It
// validates both IDs first: a failed call leaves the arena unchanged and
// returns false.
func (a *Arena) AddTransition(src, dst StateID, label Label) bool {
	if !a.checkID(src) || !a.checkID(dst) {
		return false
	}
	a.states[src].Transitions = append(a.states[src].Transitions, Transition{Label: label, Target: dst})
	return true
}
