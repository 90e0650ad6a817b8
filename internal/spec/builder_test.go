package spec

import (
	"testing"

	"github.com/lexgen-dev/lexgen/internal/automaton"
)

// mirrors test_single: Single(Epsilon) builds a two-state fragment joined
// by one Epsilon transition, with the second state accepting and having no
// outgoing transitions of its own.
func TestBuildFromSpecSingle(t *testing.T) {
	nfa := BuildFromSpec(NewSingle(automaton.EpsilonLabel))

	s0, ok := nfa.GetState(nfa.Start)
	if !ok {
		t.Fatal("start state missing")
	}
	if len(s0.Transitions) != 1 || s0.Transitions[0].Label != automaton.EpsilonLabel {
		t.Fatalf("unexpected start transitions: %+v", s0.Transitions)
	}

	acceptID := s0.Transitions[0].Target
	accept, ok := nfa.GetState(acceptID)
	if !ok || !accept.Accepting {
		t.Fatal("target of start's transition should be the accepting state")
	}
	if len(accept.Transitions) != 0 {
		t.Fatalf("accept state should have no outgoing transitions, got %+v", accept.Transitions)
	}
}

// mirrors test_union: Union(Single(Epsilon), Single(Any)) produces a start
// state with two Epsilon branches; each branch's own accept state then
// rejoins a single shared accept state.
func TestBuildFromSpecUnion(t *testing.T) {
	tree := NewUnion(NewSingle(automaton.EpsilonLabel), NewSingle(automaton.AnyLabel))
	nfa := BuildFromSpec(tree)

	s0, _ := nfa.GetState(nfa.Start)
	if len(s0.Transitions) != 2 {
		t.Fatalf("union start should fan out to 2 branches, got %d", len(s0.Transitions))
	}

	branch1, _ := nfa.GetState(s0.Transitions[0].Target)
	branch2, _ := nfa.GetState(s0.Transitions[1].Target)
	if len(branch1.Transitions) != 1 || len(branch2.Transitions) != 1 {
		t.Fatal("each branch should have exactly one outgoing transition")
	}

	branchAccept1, _ := nfa.GetState(branch1.Transitions[0].Target)
	branchAccept2, _ := nfa.GetState(branch2.Transitions[0].Target)
	if len(branchAccept1.Transitions) != 1 || len(branchAccept2.Transitions) != 1 {
		t.Fatal("each branch's accept state should have exactly one outgoing transition")
	}

	join1 := branchAccept1.Transitions[0].Target
	join2 := branchAccept2.Transitions[0].Target
	if join1 != join2 {
		t.Fatalf("both branches should rejoin at the same accept state, got %d and %d", join1, join2)
	}
	accept, _ := nfa.GetState(join1)
	if !accept.Accepting {
		t.Fatal("join state should be accepting")
	}
}

// mirrors test_simulation.
func TestBuildFromSpecSimulateSingleSymbol(t *testing.T) {
	nfa := BuildFromSpec(NewSingle(automaton.SymbolLabel('a')))

	if !automaton.Simulate(nfa, "a").Accepted {
		t.Fatal(`"a" should be accepted`)
	}
	if automaton.Simulate(nfa, "x").Accepted {
		t.Fatal(`"x" should be rejected`)
	}
	if automaton.Simulate(nfa, "aaa").Accepted {
		t.Fatal(`"aaa" should be rejected`)
	}
}

// mirrors test_simulation's star-of-union scenario.
func TestBuildFromSpecStarOfUnion(t *testing.T) {
	tree := NewStar(NewUnion(
		NewSingle(automaton.SymbolLabel('a')),
		NewSingle(automaton.SymbolLabel('b')),
	))
	nfa := BuildFromSpec(tree)

	accept := []string{"aabb", "bbaa", "", "aaaaaaaba"}
	for _, word := range accept {
		if !automaton.Simulate(nfa, word).Accepted {
			t.Errorf("%q should be accepted", word)
		}
	}

	if automaton.Simulate(nfa, "aaaaaaabbbbcaaa").Accepted {
		t.Fatal(`"aaaaaaabbbbcaaa" should be rejected (contains "c")`)
	}
}

// mirrors test_build_specs: two rules fused, "a" and "ba", share a start.
func TestBuildFromSpecsFusion(t *testing.T) {
	sp1 := NewSingle(automaton.SymbolLabel('a'))
	sp2 := NewConcat(NewSingle(automaton.SymbolLabel('b')), NewSingle(automaton.SymbolLabel('a')))

	nfa := BuildFromSpecs([]*Node{sp1, sp2})

	if !automaton.Simulate(nfa, "ba").Accepted {
		t.Fatal(`"ba" should be accepted`)
	}
	if !automaton.Simulate(nfa, "a").Accepted {
		t.Fatal(`"a" should be accepted`)
	}
	if automaton.Simulate(nfa, "baa").Accepted {
		t.Fatal(`"baa" should be rejected`)
	}
}

// rule tagging: rule 0 matches "a", rule 1 matches "ba" — each accepted
// word reports the index of the rule whose accept state it reached.
func TestBuildFromSpecsRuleTagging(t *testing.T) {
	sp0 := NewSingle(automaton.SymbolLabel('a'))
	sp1 := NewConcat(NewSingle(automaton.SymbolLabel('b')), NewSingle(automaton.SymbolLabel('a')))

	nfa := BuildFromSpecs([]*Node{sp0, sp1})

	got := automaton.Simulate(nfa, "a")
	if !got.Accepted || got.Tag != 0 {
		t.Fatalf(`"a": got %+v, want rule 0`, got)
	}

	got = automaton.Simulate(nfa, "ba")
	if !got.Accepted || got.Tag != 1 {
		t.Fatalf(`"ba": got %+v, want rule 1`, got)
	}
}

func TestNodeEqual(t *testing.T) {
	a := NewConcat(NewSingle(automaton.SymbolLabel('a')), NewStar(NewSingle(automaton.SymbolLabel('b'))))
	b := NewConcat(NewSingle(automaton.SymbolLabel('a')), NewStar(NewSingle(automaton.SymbolLabel('b'))))
	c := NewConcat(NewSingle(automaton.SymbolLabel('a')), NewStar(NewSingle(automaton.SymbolLabel('c'))))

	if !a.Equal(b) {
		t.Fatal("structurally identical trees should be Equal")
	}
	if a.Equal(c) {
		t.Fatal("trees differing in a leaf label should not be Equal")
	}
}

func TestConcatAllAndUnionAll(t *testing.T) {
	leaves := []*Node{
		NewSingle(automaton.SymbolLabel('a')),
		NewSingle(automaton.SymbolLabel('b')),
		NewSingle(automaton.SymbolLabel('c')),
	}

	want := NewConcat(NewConcat(leaves[0], leaves[1]), leaves[2])
	if !ConcatAll(leaves...).Equal(want) {
		t.Fatal("ConcatAll should left-associate")
	}

	nfa := BuildFromSpec(ConcatAll(leaves...))
	if !automaton.Simulate(nfa, "abc").Accepted {
		t.Fatal(`ConcatAll(a, b, c) should accept "abc"`)
	}

	nfa = BuildFromSpec(UnionAll(leaves...))
	for _, word := range []string{"a", "b", "c"} {
		if !automaton.Simulate(nfa, word).Accepted {
			t.Errorf("UnionAll(a, b, c) should accept %q", word)
		}
	}
	if automaton.Simulate(nfa, "ab").Accepted {
		t.Fatal(`UnionAll(a, b, c) should reject "ab"`)
	}
}
