package spec

import "github.com/lexgen-dev/lexgen/internal/automaton"

// fragment is the start/accept pair of a partially built automaton piece,
// named NFAid in original_source/src/nfa.rs.
type fragment struct {
	start  automaton.StateID
	accept automaton.StateID
}

// Builder implements Thompson construction: each Spec node becomes a
// fragment with exactly one start and one accept state, wired together by
// Epsilon transitions per the construction rules in spec.md §4.3.
type Builder struct {
	arena *automaton.Arena
}

// NewBuilder returns a Builder backed by a fresh arena.
func NewBuilder() *Builder {
	return &Builder{arena: automaton.NewArena()}
}

// BuildFromSpec builds a single-rule NFA from tree, marking its one accept
// state with automaton.NoTag.
func BuildFromSpec(tree *Node) *automaton.NFA {
	b := NewBuilder()
	frag := b.build(tree)
	b.arena.SetAccepting(frag.accept, automaton.NoTag)
	return &automaton.NFA{Start: frag.start, Arena: b.arena}
}

// BuildFromSpecs builds one fused NFA from trees, one per rule: a shared
// start state reaches each rule's fragment by Epsilon, and each rule's
// accept state is tagged with its index in trees (spec.md §4.5 "earliest
// rule wins" depends on this tagging; fusion itself is order-preserving,
// mirroring original_source's fuse_nfas).
func BuildFromSpecs(trees []*Node) *automaton.NFA {
	b := NewBuilder()
	frags := make([]fragment, len(trees))
	for i, tree := range trees {
		frags[i] = b.build(tree)
	}

	start := b.arena.NewState()
	for i, frag := range frags {
		b.arena.AddTransition(start, frag.start, automaton.EpsilonLabel)
		b.arena.SetAccepting(frag.accept, automaton.RuleTag(i))
	}

	return &automaton.NFA{Start: start, Arena: b.arena}
}

func (b *Builder) build(n *Node) fragment {
	switch n.Kind {
	case Single:
		return b.single(n.Label)
	case Union:
		return b.union(b.build(n.Left), b.build(n.Right))
	case Concat:
		return b.concat(b.build(n.Left), b.build(n.Right))
	case Star:
		return b.star(b.build(n.Left))
	default:
		panic("spec: unknown Node Kind")
	}
}

func (b *Builder) single(label automaton.Label) fragment {
	start := b.arena.NewState()
	accept := b.arena.NewState()
	b.arena.AddTransition(start, accept, label)
	return fragment{start: start, accept: accept}
}

func (b *Builder) union(n1, n2 fragment) fragment {
	start := b.arena.NewState()
	b.arena.AddTransition(start, n1.start, automaton.EpsilonLabel)
	b.arena.AddTransition(start, n2.start, automaton.EpsilonLabel)

	accept := b.arena.NewState()
	b.arena.AddTransition(n1.accept, accept, automaton.EpsilonLabel)
	b.arena.AddTransition(n2.accept, accept, automaton.EpsilonLabel)

	return fragment{start: start, accept: accept}
}

func (b *Builder) concat(n1, n2 fragment) fragment {
	b.arena.AddTransition(n1.accept, n2.start, automaton.EpsilonLabel)
	return fragment{start: n1.start, accept: n2.accept}
}

func (b *Builder) star(n fragment) fragment {
	start := b.arena.NewState()
	accept := b.arena.NewState()

	b.arena.AddTransition(start, n.start, automaton.EpsilonLabel)
	b.arena.AddTransition(n.accept, accept, automaton.EpsilonLabel)
	b.arena.AddTransition(start, accept, automaton.EpsilonLabel)
	b.arena.AddTransition(n.accept, n.start, automaton.EpsilonLabel)

	return fragment{start: start, accept: accept}
}
