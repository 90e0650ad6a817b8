// Package spec defines the intermediate representation that sits between a
// translated regex AST and a built automaton: a small tree of Single,
// Union, Concat, and Star nodes (spec.md §4.2), grounded on
// original_source/src/nfa.rs's Spec enum and its constructor helpers.
package spec

import "github.com/lexgen-dev/lexgen/internal/automaton"

// Kind discriminates the four Node shapes a Spec tree can take.
type Kind int

const (
	// Single matches exactly one transition label.
	Single Kind = iota
	// Union matches either operand.
	Union
	// Concat matches the first operand followed by the second.
	Concat
	// Star matches zero or more repetitions of its operand.
	Star
)

// Node is one node of a Spec tree. Leaf nodes (Single) carry a Label;
// interior nodes carry one or two children depending on Kind.
type Node struct {
	Kind  Kind
	Label automaton.Label // meaningful only when Kind == Single
	Left  *Node           // Union, Concat, Star
	Right *Node           // Union, Concat
}

// NewSingle builds a leaf Node matching exactly label.
func NewSingle(label automaton.Label) *Node {
	return &Node{Kind: Single, Label: label}
}

// NewUnion builds a Node matching either left or right.
func NewUnion(left, right *Node) *Node {
	return &Node{Kind: Union, Left: left, Right: right}
}

// NewConcat builds a Node matching left followed by right.
func NewConcat(left, right *Node) *Node {
	return &Node{Kind: Concat, Left: left, Right: right}
}

// NewStar builds a Node matching zero or more repetitions of body.
func NewStar(body *Node) *Node {
	return &Node{Kind: Star, Left: body}
}

// Equal reports whether n and other describe the same Spec tree
// structurally (same shape, same labels) — used by this package's tests to
// compare trees without caring about object identity.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case Single:
		return n.Label == other.Label
	case Star:
		return n.Left.Equal(other.Left)
	default: // Union, Concat
		return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
	}
}

// ConcatAll folds a sequence of nodes left-associatively into nested Concat
// nodes: ConcatAll(a, b, c) == Concat(Concat(a, b), c). Panics on an empty
// sequence — callers (the translator's literal/counted-repetition paths)
// always have at least one node in hand.
func ConcatAll(nodes ...*Node) *Node {
	if len(nodes) == 0 {
		panic("spec: ConcatAll requires at least one node")
	}
	out := nodes[0]
	for _, n := range nodes[1:] {
		out = NewConcat(out, n)
	}
	return out
}

// UnionAll folds a sequence of nodes into nested Union nodes, used by the
// translator's character-class expansion.
func UnionAll(nodes ...*Node) *Node {
	if len(nodes) == 0 {
		panic("spec: UnionAll requires at least one node")
	}
	out := nodes[0]
	for _, n := range nodes[1:] {
		out = NewUnion(out, n)
	}
	return out
}
