package lexgen

import (
	"github.com/lexgen-dev/lexgen/internal/automaton"
	"github.com/lexgen-dev/lexgen/internal/spec"
)

// Label is the alphabet of automaton transitions: Epsilon, Any, or
// Symbol(c) (spec.md §3).
type Label = automaton.Label

// RuleTag identifies which input rule an accepting state belongs to in a
// fused multi-rule NFA (spec.md §3, §4.5).
type RuleTag = automaton.RuleTag

// NoTag marks an accepting state with no associated rule.
const NoTag = automaton.NoTag

// StateID is a dense, non-negative index into an automaton's arena.
type StateID = automaton.StateID

// NFA is the finalized nondeterministic automaton: a start state plus the
// arena of states that owns it (spec.md §3).
type NFA = automaton.NFA

// DFA is the determinized automaton produced by ToDFA (spec.md §3).
type DFA = automaton.DFA

// SimResult is the outcome of simulating a word against an NFA or DFA.
type SimResult = automaton.SimResult

// SpecNode is a node of the intermediate Spec tree consumed by the builder
// (spec.md §3, §4.2): Single, Union, Concat, or Star.
type SpecNode = spec.Node

// Epsilon, AnyChar, and Symbol build the Label values a SpecNode leaf carries.
var (
	// Epsilon is the empty-symbol transition label.
	Epsilon = automaton.EpsilonLabel
	// AnyChar is the wildcard transition label, matching any single rune.
	AnyChar = automaton.AnyLabel
)

// Symbol builds a Label matching exactly the rune c.
func Symbol(c rune) Label {
	return automaton.SymbolLabel(c)
}

// SingleNode builds a leaf SpecNode matching exactly label.
func SingleNode(label Label) *SpecNode {
	return spec.NewSingle(label)
}

// UnionNode builds a SpecNode matching either left or right.
func UnionNode(left, right *SpecNode) *SpecNode {
	return spec.NewUnion(left, right)
}

// ConcatNode builds a SpecNode matching left followed by right.
func ConcatNode(left, right *SpecNode) *SpecNode {
	return spec.NewConcat(left, right)
}

// StarNode builds a SpecNode matching zero or more repetitions of body.
func StarNode(body *SpecNode) *SpecNode {
	return spec.NewStar(body)
}
