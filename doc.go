/*
Package lexgen implements the core of a lexer generator: translating a
regular expression into an executable automaton.

The pipeline is:

	Regex AST -> NFA Spec -> NFA (arena) -> [Simulator | DFA]

# Quick Start

	import "github.com/lexgen-dev/lexgen"

	nfa, err := lexgen.TranslateAndBuild("ab|cd")
	if err != nil {
	    return err
	}
	result := lexgen.Simulate(nfa, "ab")
	fmt.Println(result.Accepted) // true

# Building from a Spec directly

Callers that already have a Spec tree (internal/spec.Node) can skip the
regex translation step:

	tree := lexgen.ConcatNode(lexgen.SingleNode(lexgen.Symbol('a')), lexgen.SingleNode(lexgen.Symbol('b')))
	nfa := lexgen.BuildFromSpec(tree)

# Multiple Rules

A lexer recognizes many token patterns at once. BuildFromSpecs fuses one
NFA per rule into a single automaton with a shared start state; each
accepting state is tagged with the index of the rule that produced it:

	rules := []*lexgen.SpecNode{ruleA, ruleB}
	nfa := lexgen.BuildFromSpecs(rules)
	result := lexgen.Simulate(nfa, "ba")
	fmt.Println(result.Tag) // index of the winning rule

# Determinizing

ToDFA runs the subset construction, producing a deterministic automaton
with the same language as the source NFA:

	dfa := lexgen.ToDFA(nfa)
	result := lexgen.SimulateDFA(dfa, "ab")

# Scope

This package implements only the core translation-and-automaton pipeline.
It deliberately excludes: the textual scanner used to read lexer
specification files, the regex surface parser (regexp/syntax fills that
role here), the lexer specification file format, and target-code
emission. Those are external collaborators, not part of this package.

Non-goals: Unicode category classes, anchors, backreferences, lookaround,
captures, case folding, and greediness semantics beyond longest-match are
out of scope. The translator reports ErrUnsupportedConstruct for anchors,
captures, case-folded literals, character classes too large to expand, and
any other AST node outside its supported set. Non-greedy quantifiers are
translated like their greedy forms.

# Diagnostics

The internal/dot package renders any NFA or DFA as a Graphviz digraph for
debugging, via the Dump/DumpDFA helpers. This is a development aid, not
part of the generator's output.

# Version Information

	fmt.Println(lexgen.FullVersion())
*/
package lexgen
