// Package translator lowers a parsed regex AST (regexp/syntax.Regexp, the
// external "regex AST provider" collaborator named in spec.md §1/§6) into
// the internal/spec intermediate representation, implementing the
// regex_to_nfa_spec table from spec.md §4.4.
package translator

import (
	"errors"
	"fmt"
	"regexp/syntax"

	"github.com/lexgen-dev/lexgen/internal/automaton"
	"github.com/lexgen-dev/lexgen/internal/spec"
)

var (
	// ErrUnsupportedConstruct is returned for an AST node the translator
	// does not implement: anchors, lookaround, backreferences, captures,
	// or a character class too large to expand (spec.md §7).
	ErrUnsupportedConstruct = errors.New("translator: unsupported regex construct")

	// ErrEmptyLiteral is returned for a zero-rune literal node, which
	// spec.md §7 leaves undefined at the core boundary; this translator
	// rejects it explicitly rather than producing a degenerate Spec.
	ErrEmptyLiteral = errors.New("translator: empty literal")
)

// maxExpandedClassRunes bounds how large a regexp/syntax character class
// this translator will expand into a Union of Symbol labels before giving
// up and reporting ErrUnsupportedConstruct. Unicode category classes
// (explicitly out of scope, spec.md §1 Non-goals) blow well past this.
const maxExpandedClassRunes = 256

// Translate lowers re into a Spec tree. It is a total recursion over the
// AST subset named in spec.md §4.4; anything else fails with
// ErrUnsupportedConstruct.
func Translate(re *syntax.Regexp) (*spec.Node, error) {
	switch re.Op {
	case syntax.OpAnyChar:
		return spec.NewSingle(automaton.AnyLabel), nil

	case syntax.OpAnyCharNotNL:
		// Resolved open question (spec.md §9): Any matches every rune,
		// including '\n'. AnyCharNotNL has no Label of its own, so a
		// caller wanting "any but newline" must expand it before
		// reaching this translator.
		return nil, fmt.Errorf("%w: OpAnyCharNotNL (newline-excluding wildcard has no Label)", ErrUnsupportedConstruct)

	case syntax.OpEmptyMatch:
		return spec.NewSingle(automaton.EpsilonLabel), nil

	case syntax.OpLiteral:
		return translateLiteral(re)

	case syntax.OpCharClass:
		return translateCharClass(re)

	case syntax.OpConcat:
		return translateFold(re, spec.NewConcat, "OpConcat")

	case syntax.OpAlternate:
		return translateFold(re, spec.NewUnion, "OpAlternate")

	case syntax.OpStar:
		return translateRepeatOp(re, repeatStar)

	case syntax.OpPlus:
		return translateRepeatOp(re, repeatPlus)

	case syntax.OpQuest:
		return translateRepeatOp(re, repeatQuest)

	case syntax.OpRepeat:
		return translateCountedRepeat(re)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConstruct, opName(re.Op))
	}
}

func translateLiteral(re *syntax.Regexp) (*spec.Node, error) {
	if len(re.Rune) == 0 {
		return nil, ErrEmptyLiteral
	}
	if re.Flags&syntax.FoldCase != 0 {
		return nil, fmt.Errorf("%w: case-folded literal", ErrUnsupportedConstruct)
	}
	nodes := make([]*spec.Node, len(re.Rune))
	for i, r := range re.Rune {
		nodes[i] = spec.NewSingle(automaton.SymbolLabel(r))
	}
	return spec.ConcatAll(nodes...), nil
}

// translateCharClass expands a bracket expression's rune-range pairs
// (re.Rune holds alternating lo/hi bounds) into a Union of Symbol labels,
// per spec.md §4.7: the core has no interval label, so small classes are
// expanded upstream of the builder.
func translateCharClass(re *syntax.Regexp) (*spec.Node, error) {
	total := 0
	for i := 0; i < len(re.Rune); i += 2 {
		total += int(re.Rune[i+1]-re.Rune[i]) + 1
	}
	if total == 0 {
		return nil, ErrEmptyLiteral
	}
	if total > maxExpandedClassRunes {
		return nil, fmt.Errorf("%w: character class spans %d runes (limit %d)", ErrUnsupportedConstruct, total, maxExpandedClassRunes)
	}

	var nodes []*spec.Node
	for i := 0; i < len(re.Rune); i += 2 {
		for r := re.Rune[i]; r <= re.Rune[i+1]; r++ {
			nodes = append(nodes, spec.NewSingle(automaton.SymbolLabel(r)))
		}
	}
	return spec.UnionAll(nodes...), nil
}

// translateFold left-folds combine over the translated children of re, in
// order (spec.md §4.4's "Ordering discipline": deterministic state
// numbering is a function of left-to-right fold order).
func translateFold(re *syntax.Regexp, combine func(a, b *spec.Node) *spec.Node, opLabel string) (*spec.Node, error) {
	if len(re.Sub) == 0 {
		return nil, fmt.Errorf("%w: empty %s", ErrUnsupportedConstruct, opLabel)
	}

	acc, err := Translate(re.Sub[0])
	if err != nil {
		return nil, err
	}
	for _, sub := range re.Sub[1:] {
		next, err := Translate(sub)
		if err != nil {
			return nil, err
		}
		acc = combine(acc, next)
	}
	return acc, nil
}

func repeatStar(e *spec.Node) *spec.Node { return spec.NewStar(e) }
func repeatPlus(e *spec.Node) *spec.Node { return spec.NewConcat(e, spec.NewStar(e)) }
func repeatQuest(e *spec.Node) *spec.Node {
	return spec.NewUnion(spec.NewSingle(automaton.EpsilonLabel), e)
}

func translateRepeatOp(re *syntax.Regexp, apply func(*spec.Node) *spec.Node) (*spec.Node, error) {
	if len(re.Sub) != 1 {
		return nil, fmt.Errorf("%w: %s with %d operands", ErrUnsupportedConstruct, opName(re.Op), len(re.Sub))
	}
	e, err := Translate(re.Sub[0])
	if err != nil {
		return nil, err
	}
	return apply(e), nil
}

// translateCountedRepeat implements spec.md §4.4's `{m,n}` lowering:
// a prefix of exactly `min` copies, then either an unbounded Star tail
// (when max is absent) or a union over the `max-min+1` admissible lengths.
func translateCountedRepeat(re *syntax.Regexp) (*spec.Node, error) {
	if len(re.Sub) != 1 {
		return nil, fmt.Errorf("%w: OpRepeat with %d operands", ErrUnsupportedConstruct, len(re.Sub))
	}
	e, err := Translate(re.Sub[0])
	if err != nil {
		return nil, err
	}

	min, max := re.Min, re.Max

	var prefix *spec.Node
	if min == 0 {
		prefix = spec.NewSingle(automaton.EpsilonLabel)
	} else {
		copies := make([]*spec.Node, min)
		for i := range copies {
			copies[i] = e
		}
		prefix = spec.ConcatAll(copies...)
	}

	if max < 0 { // `{m,}`: unbounded tail
		return spec.NewConcat(prefix, spec.NewStar(e)), nil
	}

	acc := prefix
	cur := prefix
	for k := min + 1; k <= max; k++ {
		cur = spec.NewConcat(cur, e)
		acc = spec.NewUnion(acc, cur)
	}
	return acc, nil
}

func opName(op syntax.Op) string {
	return fmt.Sprintf("regexp/syntax.Op(%d)", op)
}
