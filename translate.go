package lexgen

import (
	"github.com/lexgen-dev/lexgen/internal/translator"
)

// Translate lowers a parsed regex pattern into a SpecNode tree (spec.md
// §4.4). It parses pattern with regexp/syntax (Perl syntax, DotNL set so
// '.' matches '\n' per the resolved Any/newline policy — see SPEC_FULL.md
// §4) and then runs the AST through the translator.
func Translate(pattern string) (*SpecNode, error) {
	re, err := translator.ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return translator.Translate(re)
}

// TranslateAndBuild translates pattern and builds a single-rule NFA from
// it in one call.
func TranslateAndBuild(pattern string) (*NFA, error) {
	tree, err := Translate(pattern)
	if err != nil {
		return nil, err
	}
	return BuildFromSpec(tree), nil
}

// TranslateAndBuildRules translates each pattern in patterns and fuses the
// resulting Spec trees into one multi-rule NFA, in order: rule i's
// accepting states are tagged with RuleTag(i).
func TranslateAndBuildRules(patterns []string) (*NFA, error) {
	trees := make([]*SpecNode, len(patterns))
	for i, pattern := range patterns {
		tree, err := Translate(pattern)
		if err != nil {
			return nil, err
		}
		trees[i] = tree
	}
	return BuildFromSpecs(trees), nil
}
