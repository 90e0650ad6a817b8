package lexgen

import "github.com/lexgen-dev/lexgen/internal/spec"

// BuildFromSpec builds a single-rule NFA from tree via Thompson
// construction (spec.md §4.3).
func BuildFromSpec(tree *SpecNode) *NFA {
	return spec.BuildFromSpec(tree)
}

// BuildFromSpecs builds one fused multi-rule NFA from trees: a shared
// start state reaches each tree's fragment by an epsilon edge, and each
// tree's accept state is tagged with its index in trees (spec.md §4.3,
// §4.5).
func BuildFromSpecs(trees []*SpecNode) *NFA {
	return spec.BuildFromSpecs(trees)
}
