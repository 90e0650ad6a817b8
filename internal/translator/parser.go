package translator

import (
	"fmt"
	"regexp/syntax"
)

// ErrInvalidPattern indicates the pattern is syntactically invalid.
var ErrInvalidPattern = fmt.Errorf("translator: invalid regex pattern")

// Parser wraps regexp/syntax.Parse with the flags this translator assumes
// (spec.md §9's resolved Any/newline policy needs DotNL so '.' parses to
// OpAnyChar rather than OpAnyCharNotNL), adapted from
// theakshaypant-regret/internal/parser.Parser.
type Parser struct {
	flags syntax.Flags
}

// NewParser returns a Parser using Perl syntax with DotNL set.
func NewParser() *Parser {
	return &Parser{flags: syntax.Perl | syntax.DotNL}
}

// Parse parses pattern into a regexp/syntax AST ready for Translate.
func (p *Parser) Parse(pattern string) (*syntax.Regexp, error) {
	re, err := syntax.Parse(pattern, p.flags)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

// MustParse is like Parse but panics on error. Useful in tests.
func (p *Parser) MustParse(pattern string) *syntax.Regexp {
	re, err := p.Parse(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Validate reports whether pattern is syntactically valid under this
// Parser's flags, without building a Spec from it.
func (p *Parser) Validate(pattern string) error {
	_, err := p.Parse(pattern)
	return err
}

// ParsePattern parses pattern with the default Parser; the root lexgen
// package's TranslateAndBuild composes this with Translate.
func ParsePattern(pattern string) (*syntax.Regexp, error) {
	return NewParser().Parse(pattern)
}
