package lexgen

import (
	"errors"

	"github.com/lexgen-dev/lexgen/internal/translator"
)

var (
	// ErrInvalidPattern indicates the pattern is syntactically invalid
	// regex syntax (rejected by regexp/syntax before translation begins).
	ErrInvalidPattern = translator.ErrInvalidPattern

	// ErrUnsupportedConstruct indicates the regex AST contains a node the
	// translator does not implement: anchors, lookaround, backreferences,
	// captures, or an oversized character class (spec.md §7).
	ErrUnsupportedConstruct = translator.ErrUnsupportedConstruct

	// ErrEmptyLiteral indicates a literal node with zero characters
	// reached the translator (spec.md §7 leaves this undefined; this
	// module rejects it explicitly).
	ErrEmptyLiteral = translator.ErrEmptyLiteral

	// ErrInvalidStateID indicates an operation referenced a StateID that
	// does not exist in its arena — a programming bug in the caller, per
	// spec.md §7's InvalidStateId error kind.
	ErrInvalidStateID = errors.New("lexgen: invalid state id")
)
