// Package parser builds the chain grammar from spec.md §4.2 on top of
// github.com/alecthomas/participle/v2, fed by the custom lexer.Definition
// in the lexer package instead of participle's regexp-based
// lexer.MustSimple. The grammar and the CST are the same types (ast.Chain
// and friends): participle is built directly against struct tags declared
// in the ast package, the fold-grammar-into-AST shape participle expects.
package parser

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/participle/v2"
	pplex "github.com/alecthomas/participle/v2/lexer"

	"github.com/arvochem/smiles/ast"
	smileslex "github.com/arvochem/smiles/lexer"
)

// ParseError reports a grammar failure at a byte offset, spec.md §7.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser parses SMILES chains. It holds no mutable state after
// construction and is safe for concurrent use by multiple goroutines,
// spec.md §4.2 ("The parser is reentrant and thread-safe").
type Parser struct {
	built *participle.Parser[ast.Chain]
}

// New builds a Parser. Building the grammar is the expensive, one-time
// reflection-based step; New is meant to be called once per process and
// the resulting Parser reused.
func New() *Parser {
	built := participle.MustBuild[ast.Chain](
		participle.Lexer(smileslex.Definition{}),
		participle.UseLookahead(2),
	)
	return &Parser{built: built}
}

// ParseChain is the non-strict entry point from spec.md §6:
// parse_chain(bytes) -> (Chain, remaining_bytes). It never errors on
// trailing input; callers that need strict parsing should use Parse, or
// check len(remaining) == 0 themselves.
func (p *Parser) ParseChain(input []byte) (*ast.Chain, []byte, error) {
	chain, consumed, err := p.parse(input)
	if err != nil {
		return nil, input, err
	}
	return chain, input[consumed:], nil
}

// Parse is the strict entry point: it fails if any input remains after a
// successful chain parse, spec.md §4.2's "user-visible error" case.
func (p *Parser) Parse(input []byte) (*ast.Chain, error) {
	chain, remaining, err := p.ParseChain(input)
	if err != nil {
		return nil, err
	}
	if len(remaining) != 0 {
		return nil, &ParseError{
			Offset: len(input) - len(remaining),
			Err:    fmt.Errorf("unconsumed input: %q", remaining),
		}
	}
	return chain, nil
}

// parse drives participle over input and reports how many bytes were
// consumed. participle is told to allow trailing tokens, so it stops at the
// first token the grammar doesn't need without requiring EOF, and after a
// successful parse the peeking lexer's own position is exactly the spec.md
// §6 "remaining_bytes" boundary.
func (p *Parser) parse(input []byte) (*ast.Chain, int, error) {
	lx, err := smileslex.Definition{}.Lex("", bytes.NewReader(input))
	if err != nil {
		return nil, 0, fmt.Errorf("parser: %w", err)
	}
	peek, err := pplex.Upgrade(lx)
	if err != nil {
		return nil, 0, &ParseError{Offset: offsetFromError(err), Err: err}
	}
	chain, err := p.built.ParseFromLexer(peek, participle.AllowTrailing(true))
	if err != nil {
		return nil, 0, &ParseError{Offset: offsetFromError(err), Err: err}
	}
	consumed := peek.Peek().Pos.Offset
	return chain, consumed, nil
}

func offsetFromError(err error) int {
	if perr, ok := err.(participle.Error); ok {
		return perr.Position().Offset
	}
	return 0
}
