// Package ast holds the concrete syntax tree for a SMILES chain. The types
// here double as the participle grammar: the struct tags in this package
// are consumed directly by github.com/alecthomas/participle/v2 in the
// parser package, the same fold-grammar-into-AST shape the teacher's own
// (unused) grammar.go experiment used for YARA rules.
package ast

import (
	"fmt"

	"github.com/arvochem/smiles/elements"
)

// SymbolKind discriminates the three closed variants of Symbol.
type SymbolKind uint8

const (
	// Unknown is the "*" wildcard symbol; Element is meaningless for it.
	Unknown SymbolKind = iota
	ElementSymbolKind
	AromaticSymbolKind
)

func (k SymbolKind) String() string {
	switch k {
	case ElementSymbolKind:
		return "ElementSymbol"
	case AromaticSymbolKind:
		return "AromaticSymbol"
	default:
		return "Unknown"
	}
}

// Symbol is the closed sum ElementSymbol(Element) | AromaticSymbol(Element)
// | Unknown from spec.md §3. It captures a single lexer token spanning the
// Star, AromaticSymbol or ElementSymbol token types and resolves it to an
// elements.Element eagerly, so downstream code never re-touches the raw text.
type Symbol struct {
	Kind    SymbolKind
	Element elements.Element
}

// Capture implements participle's capture interface: it is invoked with the
// raw text of whichever alternative (Star | AromaticSymbol | ElementSymbol)
// matched at this grammar position.
func (s *Symbol) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("symbol: expected exactly one token, got %d", len(values))
	}
	text := values[0]
	if text == "*" {
		s.Kind = Unknown
		s.Element = elements.Unset
		return nil
	}
	if isLowerSymbol(text) {
		e, ok := elements.FromSymbol(upperFirst(text))
		if !ok || !elements.AromaticAllowed(e) {
			return fmt.Errorf("symbol: %q is not a valid aromatic symbol", text)
		}
		s.Kind = AromaticSymbolKind
		s.Element = e
		return nil
	}
	e, ok := elements.FromSymbol(text)
	if !ok {
		return fmt.Errorf("symbol: unrecognized element symbol %q", text)
	}
	s.Kind = ElementSymbolKind
	s.Element = e
	return nil
}

func isLowerSymbol(text string) bool {
	return text[0] >= 'a' && text[0] <= 'z'
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// Equal reports structural equality, ignoring nothing.
func (s Symbol) Equal(other Symbol) bool {
	return s.Kind == other.Kind && s.Element == other.Element
}

func (s Symbol) String() string {
	if s.Kind == Unknown {
		return "*"
	}
	sym := s.Element.String()
	if s.Kind == AromaticSymbolKind {
		return lowerFirst(sym)
	}
	return sym
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
