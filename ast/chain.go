package ast

import "strings"

// Chain is the right-recursive list of branched atoms from spec.md §3: a
// head BranchedAtom, an optional connecting BondOrDot, and an optional tail
// Chain. participle parses this recursively (its own internal loop handles
// the repetition, same as the cyclic AST shapes documented for grammars
// built on this library); code in this repository that walks a Chain after
// it is built — molgraph's lowering pass in particular — does so
// iteratively instead, per spec.md §9's "convert recursion to iteration"
// note.
type Chain struct {
	Head BranchedAtom `parser:"@@"`
	Link *BondOrDot   `parser:"@@?"`
	Tail *Chain       `parser:"@@?"`
}

// ChainLink is a head and the bond-or-dot connecting it to the previous
// head, used by Links to expose the chain as a flat, iteration-friendly
// sequence.
type ChainLink struct {
	Atom     *BranchedAtom
	Incoming *BondOrDot // nil for the first link
}

// Links flattens the right-recursive structure into a slice without
// recursing: a single forward pointer-chase over Tail.
func (c *Chain) Links() []ChainLink {
	var out []ChainLink
	var incoming *BondOrDot
	for cur := c; cur != nil; cur = cur.Tail {
		out = append(out, ChainLink{Atom: &cur.Head, Incoming: incoming})
		incoming = cur.Link
	}
	return out
}

func (c *Chain) Equal(other *Chain) bool {
	if c == nil || other == nil {
		return c == other
	}
	if !c.Head.Equal(other.Head) {
		return false
	}
	if (c.Link == nil) != (other.Link == nil) {
		return false
	}
	if c.Link != nil && !c.Link.Equal(*other.Link) {
		return false
	}
	return c.Tail.Equal(other.Tail)
}

// String renders the canonical printer described in SPEC_FULL.md §5.3:
// bonds and dots only where the parsed chain carries them, bracket atoms
// always bracketed as built, ring numbers as parsed. It is not a canonicalization algorithm; it exists to make the
// idempotent-re-parsing property (spec.md §8) testable.
func (c *Chain) String() string {
	if c == nil {
		return ""
	}
	var sb strings.Builder
	for cur := c; cur != nil; cur = cur.Tail {
		sb.WriteString(cur.Head.String())
		if cur.Link != nil {
			sb.WriteString(cur.Link.String())
		}
	}
	return sb.String()
}
