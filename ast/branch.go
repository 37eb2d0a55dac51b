package ast

import "strings"

// Branch is a parenthesized sub-chain attached to a BranchedAtom, spec.md
// §3: an optional leading bond-or-dot followed by the nested Chain.
type Branch struct {
	Open  string     `parser:"\"(\""`
	Lead  *BondOrDot `parser:"@@?"`
	Inner *Chain     `parser:"@@"`
	Close string     `parser:"\")\""`
}

func (b Branch) Equal(other Branch) bool {
	if (b.Lead == nil) != (other.Lead == nil) {
		return false
	}
	if b.Lead != nil && !b.Lead.Equal(*other.Lead) {
		return false
	}
	return b.Inner.Equal(other.Inner)
}

func (b Branch) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	if b.Lead != nil {
		sb.WriteString(b.Lead.String())
	}
	sb.WriteString(b.Inner.String())
	sb.WriteByte(')')
	return sb.String()
}

// BranchedAtom is an Atom with an ordered sequence of ring bonds and an
// ordered sequence of branches, spec.md §3.
type BranchedAtom struct {
	Atom      Atom       `parser:"@@"`
	RingBonds []RingBond `parser:"@@*"`
	Branches  []Branch   `parser:"@@*"`
}

func (a BranchedAtom) Equal(other BranchedAtom) bool {
	if !a.Atom.Equal(other.Atom) {
		return false
	}
	if len(a.RingBonds) != len(other.RingBonds) {
		return false
	}
	for i := range a.RingBonds {
		if !a.RingBonds[i].Equal(other.RingBonds[i]) {
			return false
		}
	}
	if len(a.Branches) != len(other.Branches) {
		return false
	}
	for i := range a.Branches {
		if !a.Branches[i].Equal(other.Branches[i]) {
			return false
		}
	}
	return true
}

func (a BranchedAtom) String() string {
	var sb strings.Builder
	sb.WriteString(a.Atom.String())
	for _, r := range a.RingBonds {
		sb.WriteString(r.String())
	}
	for _, b := range a.Branches {
		sb.WriteString(b.String())
	}
	return sb.String()
}
