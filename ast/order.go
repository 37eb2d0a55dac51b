package ast

import "fmt"

// CompareKey renders a value into a string that encodes every field, so
// that equal CompareKey strings imply structural equality and unequal ones
// compare consistently with Less. It exists for the "map keys downstream"
// half of spec.md §3's comparability requirement: none of these struct
// types are comparable with Go's == (pointer and slice fields), but the
// string CompareKey returns is, so map[string]T keyed by CompareKey() works
// wherever a caller would otherwise want map[T]V.
//
// Less gives the accompanying total order, used by tests that need a
// deterministic sort (e.g. golden output) rather than by anything in the
// parsing or lowering path itself.

func (k SymbolKind) compareKey() string { return fmt.Sprintf("%d", k) }

func (s Symbol) CompareKey() string {
	return fmt.Sprintf("%s:%03d", s.Kind.compareKey(), s.Element)
}

func (s Symbol) Less(other Symbol) bool { return s.CompareKey() < other.CompareKey() }

func (b Bond) CompareKey() string { return fmt.Sprintf("%d", b) }

func (b Bond) Less(other Bond) bool { return b < other }

func (d BondOrDot) CompareKey() string {
	if d.IsDot {
		return "d"
	}
	if d.Bond == nil {
		return "b?"
	}
	return "b" + d.Bond.CompareKey()
}

func (d BondOrDot) Less(other BondOrDot) bool { return d.CompareKey() < other.CompareKey() }

func (c Chirality) CompareKey() string {
	return fmt.Sprintf("%d:%03d", c.Kind, c.Param)
}

func (c Chirality) Less(other Chirality) bool { return c.CompareKey() < other.CompareKey() }

func (i Isotope) CompareKey() string { return fmt.Sprintf("%03d", i) }

func (i Isotope) Less(other Isotope) bool { return i < other }

func (h HCount) CompareKey() string { return fmt.Sprintf("%d", h) }

func (h HCount) Less(other HCount) bool { return h < other }

// CompareKey offsets Charge by -math.MinInt8 so the lexicographic order of
// the zero-padded string matches signed numeric order.
func (c Charge) CompareKey() string { return fmt.Sprintf("%03d", int(c)+128) }

func (c Charge) Less(other Charge) bool { return c < other }

func (n RingNumber) CompareKey() string { return fmt.Sprintf("%02d", n) }

func (n RingNumber) Less(other RingNumber) bool { return n < other }

func (r RingBond) CompareKey() string {
	b := "n"
	if r.Bond != nil {
		b = "b" + r.Bond.CompareKey()
	}
	return b + ":" + r.Number.CompareKey()
}

func (r RingBond) Less(other RingBond) bool { return r.CompareKey() < other.CompareKey() }

func (a BracketAtom) CompareKey() string {
	iso := "n"
	if a.Isotope != nil {
		iso = a.Isotope.CompareKey()
	}
	chir := "n"
	if a.Chirality != nil {
		chir = a.Chirality.CompareKey()
	}
	return iso + "|" + a.Sym.CompareKey() + "|" + chir + "|" + a.HCount.CompareKey() + "|" + a.Charge.CompareKey()
}

func (a BracketAtom) Less(other BracketAtom) bool { return a.CompareKey() < other.CompareKey() }

func (a AliphaticOrganicAtom) CompareKey() string { return fmt.Sprintf("%03d", a.Element) }

func (a AliphaticOrganicAtom) Less(other AliphaticOrganicAtom) bool {
	return a.Element < other.Element
}

func (a Atom) CompareKey() string {
	switch a.Kind() {
	case AtomBracket:
		return "1:" + a.Bracket.CompareKey()
	case AtomAliphaticOrganic:
		return "2:" + a.Aliphatic.CompareKey()
	default:
		return "0"
	}
}

func (a Atom) Less(other Atom) bool { return a.CompareKey() < other.CompareKey() }

func (b Branch) CompareKey() string {
	lead := "n"
	if b.Lead != nil {
		lead = b.Lead.CompareKey()
	}
	return lead + "(" + b.Inner.CompareKey() + ")"
}

func (b Branch) Less(other Branch) bool { return b.CompareKey() < other.CompareKey() }

func (a BranchedAtom) CompareKey() string {
	key := a.Atom.CompareKey() + "/rb["
	for i, rb := range a.RingBonds {
		if i > 0 {
			key += ","
		}
		key += rb.CompareKey()
	}
	key += "]/br["
	for i, br := range a.Branches {
		if i > 0 {
			key += ","
		}
		key += br.CompareKey()
	}
	return key + "]"
}

func (a BranchedAtom) Less(other BranchedAtom) bool { return a.CompareKey() < other.CompareKey() }

// CompareKey walks the chain spine iteratively (Chain.Links's own
// discipline); only Branch.Inner, bounded by input nesting depth, recurses.
func (c *Chain) CompareKey() string {
	if c == nil {
		return ""
	}
	key := ""
	for cur := c; cur != nil; cur = cur.Tail {
		key += cur.Head.CompareKey()
		key += "~"
		if cur.Link != nil {
			key += cur.Link.CompareKey()
		}
		key += ";"
	}
	return key
}

func (c *Chain) Less(other *Chain) bool { return c.CompareKey() < other.CompareKey() }
