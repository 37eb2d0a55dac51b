package ast

import (
	"fmt"
	"strconv"

	"github.com/arvochem/smiles/elements"
)

// Isotope is the optional isotope mass number inside a bracket atom,
// spec.md §3: in [0,999], present only when the source gave 1-3 digits
// immediately after "[".
type Isotope uint16

func (i *Isotope) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("isotope: expected exactly one token, got %d", len(values))
	}
	n, err := strconv.Atoi(values[0])
	if err != nil || n < 0 || n > 999 {
		return fmt.Errorf("isotope: invalid mass number %q", values[0])
	}
	*i = Isotope(n)
	return nil
}

// HCount is the hydrogen count annotation inside a bracket atom, spec.md
// §4.1: absent means 0, "H" alone means 1, "H" plus one digit means that
// digit.
type HCount uint8

func (h *HCount) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("hcount: expected exactly one token, got %d", len(values))
	}
	text := values[0]
	if text == "H" {
		*h = 1
		return nil
	}
	n, err := strconv.Atoi(text[1:])
	if err != nil || n < 0 || n > 9 {
		return fmt.Errorf("hcount: invalid count %q", text)
	}
	*h = HCount(n)
	return nil
}

// Charge is the signed formal charge inside a bracket atom, spec.md §4.1:
// the sum of zero or more signed runs, each contributed by one lexer
// ChargeRun token. Capture is accumulation-safe: it may be invoked once
// with every run's text, or once per run, and either way the result is
// the same running sum.
type Charge int8

func (c *Charge) Capture(values []string) error {
	total := int(*c)
	for _, v := range values {
		if len(v) == 0 {
			return fmt.Errorf("charge: empty run")
		}
		sign := 1
		digits := v[1:]
		switch v[0] {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return fmt.Errorf("charge: run %q does not start with a sign", v)
		}
		magnitude := 1
		if digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return fmt.Errorf("charge: invalid magnitude in run %q: %w", v, err)
			}
			magnitude = n
		}
		total += sign * magnitude
	}
	if total < -128 || total > 127 {
		return fmt.Errorf("charge: %d overflows int8", total)
	}
	*c = Charge(total)
	return nil
}

// BracketAtom is an atom written between "[" and "]", spec.md §3.
type BracketAtom struct {
	Isotope   *Isotope   `parser:"\"[\" @Isotope?"`
	Sym       Symbol     `parser:"@(Star|AromaticSymbol|ElementSymbol)"`
	Chirality *Chirality `parser:"@Chirality?"`
	HCount    HCount     `parser:"@HCount?"`
	Charge    Charge     `parser:"@ChargeRun*"`
	Close     string     `parser:"\"]\""`
}

// Equal reports structural equality.
func (a BracketAtom) Equal(other BracketAtom) bool {
	if (a.Isotope == nil) != (other.Isotope == nil) {
		return false
	}
	if a.Isotope != nil && *a.Isotope != *other.Isotope {
		return false
	}
	if !a.Sym.Equal(other.Sym) {
		return false
	}
	if (a.Chirality == nil) != (other.Chirality == nil) {
		return false
	}
	if a.Chirality != nil && !a.Chirality.Equal(*other.Chirality) {
		return false
	}
	return a.HCount == other.HCount && a.Charge == other.Charge
}

func (a BracketAtom) String() string {
	s := "["
	if a.Isotope != nil {
		s += strconv.Itoa(int(*a.Isotope))
	}
	s += a.Sym.String()
	if a.Chirality != nil {
		s += a.Chirality.String()
	}
	if a.HCount == 1 {
		s += "H"
	} else if a.HCount > 1 {
		s += "H" + strconv.Itoa(int(a.HCount))
	}
	if a.Charge != 0 {
		sign := "+"
		mag := int(a.Charge)
		if mag < 0 {
			sign = "-"
			mag = -mag
		}
		if mag == 1 {
			s += sign
		} else {
			s += sign + strconv.Itoa(mag)
		}
	}
	return s + "]"
}

// AliphaticOrganicAtom is an unbracketed atom restricted to the organic
// subset {B,C,N,O,S,P,F,Cl,Br,I}, spec.md §3.
type AliphaticOrganicAtom struct {
	Element elements.Element
}

// Capture resolves the single OrganicSymbol token into its Element.
func (a *AliphaticOrganicAtom) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("aliphatic organic atom: expected exactly one token, got %d", len(values))
	}
	e, ok := elements.FromSymbol(values[0])
	if !ok || !elements.OrganicSubset(e) {
		return fmt.Errorf("aliphatic organic atom: %q is not in the organic subset", values[0])
	}
	a.Element = e
	return nil
}

func (a AliphaticOrganicAtom) Equal(other AliphaticOrganicAtom) bool {
	return a.Element == other.Element
}

func (a AliphaticOrganicAtom) String() string {
	return a.Element.String()
}

// AtomKind discriminates Atom's three variants.
type AtomKind uint8

const (
	AtomUnknown AtomKind = iota
	AtomBracket
	AtomAliphaticOrganic
)

// Atom is the closed union Bracket(BracketAtom) | AliphaticOrganic(...) |
// Unknown from spec.md §3.
type Atom struct {
	IsStar    bool                  `parser:"(  @Star"`
	Bracket   *BracketAtom          `parser:" | @@"`
	Aliphatic *AliphaticOrganicAtom `parser:" | @OrganicSymbol )"`
}

// Kind reports which variant is populated.
func (a Atom) Kind() AtomKind {
	switch {
	case a.Bracket != nil:
		return AtomBracket
	case a.Aliphatic != nil:
		return AtomAliphaticOrganic
	default:
		return AtomUnknown
	}
}

// Element reports the atom's element, or elements.Unset for the "*" wildcard.
func (a Atom) Element() elements.Element {
	switch {
	case a.Bracket != nil:
		return a.Bracket.Sym.Element
	case a.Aliphatic != nil:
		return a.Aliphatic.Element
	default:
		return elements.Unset
	}
}

// IsAliphaticCarbon reports whether this atom participates in the
// carbon-backbone query (spec.md §4.4): an unbracketed organic carbon, or a
// bracket atom whose symbol is ElementSymbolKind carbon (not aromatic).
func (a Atom) IsAliphaticCarbon() bool {
	switch {
	case a.Aliphatic != nil:
		return a.Aliphatic.Element == elements.Carbon
	case a.Bracket != nil:
		return a.Bracket.Sym.Kind == ElementSymbolKind && a.Bracket.Sym.Element == elements.Carbon
	default:
		return false
	}
}

func (a Atom) Equal(other Atom) bool {
	if a.Kind() != other.Kind() {
		return false
	}
	switch a.Kind() {
	case AtomBracket:
		return a.Bracket.Equal(*other.Bracket)
	case AtomAliphaticOrganic:
		return a.Aliphatic.Equal(*other.Aliphatic)
	default:
		return true
	}
}

func (a Atom) String() string {
	switch a.Kind() {
	case AtomBracket:
		return a.Bracket.String()
	case AtomAliphaticOrganic:
		return a.Aliphatic.String()
	default:
		return "*"
	}
}
