package parser

import (
	"testing"

	"github.com/arvochem/smiles/ast"
)

func mustParse(t *testing.T, input string) *ast.Chain {
	t.Helper()
	p := New()
	chain, err := p.Parse([]byte(input))
	if err != nil {
		t.Fatalf("failed to parse %q: %v", input, err)
	}
	return chain
}

func TestParseEthane(t *testing.T) {
	chain := mustParse(t, "CC")
	links := chain.Links()
	if len(links) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(links))
	}
	for _, l := range links {
		if !l.Atom.Atom.IsAliphaticCarbon() {
			t.Errorf("expected carbon, got %v", l.Atom.Atom)
		}
	}
}

func TestParseDoubleBond(t *testing.T) {
	chain := mustParse(t, "C=C")
	links := chain.Links()
	if len(links) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(links))
	}
	if links[1].Incoming == nil || links[1].Incoming.Bond == nil || *links[1].Incoming.Bond != ast.Double {
		t.Errorf("expected a double bond linking the two atoms, got %+v", links[1].Incoming)
	}
}

func TestParseBranches(t *testing.T) {
	chain := mustParse(t, "CC(C)C")
	links := chain.Links()
	if len(links) != 3 {
		t.Fatalf("expected 3 top-level atoms, got %d", len(links))
	}
	if len(links[1].Atom.Branches) != 1 {
		t.Fatalf("expected the second atom to carry one branch, got %d", len(links[1].Atom.Branches))
	}
}

func TestParseRingClosure(t *testing.T) {
	chain := mustParse(t, "C1CCCCC1")
	links := chain.Links()
	if len(links[0].Atom.RingBonds) != 1 || len(links[5].Atom.RingBonds) != 1 {
		t.Errorf("expected ring-closure digit 1 on first and last atom")
	}
}

func TestParseChirality(t *testing.T) {
	chain := mustParse(t, "F[As@TB15](Cl)(S)(Br)N")
	links := chain.Links()
	as := links[1].Atom.Atom
	if as.Bracket == nil || as.Bracket.Chirality == nil {
		t.Fatalf("expected a bracket atom carrying chirality, got %+v", as)
	}
	if as.Bracket.Chirality.Kind != ast.TrigonalBipyramidal || as.Bracket.Chirality.Param != 15 {
		t.Errorf("got %+v, want TrigonalBipyramidal(15)", as.Bracket.Chirality)
	}
}

func TestParseDotSeparatedComponents(t *testing.T) {
	chain := mustParse(t, "[Na+].[Cl-]")
	links := chain.Links()
	if len(links) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(links))
	}
	if links[1].Incoming == nil || !links[1].Incoming.IsDot {
		t.Errorf("expected the second atom to be connected by a dot, got %+v", links[1].Incoming)
	}
	if links[0].Atom.Atom.Bracket.Charge != 1 {
		t.Errorf("expected sodium charge +1, got %d", links[0].Atom.Atom.Bracket.Charge)
	}
	if links[1].Atom.Atom.Bracket.Charge != -1 {
		t.Errorf("expected chlorine charge -1, got %d", links[1].Atom.Atom.Bracket.Charge)
	}
}

func TestParseChainRemainingBytes(t *testing.T) {
	p := New()
	chain, remaining, err := p.ParseChain([]byte("CC)"))
	if err != nil {
		t.Fatalf("ParseChain: %v", err)
	}
	if len(chain.Links()) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(chain.Links()))
	}
	if string(remaining) != ")" {
		t.Errorf("remaining = %q, want %q", remaining, ")")
	}
}

func TestParseStrictRejectsTrailingBytes(t *testing.T) {
	p := New()
	if _, err := p.Parse([]byte("CC)")); err == nil {
		t.Error("expected an error for unconsumed trailing input")
	}
}

func TestParseStarAlone(t *testing.T) {
	chain := mustParse(t, "*")
	links := chain.Links()
	if len(links) != 1 || links[0].Atom.Atom.Kind() != ast.AtomUnknown {
		t.Errorf("expected a single unknown atom, got %+v", links)
	}
}

func TestParseEmptyInputFails(t *testing.T) {
	p := New()
	if _, err := p.Parse([]byte("")); err == nil {
		t.Error("expected a parse failure on empty input")
	}
}

func TestParseUnknownElementInBracketFails(t *testing.T) {
	p := New()
	if _, err := p.Parse([]byte("[Qq]")); err == nil {
		t.Error("expected a parse failure for an unknown element symbol")
	}
}

func TestParseHydrogenLikeBracketSymbols(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  string
	}{
		{"[H]", "H"},
		{"[He]", "He"},
		{"[Hf]", "Hf"},
		{"[Ho]", "Ho"},
		{"[Hs]", "Hs"},
	} {
		chain := mustParse(t, tc.input)
		links := chain.Links()
		if len(links) != 1 {
			t.Fatalf("%s: expected 1 atom, got %d", tc.input, len(links))
		}
		got := links[0].Atom.Atom.Bracket
		if got == nil || got.Sym.String() != tc.want {
			t.Errorf("%s: got symbol %+v, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseDeuteriumIsotopeTaggedHydrogen(t *testing.T) {
	chain := mustParse(t, "[2H]")
	links := chain.Links()
	bracket := links[0].Atom.Atom.Bracket
	if bracket == nil || bracket.Isotope == nil || *bracket.Isotope != 2 {
		t.Fatalf("expected isotope 2, got %+v", bracket)
	}
	if bracket.Sym.String() != "H" {
		t.Errorf("expected hydrogen symbol, got %q", bracket.Sym.String())
	}
}
