package lexer

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
)

func tokenize(t *testing.T, input string) []lexer.Token {
	t.Helper()
	lx, err := Definition{}.Lex("test", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if tok.Type == lexer.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestTokenizeOrganicChain(t *testing.T) {
	toks := tokenize(t, "CC(C)C")
	var types []rune
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []rune{OrganicSymbol, OrganicSymbol, LParen, OrganicSymbol, RParen, OrganicSymbol}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), toks)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d type = %d, want %d", i, types[i], want[i])
		}
	}
}

func TestTokenizeBracketAtom(t *testing.T) {
	toks := tokenize(t, "[16CH+3]")
	if len(toks) != 6 {
		t.Fatalf("got %d tokens, want 6: %+v", len(toks), toks)
	}
	if toks[1].Type != Isotope || toks[1].Value != "16" {
		t.Errorf("isotope token = %+v", toks[1])
	}
	if toks[2].Type != ElementSymbol || toks[2].Value != "C" {
		t.Errorf("element token = %+v", toks[2])
	}
	if toks[3].Type != HCount || toks[3].Value != "H" {
		t.Errorf("hcount token = %+v", toks[3])
	}
	if toks[4].Type != ChargeRun || toks[4].Value != "+3" {
		t.Errorf("charge token = %+v", toks[4])
	}
}

func TestTokenizeRingDigitsPercentForm(t *testing.T) {
	toks := tokenize(t, "%125")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if toks[0].Type != RingNum || toks[0].Value != "12" {
		t.Errorf("first token = %+v, want RingNum 12", toks[0])
	}
	if toks[1].Type != RingNum || toks[1].Value != "5" {
		t.Errorf("second token = %+v, want RingNum 5", toks[1])
	}
}

func TestTokenizeChiralityLongestMatch(t *testing.T) {
	toks := tokenize(t, "[As@TB15]")
	var chir *lexer.Token
	for i := range toks {
		if toks[i].Type == Chirality {
			chir = &toks[i]
		}
	}
	if chir == nil {
		t.Fatal("no chirality token found")
	}
	if chir.Value != "@TB15" {
		t.Errorf("chirality token value = %q, want @TB15", chir.Value)
	}
}

func TestTokenizeAromaticTwoLetterFirst(t *testing.T) {
	toks := tokenize(t, "[se]")
	if len(toks) != 3 || toks[1].Type != AromaticSymbol || toks[1].Value != "se" {
		t.Fatalf("tokens = %+v", toks)
	}
}

func TestTokenizeHydrogenSymbolNotHCount(t *testing.T) {
	for _, in := range []string{"[H]", "[He]", "[Hf]", "[Ho]", "[Hs]"} {
		toks := tokenize(t, in)
		if len(toks) != 3 {
			t.Fatalf("%s: got %d tokens, want 3: %+v", in, len(toks), toks)
		}
		if toks[1].Type != ElementSymbol {
			t.Errorf("%s: token 1 type = %d, want ElementSymbol (%d): %+v", in, toks[1].Type, ElementSymbol, toks[1])
		}
	}
}

func TestTokenizeIsotopeHydrogenNotHCount(t *testing.T) {
	toks := tokenize(t, "[2H]")
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(toks), toks)
	}
	if toks[1].Type != Isotope || toks[1].Value != "2" {
		t.Errorf("isotope token = %+v", toks[1])
	}
	if toks[2].Type != ElementSymbol || toks[2].Value != "H" {
		t.Errorf("element token = %+v, want ElementSymbol H", toks[2])
	}
}

func TestTokenizeUnrecognizedByte(t *testing.T) {
	lx, err := Definition{}.Lex("test", strings.NewReader("Q"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if _, err := lx.Next(); err == nil {
		t.Error("expected an error for an unrecognized byte")
	}
}
