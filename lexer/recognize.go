// Package lexer turns raw SMILES bytes into a participle-compatible token
// stream. The low-level work is a set of pure recognizer functions, one per
// spec.md §4.1 bullet, each of the shape
//
//	func recognizeX(in []byte) (value V, rest []byte, ok bool)
//
// None of them allocate on a hit beyond the small string built from the
// matched bytes, and none of them mutate in; a failed match always leaves
// the input slice untouched, exactly as spec.md §4.1 requires.
package lexer

import "github.com/arvochem/smiles/elements"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// recognizeElementSymbol matches any of the 118 IUPAC symbols used inside a
// bracket atom. It tries the two-letter prefix first and falls through to
// the single-letter prefix only when the two-letter lookup fails — the
// "alternation order, not longest-match scan" spec.md §4.1 asks for, here
// expressed as a length-ordered pair of table lookups instead of a
// hand-enumerated 118-way alt() chain.
func recognizeElementSymbol(in []byte) (elements.Element, []byte, bool) {
	if len(in) >= 2 {
		if e, ok := elements.FromSymbol(string(in[:2])); ok {
			return e, in[2:], true
		}
	}
	if len(in) >= 1 {
		if e, ok := elements.FromSymbol(string(in[:1])); ok {
			return e, in[1:], true
		}
	}
	return elements.Unset, in, false
}

// recognizeAromaticSymbol matches one of {se, as, b, c, n, o, p, s},
// two-letter forms first.
func recognizeAromaticSymbol(in []byte) (string, []byte, bool) {
	if len(in) >= 2 {
		switch string(in[:2]) {
		case "se", "as":
			return string(in[:2]), in[2:], true
		}
	}
	if len(in) >= 1 {
		switch in[0] {
		case 'b', 'c', 'n', 'o', 'p', 's':
			return string(in[:1]), in[1:], true
		}
	}
	return "", in, false
}

// recognizeOrganicSymbol matches the unbracketed organic subset
// {Cl, Br, B, C, N, O, S, P, F, I}, two-letter forms first.
func recognizeOrganicSymbol(in []byte) (string, []byte, bool) {
	if len(in) >= 2 {
		switch string(in[:2]) {
		case "Cl", "Br":
			return string(in[:2]), in[2:], true
		}
	}
	if len(in) >= 1 {
		switch in[0] {
		case 'B', 'C', 'N', 'O', 'S', 'P', 'F', 'I':
			return string(in[:1]), in[1:], true
		}
	}
	return "", in, false
}

// recognizeBond matches one of the seven single-character bond markers.
func recognizeBond(in []byte) (byte, []byte, bool) {
	if len(in) == 0 {
		return 0, in, false
	}
	switch in[0] {
	case '-', '=', '#', '$', ':', '/', '\\':
		return in[0], in[1:], true
	}
	return 0, in, false
}

// recognizeRingDigits matches a ring-closure number: "%" followed by
// exactly two decimal digits, tried first, else a single decimal digit.
// The percent form is resolved here, not left for the grammar layer, so
// the grammar only ever sees a plain decimal string.
func recognizeRingDigits(in []byte) (string, []byte, bool) {
	if len(in) >= 3 && in[0] == '%' && isDigit(in[1]) && isDigit(in[2]) {
		return string(in[1:3]), in[3:], true
	}
	if len(in) >= 1 && isDigit(in[0]) {
		return string(in[0:1]), in[1:], true
	}
	return "", in, false
}

// recognizeIsotope matches 1-3 consecutive decimal digits.
func recognizeIsotope(in []byte) (string, []byte, bool) {
	n := 0
	for n < 3 && n < len(in) && isDigit(in[n]) {
		n++
	}
	if n == 0 {
		return "", in, false
	}
	return string(in[:n]), in[n:], true
}

// recognizeHCount matches "H" optionally followed by exactly one decimal
// digit.
func recognizeHCount(in []byte) (string, []byte, bool) {
	if len(in) == 0 || in[0] != 'H' {
		return "", in, false
	}
	if len(in) >= 2 && isDigit(in[1]) {
		return string(in[:2]), in[2:], true
	}
	return "H", in[1:], true
}

// recognizeChargeRun matches one signed run: "+" or "-" optionally followed
// by 1-2 decimal digits.
func recognizeChargeRun(in []byte) (string, []byte, bool) {
	if len(in) == 0 || (in[0] != '+' && in[0] != '-') {
		return "", in, false
	}
	n := 1
	for n < 3 && n < len(in) && isDigit(in[n]) {
		n++
	}
	return string(in[:n]), in[n:], true
}
