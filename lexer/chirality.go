package lexer

import (
	"bytes"
	"sort"
	"strconv"
)

// chiralityForms lists every legal chirality tag's literal text, sorted by
// decreasing length. spec.md §4.1: "the recognizer must enumerate the legal
// forms (@OH1..@OH30, @TB1..@TB20, @SP1..@SP3, @AL1..@AL2, @TH1..@TH2) in
// decreasing-length order, with @@ before @" — trying longest forms first is
// what keeps "@OH30" from matching as "@OH3" followed by a stray "0".
var chiralityForms []string

func init() {
	forms := []string{"@@", "@"}
	for _, c := range []struct {
		tag string
		max int
	}{
		{"TH", 2}, {"AL", 2}, {"SP", 3}, {"TB", 20}, {"OH", 30},
	} {
		for n := 1; n <= c.max; n++ {
			forms = append(forms, "@"+c.tag+strconv.Itoa(n))
		}
	}
	sort.SliceStable(forms, func(i, j int) bool { return len(forms[i]) > len(forms[j]) })
	chiralityForms = forms
}

// recognizeChirality matches the longest enumerated chirality form anchored
// at the start of in.
func recognizeChirality(in []byte) (string, []byte, bool) {
	for _, f := range chiralityForms {
		if bytes.HasPrefix(in, []byte(f)) {
			return f, in[len(f):], true
		}
	}
	return "", in, false
}
