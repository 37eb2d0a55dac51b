package ast

import (
	"fmt"
	"strconv"
)

// RingNumber is a ring-closure label in [0,99]. The lexer has already
// resolved both surface forms ("%dd" and a bare digit) to a plain decimal
// string, so Capture is a straight parse.
type RingNumber uint8

func (n *RingNumber) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("ring number: expected exactly one token, got %d", len(values))
	}
	v, err := strconv.Atoi(values[0])
	if err != nil || v < 0 || v > 99 {
		return fmt.Errorf("ring number: invalid value %q", values[0])
	}
	*n = RingNumber(v)
	return nil
}

// RingBond is an optional bond marker followed by a ring-closure number,
// spec.md §3.
type RingBond struct {
	Bond   *Bond      `parser:"@Bond?"`
	Number RingNumber `parser:"@RingNum"`
}

func (r RingBond) Equal(other RingBond) bool {
	if (r.Bond == nil) != (other.Bond == nil) {
		return false
	}
	if r.Bond != nil && *r.Bond != *other.Bond {
		return false
	}
	return r.Number == other.Number
}

func (r RingBond) String() string {
	s := ""
	if r.Bond != nil {
		s = r.Bond.String()
	}
	if r.Number < 10 {
		return s + strconv.Itoa(int(r.Number))
	}
	return fmt.Sprintf("%s%%%02d", s, r.Number)
}
