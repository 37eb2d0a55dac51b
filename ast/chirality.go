package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ChiralityKind discriminates the seven chirality classes from spec.md §3.
type ChiralityKind uint8

const (
	Anticlockwise ChiralityKind = iota + 1
	Clockwise
	Tetrahedral
	Allenal
	SquarePlanar
	TrigonalBipyramidal
	Octahedral
)

// chiralityRange gives the [min,max] parameter range for classes that carry
// one (Anticlockwise/Clockwise have no parameter and are not listed here).
var chiralityRange = map[ChiralityKind][2]int{
	Tetrahedral:         {1, 2},
	Allenal:             {1, 2},
	SquarePlanar:        {1, 3},
	TrigonalBipyramidal: {1, 20},
	Octahedral:          {1, 30},
}

var chiralityTag = map[ChiralityKind]string{
	Tetrahedral: "TH", Allenal: "AL", SquarePlanar: "SP",
	TrigonalBipyramidal: "TB", Octahedral: "OH",
}

// Chirality is the closed union from spec.md §3: Anticlockwise, Clockwise,
// or one of five tagged classes carrying a numeric parameter in a
// class-specific range.
type Chirality struct {
	Kind  ChiralityKind
	Param int
}

// Capture parses the single longest-match token the lexer produced (e.g.
// "@", "@@", "@TB15", "@OH30") into the Kind/Param pair.
func (c *Chirality) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("chirality: expected exactly one token, got %d", len(values))
	}
	text := values[0]
	switch text {
	case "@@":
		c.Kind = Clockwise
		return nil
	case "@":
		c.Kind = Anticlockwise
		return nil
	}
	if !strings.HasPrefix(text, "@") || len(text) < 4 {
		return fmt.Errorf("chirality: malformed tag %q", text)
	}
	tag := text[1:3]
	digits := text[3:]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return fmt.Errorf("chirality: bad parameter in %q: %w", text, err)
	}
	for kind, t := range chiralityTag {
		if t != tag {
			continue
		}
		r := chiralityRange[kind]
		if n < r[0] || n > r[1] {
			return fmt.Errorf("chirality: parameter %d out of range [%d,%d] for %q", n, r[0], r[1], tag)
		}
		c.Kind = kind
		c.Param = n
		return nil
	}
	return fmt.Errorf("chirality: unrecognized tag %q", tag)
}

// Equal reports structural equality.
func (c Chirality) Equal(other Chirality) bool {
	return c.Kind == other.Kind && c.Param == other.Param
}

func (c Chirality) String() string {
	switch c.Kind {
	case Anticlockwise:
		return "@"
	case Clockwise:
		return "@@"
	default:
		return fmt.Sprintf("@%s%d", chiralityTag[c.Kind], c.Param)
	}
}
