package ast

import "fmt"

// Bond is one of the seven single-character bond markers from spec.md §3.
type Bond uint8

const (
	Single Bond = iota + 1
	Double
	Triple
	Quadruple
	Aromatic
	Up
	Down
)

var bondText = map[string]Bond{
	"-": Single,
	"=": Double,
	"#": Triple,
	"$": Quadruple,
	":": Aromatic,
	"/": Up,
	`\`: Down,
}

var bondSymbol = map[Bond]string{
	Single: "-", Double: "=", Triple: "#", Quadruple: "$",
	Aromatic: ":", Up: "/", Down: `\`,
}

// Capture resolves a single Bond token's literal text into the enum value.
func (b *Bond) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("bond: expected exactly one token, got %d", len(values))
	}
	v, ok := bondText[values[0]]
	if !ok {
		return fmt.Errorf("bond: unrecognized bond marker %q", values[0])
	}
	*b = v
	return nil
}

func (b Bond) String() string {
	if s, ok := bondSymbol[b]; ok {
		return s
	}
	return "?"
}

// Order is the bond order used by valence closure (spec.md §4.3); Aromatic,
// Up and Down all count as a single unit of valence.
func (b Bond) Order() int {
	switch b {
	case Single, Aromatic, Up, Down:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case Quadruple:
		return 4
	default:
		return 0
	}
}

// BondOrDot is the closed sum Bond(Bond) | Dot from spec.md §3.
type BondOrDot struct {
	IsDot bool  `parser:"(  @Dot"`
	Bond  *Bond `parser:" | @Bond )"`
}

// Equal reports structural equality.
func (d BondOrDot) Equal(other BondOrDot) bool {
	if d.IsDot != other.IsDot {
		return false
	}
	if (d.Bond == nil) != (other.Bond == nil) {
		return false
	}
	if d.Bond != nil && *d.Bond != *other.Bond {
		return false
	}
	return true
}

func (d BondOrDot) String() string {
	if d.IsDot {
		return "."
	}
	if d.Bond != nil {
		return d.Bond.String()
	}
	return ""
}
