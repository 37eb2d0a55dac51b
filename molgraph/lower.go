package molgraph

import (
	"fmt"

	"github.com/arvochem/smiles/ast"
	"github.com/arvochem/smiles/elements"
)

// LoweringError reports an atom/bond combination lowering does not handle,
// spec.md §7 ("the partial graph is discarded"): an atom valence closure
// cannot satisfy, or a ring closure that cannot be resolved (conflicting
// bond annotations, or a ring number never closed).
type LoweringError struct {
	Atom ast.Atom
	Msg  string
}

func (e *LoweringError) Error() string {
	return fmt.Sprintf("lowering error on atom %v: %s", e.Atom, e.Msg)
}

// ringSlot is one entry of the dense ring-closure table spec.md §9
// describes: the node that first opened the ring number, and any bond
// annotation attached to that opening.
type ringSlot struct {
	node NodeID
	bond *ast.Bond
}

// maxRingNumber is the width of the dense ring table (spec.md §3: ring
// number ∈ [0,99]).
const maxRingNumber = 100

// ChainToGraph implements spec.md §4.3: it inserts a node per BranchedAtom,
// installs linear and branch bonds, resolves ring closures, and then fills
// implicit hydrogens. The long straight run of a Chain is walked
// iteratively via Chain.Links (spec.md §9's "convert recursion to
// iteration"); only branch nesting recurses, and that depth is bounded by
// how deeply the input actually nests parentheses.
func ChainToGraph(c *ast.Chain) (*Graph, error) {
	g := New()
	var slots [maxRingNumber]*ringSlot
	if err := lowerChain(g, c, -1, false, nil, &slots); err != nil {
		return nil, err
	}
	for n, slot := range slots {
		if slot != nil {
			return nil, &LoweringError{Atom: g.Atom(slot.node), Msg: fmt.Sprintf("ring number %d opened but never closed", n)}
		}
	}
	if err := fillImplicitHydrogens(g); err != nil {
		return nil, err
	}
	return g, nil
}

func lowerChain(g *Graph, c *ast.Chain, prev NodeID, havePrev bool, branchBond *ast.Bond, slots *[maxRingNumber]*ringSlot) error {
	for i, link := range c.Links() {
		node := g.AddNode(link.Atom.Atom)

		switch {
		case i == 0:
			if havePrev {
				bond := ast.Single
				if branchBond != nil {
					bond = *branchBond
				}
				if err := g.AddEdge(prev, node, bond); err != nil {
					return fmt.Errorf("molgraph: %w", err)
				}
			}
		case link.Incoming != nil && link.Incoming.IsDot:
			// Dot: no edge, the new node starts a disjoint component.
		default:
			bond := ast.Single
			if link.Incoming != nil && link.Incoming.Bond != nil {
				bond = *link.Incoming.Bond
			}
			if err := g.AddEdge(prev, node, bond); err != nil {
				return fmt.Errorf("molgraph: %w", err)
			}
		}

		for _, rb := range link.Atom.RingBonds {
			if err := resolveRingBond(g, slots, rb, node); err != nil {
				return err
			}
		}

		for _, branch := range link.Atom.Branches {
			var lead *ast.Bond
			if branch.Lead != nil && !branch.Lead.IsDot {
				lead = branch.Lead.Bond
				if lead == nil {
					single := ast.Single
					lead = &single
				}
			} else if branch.Lead != nil && branch.Lead.IsDot {
				// A dot-led branch attaches nothing to the current atom;
				// its contents still get their own nodes, just no edge.
				if err := lowerChain(g, branch.Inner, -1, false, nil, slots); err != nil {
					return err
				}
				continue
			}
			if err := lowerChain(g, branch.Inner, node, true, lead, slots); err != nil {
				return err
			}
		}

		prev = node
		havePrev = true
	}
	return nil
}

func resolveRingBond(g *Graph, slots *[maxRingNumber]*ringSlot, rb ast.RingBond, node NodeID) error {
	n := int(rb.Number)
	if n < 0 || n >= maxRingNumber {
		return fmt.Errorf("molgraph: ring number %d out of range", n)
	}
	existing := slots[n]
	if existing == nil {
		slots[n] = &ringSlot{node: node, bond: rb.Bond}
		return nil
	}
	bond := ast.Single
	switch {
	case existing.bond != nil && rb.Bond != nil:
		if *existing.bond != *rb.Bond {
			return &LoweringError{Atom: g.Atom(node), Msg: fmt.Sprintf("ring %d bond annotations disagree (%v vs %v)", n, *existing.bond, *rb.Bond)}
		}
		bond = *existing.bond
	case existing.bond != nil:
		bond = *existing.bond
	case rb.Bond != nil:
		bond = *rb.Bond
	}
	if err := g.AddEdge(existing.node, node, bond); err != nil {
		return fmt.Errorf("molgraph: %w", err)
	}
	slots[n] = nil
	return nil
}

// fillImplicitHydrogens is the valence-closure pass from spec.md §4.3.
// Bracket atoms use their explicit hcount verbatim; unbracketed
// organic-subset atoms get one hydrogen per unit of valence left
// unsatisfied by their current bonds.
func fillImplicitHydrogens(g *Graph) error {
	// Snapshot node count: hydrogens appended during this pass must not be
	// revisited by the same loop.
	n := g.Len()
	for i := 0; i < n; i++ {
		id := NodeID(i)
		atom := g.Atom(id)
		switch atom.Kind() {
		case ast.AtomBracket:
			for h := ast.HCount(0); h < atom.Bracket.HCount; h++ {
				addHydrogen(g, id)
			}
		case ast.AtomAliphaticOrganic:
			elem := atom.Aliphatic.Element
			candidates := elements.TargetValences(elem)
			if len(candidates) == 0 {
				return &LoweringError{Atom: atom, Msg: fmt.Sprintf("no target valence known for %v", elem)}
			}
			sum := bondOrderSum(g, id)
			target := -1
			for _, v := range candidates {
				if v >= sum {
					target = v
					break
				}
			}
			if target < 0 {
				return &LoweringError{Atom: atom, Msg: fmt.Sprintf("bond order sum %d exceeds every target valence %v", sum, candidates)}
			}
			for j := 0; j < target-sum; j++ {
				addHydrogen(g, id)
			}
		case ast.AtomUnknown:
			// The wildcard atom has no defined valence; spec.md §4.3 only
			// requires closure for organic-subset atoms.
		}
	}
	return nil
}

func bondOrderSum(g *Graph, id NodeID) int {
	sum := 0
	for _, e := range g.Neighbors(id) {
		sum += e.Bond.Order()
	}
	return sum
}

func addHydrogen(g *Graph, to NodeID) {
	h := g.AddNode(ast.Atom{Aliphatic: &ast.AliphaticOrganicAtom{Element: elements.Hydrogen}})
	_ = g.AddEdge(to, h, ast.Single)
}
