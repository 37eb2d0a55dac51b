// Package molgraph lowers a parsed ast.Chain into an undirected labeled
// multigraph (spec.md §3-§4.3): atoms become nodes, bonds become edges, and
// a valence-closure pass fills in implicit hydrogens. The container itself
// is styled after the no-panics/sentinel-error/deterministic-ordering
// conventions documented for the graph builders in the retrieval pack
// (katalvlaran/lvlath's core.Graph), but implemented locally: spec.md §1
// calls the generic graph container an out-of-scope external collaborator,
// and lvlath's own core.Graph type isn't present in the pack to depend on
// directly.
package molgraph

import (
	"fmt"

	"github.com/arvochem/smiles/ast"
)

// NodeID is an opaque, stable node handle (spec.md §3).
type NodeID int

// Node pairs a handle with the Atom label it carries.
type Node struct {
	ID   NodeID
	Atom ast.Atom
}

// Edge is one multigraph edge, spec.md §3 ("edges may be parallel").
type Edge struct {
	To   NodeID
	Bond ast.Bond
}

// Graph is an undirected labeled multigraph. The zero value is not usable;
// construct with New.
type Graph struct {
	nodes []Node
	adj   map[NodeID][]Edge
}

// New returns an empty graph ready for AddNode/AddEdge calls.
func New() *Graph {
	return &Graph{adj: make(map[NodeID][]Edge)}
}

// AddNode appends a new node labeled atom and returns its handle. Handles
// are assigned in insertion order starting at 0, which is what makes
// lowering deterministic (spec.md §4.3, "two equal CSTs produce isomorphic
// graphs with identical node indices").
func (g *Graph) AddNode(atom ast.Atom) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Atom: atom})
	return id
}

// AddEdge installs an undirected edge between a and b carrying bond. It
// never panics; an out-of-range handle is a programmer error reported as a
// plain error rather than a crash, matching the "no panics" discipline.
func (g *Graph) AddEdge(a, b NodeID, bond ast.Bond) error {
	if !g.valid(a) || !g.valid(b) {
		return fmt.Errorf("molgraph: AddEdge: node handle out of range (%d, %d)", a, b)
	}
	g.adj[a] = append(g.adj[a], Edge{To: b, Bond: bond})
	g.adj[b] = append(g.adj[b], Edge{To: a, Bond: bond})
	return nil
}

func (g *Graph) valid(n NodeID) bool {
	return n >= 0 && int(n) < len(g.nodes)
}

// Neighbors returns the edges incident to n in insertion order, or nil for
// an out-of-range handle.
func (g *Graph) Neighbors(n NodeID) []Edge {
	if !g.valid(n) {
		return nil
	}
	return g.adj[n]
}

// Nodes returns every node handle in insertion order.
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		ids[i] = NodeID(i)
	}
	return ids
}

// Atom returns the label of node n.
func (g *Graph) Atom(n NodeID) ast.Atom {
	return g.nodes[n].Atom
}

// Len reports the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// ComponentCount reports the number of connected components, used by
// cmd/smiles and by the "Dot splits components" property test (spec.md §8).
func (g *Graph) ComponentCount() int {
	seen := make(map[NodeID]bool, len(g.nodes))
	count := 0
	for _, start := range g.Nodes() {
		if seen[start] {
			continue
		}
		count++
		queue := []NodeID{start}
		seen[start] = true
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			for _, e := range g.Neighbors(n) {
				if !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
	}
	return count
}
