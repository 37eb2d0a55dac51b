package backbone

import (
	"testing"

	"github.com/arvochem/smiles/molgraph"
	"github.com/arvochem/smiles/parser"
)

func mustGraph(t *testing.T, input string) *molgraph.Graph {
	t.Helper()
	p := parser.New()
	chain, err := p.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	g, err := molgraph.ChainToGraph(chain)
	if err != nil {
		t.Fatalf("lower %q: %v", input, err)
	}
	return g
}

func TestFindMainCarbonChainStraightRun(t *testing.T) {
	g := mustGraph(t, "CCCC")
	path := FindMainCarbonChain(g)
	if len(path) != 4 {
		t.Fatalf("len(path) = %d, want 4; path=%v", len(path), path)
	}
}

func TestFindMainCarbonChainPicksLongestBranch(t *testing.T) {
	// CC(CCCC)C: the 4-carbon branch is longer than the 2-carbon spine either side.
	g := mustGraph(t, "CC(CCCC)C")
	path := FindMainCarbonChain(g)
	if len(path) != 6 {
		t.Fatalf("len(path) = %d, want 6 (spine atom + 4-carbon branch + the branching atom); path=%v", len(path), path)
	}
}

func TestFindMainCarbonChainNoCarbons(t *testing.T) {
	g := mustGraph(t, "[Na+].[Cl-]")
	if path := FindMainCarbonChain(g); path != nil {
		t.Errorf("expected nil path with no carbons, got %v", path)
	}
}

func TestFindMainCarbonChainExcludesHydrogens(t *testing.T) {
	g := mustGraph(t, "CC")
	path := FindMainCarbonChain(g)
	for _, id := range path {
		if !g.Atom(id).IsAliphaticCarbon() {
			t.Errorf("node %v in path is not an aliphatic carbon", id)
		}
	}
}
