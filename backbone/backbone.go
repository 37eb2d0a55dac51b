// Package backbone implements the carbon-backbone query from spec.md §4.4:
// filter a lowered graph to its aliphatic-carbon-induced subgraph and find
// a longest shortest path (the subgraph's diameter) by all-pairs BFS.
package backbone

import "github.com/arvochem/smiles/molgraph"

// FindMainCarbonChain returns a longest shortest path among the aliphatic
// carbon nodes of g, or nil if g has no carbons. Complexity is
// O(V·(V+E)) restricted to the carbon-induced subgraph, which spec.md §4.4
// and §9 call acceptable for molecule-sized inputs.
func FindMainCarbonChain(g *molgraph.Graph) []molgraph.NodeID {
	sub := carbonSubgraph(g)
	if len(sub) == 0 {
		return nil
	}

	var best []molgraph.NodeID
	for _, start := range sortedKeys(sub) {
		parents := bfsFrom(sub, start)
		for _, end := range sortedKeys(sub) {
			path, ok := reconstruct(parents, start, end)
			if !ok {
				continue
			}
			best = pickLonger(best, path)
		}
	}
	return best
}

// carbonSubgraph builds an adjacency list restricted to aliphatic-carbon
// nodes and the edges directly between them.
func carbonSubgraph(g *molgraph.Graph) map[molgraph.NodeID][]molgraph.NodeID {
	sub := make(map[molgraph.NodeID][]molgraph.NodeID)
	for _, n := range g.Nodes() {
		if !g.Atom(n).IsAliphaticCarbon() {
			continue
		}
		sub[n] = nil
	}
	for n := range sub {
		for _, e := range g.Neighbors(n) {
			if _, ok := sub[e.To]; ok {
				sub[n] = append(sub[n], e.To)
			}
		}
	}
	return sub
}

func sortedKeys(sub map[molgraph.NodeID][]molgraph.NodeID) []molgraph.NodeID {
	keys := make([]molgraph.NodeID, 0, len(sub))
	for k := range sub {
		keys = append(keys, k)
	}
	// Node handles are already small non-negative ints assigned in
	// insertion order; a simple insertion sort keeps iteration order
	// deterministic (spec.md §4.4's tie-break "lexicographic comparison of
	// endpoint handles") without pulling in sort for a handful of atoms.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// bfsFrom runs a breadth-first search over sub starting at start and
// returns a parent-pointer map suitable for path reconstruction.
func bfsFrom(sub map[molgraph.NodeID][]molgraph.NodeID, start molgraph.NodeID) map[molgraph.NodeID]molgraph.NodeID {
	parents := map[molgraph.NodeID]molgraph.NodeID{start: start}
	queue := []molgraph.NodeID{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range sub[n] {
			if _, seen := parents[next]; !seen {
				parents[next] = n
				queue = append(queue, next)
			}
		}
	}
	return parents
}

func reconstruct(parents map[molgraph.NodeID]molgraph.NodeID, start, end molgraph.NodeID) ([]molgraph.NodeID, bool) {
	if _, ok := parents[end]; !ok {
		return nil, false
	}
	var path []molgraph.NodeID
	for cur := end; ; {
		path = append(path, cur)
		if cur == start {
			break
		}
		cur = parents[cur]
	}
	// Reverse in place: path was built end-to-start.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// pickLonger returns whichever of current/candidate is longer, breaking
// ties deterministically by lexicographic comparison of path node handles
// (spec.md §4.4).
func pickLonger(current, candidate []molgraph.NodeID) []molgraph.NodeID {
	if current == nil {
		return candidate
	}
	if len(candidate) > len(current) {
		return candidate
	}
	if len(candidate) == len(current) && lexLess(candidate, current) {
		return candidate
	}
	return current
}

func lexLess(a, b []molgraph.NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
