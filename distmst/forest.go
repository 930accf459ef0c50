package distmst

import (
	"sort"

	"distmst/mst"
)

// kruskalSelectSpan is mst.KruskalSelect generalized to a forest whose
// edges carry global vertex ids drawn from an arbitrary subrange of
// [0, universe): the disjoint-set forest is sized to the full vertex
// universe (ids outside the span just stay untouched singletons) but
// the admission target is the caller-supplied edge count for that
// span, not universe-1.
func kruskalSelectSpan(sorted []mst.Edge, universe, target int) []mst.Edge {
	if target <= 0 {
		return nil
	}
	dsu := mst.NewDisjointSet(universe)
	tree := make([]mst.Edge, 0, target)
	for _, e := range sorted {
		if len(tree) == target {
			break
		}
		if dsu.Union(e.I, e.J) {
			tree = append(tree, e)
		}
	}
	return tree
}

// localForest returns the MST of the subgraph induced by part's own
// vertex range, sorted by the canonical edge order. This is the
// intra-block forest every peer builds before the tournament starts.
func localForest(n int, adj []int, part Partition) []mst.Edge {
	if part.Len() <= 0 {
		return nil
	}
	edges := make([]mst.Edge, 0, part.Len())
	for i := part.Start; i < part.End; i++ {
		for j := i + 1; j < part.End; j++ {
			if w := adj[i*n+j]; w != 0 {
				edges = append(edges, mst.NewEdge(i, j, w))
			}
		}
	}
	sortEdges(edges)
	return kruskalSelectSpan(edges, n, part.Len()-1)
}

// bipartiteForest returns the MST of the bipartite subgraph whose rows
// are rowPart's vertex range and whose columns are [colStart, colEnd)
// (clipped to [0, n)), sorted by the canonical edge order. This is the
// cross-block forest a sender half peer ships to its receiver.
func bipartiteForest(n int, adj []int, rowPart Partition, colStart, colEnd int) []mst.Edge {
	if colEnd > n {
		colEnd = n
	}
	if rowPart.Len() <= 0 || colStart >= colEnd {
		return nil
	}
	edges := make([]mst.Edge, 0)
	for i := rowPart.Start; i < rowPart.End; i++ {
		for j := colStart; j < colEnd; j++ {
			if i == j {
				continue
			}
			if w := adj[i*n+j]; w != 0 {
				edges = append(edges, mst.NewEdge(i, j, w))
			}
		}
	}
	sortEdges(edges)
	target := rowPart.Len() + (colEnd - colStart) - 1
	return kruskalSelectSpan(edges, n, target)
}

func sortEdges(edges []mst.Edge) {
	sort.Slice(edges, func(a, b int) bool { return mst.Less(edges[a], edges[b]) })
}

// mergeSorted two-way merges a and b, both already sorted by the
// canonical edge order, into a single sorted list. Distributed
// Kruskal's k-way merge is built from repeated calls to this.
func mergeSorted(a, b []mst.Edge) []mst.Edge {
	out := make([]mst.Edge, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if mst.Less(b[j], a[i]) {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
