package mst

import "sort"

// SequentialKruskal computes an MST of the N-vertex graph described by
// the N*N adjacency matrix adj. It materializes the M edges from the
// upper triangle, sorts them by the canonical order, and runs
// KruskalSelect. The resulting sequence is exactly weight-then-lex
// sorted.
func SequentialKruskal(n, m int, adj []int) ([]Edge, int) {
	edges := EdgesFromMatrix(n, adj)
	sort.Slice(edges, func(i, j int) bool {
		return Less(edges[i], edges[j])
	})
	tree := KruskalSelect(edges, n)
	return tree, SumWeights(tree)
}
