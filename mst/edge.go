// Package mst implements the sequential reference algorithms for
// computing a Minimum Spanning Tree over a dense adjacency matrix:
// canonical edges, the union-find forest, the binary min-heap, and
// Prim's and Kruskal's algorithms. These also serve as the per-peer
// local kernels used by the distmst package.
package mst

// Edge is a canonical undirected, weighted edge: I <= J always holds.
type Edge struct {
	I, J, W int
}

// NewEdge builds a canonical edge, normalizing endpoint order so that
// I <= J. No other code in this module may construct an Edge directly.
func NewEdge(i, j, w int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{I: i, J: j, W: w}
}

// CompareEdges implements the canonical total order: lexicographic on
// (W, I, J). It returns a negative number if a orders before b, zero if
// equal, and positive otherwise. The non-weight tiebreak is what makes
// every algorithm in this module deterministic when multiple spanning
// trees tie on total weight.
func CompareEdges(a, b Edge) int {
	if a.W != b.W {
		return a.W - b.W
	}
	if a.I != b.I {
		return a.I - b.I
	}
	return a.J - b.J
}

// Less reports whether a orders strictly before b under CompareEdges.
func Less(a, b Edge) bool {
	return CompareEdges(a, b) < 0
}

// EdgesFromMatrix materializes the edge list from the upper triangular
// part of an N*N row-major adjacency matrix (including the diagonal,
// which is always zero and therefore never contributes an edge). The
// returned slice has exactly the M non-zero entries the caller
// pre-counted.
func EdgesFromMatrix(n int, adj []int) []Edge {
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if w := adj[i*n+j]; w != 0 {
				edges = append(edges, NewEdge(i, j, w))
			}
		}
	}
	return edges
}

// SumWeights returns the total weight of an edge list.
func SumWeights(edges []Edge) int {
	sum := 0
	for _, e := range edges {
		sum += e.W
	}
	return sum
}
