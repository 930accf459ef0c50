// Package distmst implements the two distributed MST algorithms: the
// binary tournament of local spanning forests (distributed Kruskal) and
// the border-table relaxation loop (distributed Prim). Both operate on
// the same replicated N*N adjacency matrix every peer holds and drive
// all communication through a cohort.Cohort; neither touches net/rpc
// directly.
package distmst

// Partition describes one peer's row block: the contiguous, possibly
// empty range of global vertex indices [Start, End) it owns.
type Partition struct {
	Start int
	End   int
}

// Len returns the number of vertices this partition owns.
func (part Partition) Len() int { return part.End - part.Start }

// RowBlockSize returns R = ceil(N/P), the row-block size every peer's
// partition is derived from.
func RowBlockSize(n, p int) int {
	if p <= 0 {
		return 0
	}
	return (n + p - 1) / p
}

// PartitionFor returns rank's row block out of n vertices split across
// p peers. Ranks at or beyond ceil(n/R) own an empty block, which is
// exactly what happens when p does not divide n evenly or p > n.
func PartitionFor(rank, n, p int) Partition {
	r := RowBlockSize(n, p)
	start := rank * r
	if start > n {
		start = n
	}
	end := start + r
	if end > n {
		end = n
	}
	return Partition{Start: start, End: end}
}
