package distmst

import (
	"distmst/cohort"
	"distmst/mst"
)

// borderEntry is a peer's record of the cheapest tree-side neighbor for
// one locally-owned vertex. w == 0 means "no candidate yet".
type borderEntry struct {
	z, w int
}

// DistributedPrim runs N-1 iterations of border-table relaxation: every
// peer proposes its locally cheapest crossing edge, rank 0 gathers all
// proposals and picks the global minimum under the canonical edge
// order, broadcasts the winning vertex, and every peer marks it visited
// and relaxes its border against it. Only rank 0's returned tree is
// meaningful. rep, if non-nil, is notified of the iteration every round
// starts.
func DistributedPrim(n int, adj []int, coh *cohort.Cohort, rep RoundReporter) []mst.Edge {
	rank := int(coh.Rank())
	p := int(coh.Size())
	part := PartitionFor(rank, n, p)

	border := make([]borderEntry, part.Len())
	visited := make([]bool, n)
	visited[0] = true
	relaxBorder(n, adj, part, border, visited, 0)

	tree := make([]mst.Edge, 0, n-1)
	for iter := 0; iter < n-1; iter++ {
		reportRound(rep, iter)
		y, z, w := localCandidate(part, border, visited)
		gathered, err := coh.GatherToRoot(uint64(iter), cohort.EncodeTriple(y, z, w))
		if err != nil {
			coh.Abort("distributed prim: gathering candidates: " + err.Error())
		}

		winner := -1
		if uint32(rank) == cohort.Root {
			winner, tree = pickGlobalMinimum(gathered, tree, coh)
		}

		winnerBuf, err := coh.BroadcastFromRoot(uint64(iter), cohort.EncodeUint32(winner))
		if err != nil {
			coh.Abort("distributed prim: broadcasting winner: " + err.Error())
		}
		winner, err = cohort.DecodeUint32(winnerBuf)
		if err != nil {
			coh.Abort("distributed prim: decoding winner: " + err.Error())
		}

		visited[winner] = true
		relaxBorder(n, adj, part, border, visited, winner)
	}

	return tree
}

// pickGlobalMinimum scans every gathered triple, ignoring sentinels,
// and returns the winning vertex and the tree with that round's winning
// edge appended. It aborts the cohort if every triple was a sentinel,
// the algorithm precondition that the input graph is connected.
func pickGlobalMinimum(gathered [][]byte, tree []mst.Edge, coh *cohort.Cohort) (int, []mst.Edge) {
	winner := -1
	var best mst.Edge
	for _, buf := range gathered {
		y, z, w, err := cohort.DecodeTriple(buf)
		if err != nil {
			coh.Abort("distributed prim: decoding candidate: " + err.Error())
		}
		if y == -1 {
			continue
		}
		candidate := mst.NewEdge(z, y, w)
		if winner == -1 || mst.Less(candidate, best) {
			winner, best = y, candidate
		}
	}
	if winner == -1 {
		coh.Abort("distributed prim: no candidate found in any peer; graph is disconnected")
	}
	return winner, append(tree, best)
}

// relaxBorder updates every unvisited local vertex's border entry
// against the vertex that just joined the tree.
func relaxBorder(n int, adj []int, part Partition, border []borderEntry, visited []bool, winner int) {
	for y := part.Start; y < part.End; y++ {
		if visited[y] {
			continue
		}
		w := adj[y*n+winner]
		if w == 0 {
			continue
		}
		localIdx := y - part.Start
		current := border[localIdx]
		if current.w == 0 || mst.Less(mst.NewEdge(winner, y, w), mst.NewEdge(current.z, y, current.w)) {
			border[localIdx] = borderEntry{z: winner, w: w}
		}
	}
}

// localCandidate scans this peer's border for the unvisited local
// vertex with the minimum-order crossing edge and returns it as
// (vertex, treeSideNeighbor, weight). It returns the sentinel
// (-1, 0, 0) if no local vertex has a candidate.
func localCandidate(part Partition, border []borderEntry, visited []bool) (y, z, w int) {
	best := -1
	var bestEdge mst.Edge
	bestZ, bestW := 0, 0
	for localIdx := 0; localIdx < part.Len(); localIdx++ {
		globalY := part.Start + localIdx
		if visited[globalY] {
			continue
		}
		entry := border[localIdx]
		if entry.w == 0 {
			continue
		}
		candidate := mst.NewEdge(entry.z, globalY, entry.w)
		if best == -1 || mst.Less(candidate, bestEdge) {
			best, bestEdge, bestZ, bestW = globalY, candidate, entry.z, entry.w
		}
	}
	if best == -1 {
		return -1, 0, 0
	}
	return best, bestZ, bestW
}
