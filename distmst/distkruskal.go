package distmst

import (
	"fmt"

	"distmst/cohort"
	"distmst/mst"
)

// DistributedKruskal runs the binary tournament of local spanning
// forests: each peer first reduces its own row block to a local MST
// forest, then in rounds of doubling stepSize (1, 2, 4, ... while
// stepSize*R < N) the second half of each 2*stepSize-sized rank block
// sends its bipartite cross-edge forest — and, from the half's own
// rank-stepSize owner, its accumulated aggregate forest — to the first
// half, which merges everything with a sorted k-way merge and re-runs
// the shared extraction kernel. Only rank 0's returned forest is
// meaningful once every round has run. rep, if non-nil, is notified of
// the stepSize every round starts.
func DistributedKruskal(n int, adj []int, coh *cohort.Cohort, rep RoundReporter) []mst.Edge {
	rank := int(coh.Rank())
	p := int(coh.Size())
	r := RowBlockSize(n, p)
	part := PartitionFor(rank, n, p)

	forest := localForest(n, adj, part)

	for stepSize := 1; stepSize*r < n; stepSize *= 2 {
		reportRound(rep, stepSize)
		twoStep := stepSize * 2
		offset := rank % twoStep
		blockStart := rank - offset

		switch {
		case offset == 0:
			forest = receiveRound(n, r, p, stepSize, blockStart, forest, coh)
		case offset < stepSize:
			// fully absorbed into an earlier round's receiver; idle.
		default:
			sendRound(n, adj, part, r, stepSize, offset, blockStart, forest, coh)
		}
	}

	return forest
}

func receiveRound(n, r, p, stepSize, blockStart int, forest []mst.Edge, coh *cohort.Cohort) []mst.Edge {
	senderOwner := blockStart + stepSize
	if senderOwner >= p {
		return forest // incomplete block this round: no sender half exists yet
	}

	combined := forest
	aggBuf, err := coh.Recv(forestTag(stepSize))
	if err != nil {
		coh.Abort("distributed kruskal: receiving aggregate forest: " + err.Error())
	}
	agg, err := cohort.DecodeEdges(aggBuf)
	if err != nil {
		coh.Abort("distributed kruskal: decoding aggregate forest: " + err.Error())
	}
	combined = mergeSorted(combined, agg)

	twoStep := stepSize * 2
	senderEnd := blockStart + twoStep
	if senderEnd > p {
		senderEnd = p
	}
	for senderRank := senderOwner; senderRank < senderEnd; senderRank++ {
		buf, err := coh.Recv(bipartiteTag(stepSize, senderRank))
		if err != nil {
			coh.Abort("distributed kruskal: receiving bipartite forest: " + err.Error())
		}
		bip, err := cohort.DecodeEdges(buf)
		if err != nil {
			coh.Abort("distributed kruskal: decoding bipartite forest: " + err.Error())
		}
		combined = mergeSorted(combined, bip)
	}

	spanStartRow := blockStart * r
	spanEndRow := senderEnd * r
	if spanEndRow > n {
		spanEndRow = n
	}
	return kruskalSelectSpan(combined, n, spanEndRow-spanStartRow-1)
}

func sendRound(n int, adj []int, part Partition, r, stepSize, offset, blockStart int, forest []mst.Edge, coh *cohort.Cohort) {
	receiverRank := blockStart
	if offset == stepSize {
		if err := coh.Send(uint32(receiverRank), forestTag(stepSize), cohort.EncodeEdges(forest)); err != nil {
			coh.Abort("distributed kruskal: sending aggregate forest: " + err.Error())
		}
	}
	colStart := blockStart * r
	bip := bipartiteForest(n, adj, part, colStart, colStart+stepSize*r)
	if err := coh.Send(uint32(receiverRank), bipartiteTag(stepSize, int(coh.Rank())), cohort.EncodeEdges(bip)); err != nil {
		coh.Abort("distributed kruskal: sending bipartite forest: " + err.Error())
	}
}

func forestTag(stepSize int) string {
	return fmt.Sprintf("forest:%d", stepSize)
}

func bipartiteTag(stepSize, senderRank int) string {
	return fmt.Sprintf("bipartite:%d:%d", stepSize, senderRank)
}
