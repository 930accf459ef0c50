// Package orchestrator dispatches a computation to one of the four MST
// algorithms, validates the algorithm/peer-count precondition and
// treats a violation as a configuration error, and assembles the final
// result at rank 0. It is the one component that knows about all of
// mst, distmst, and cohort at once.
package orchestrator

import (
	"log"

	"distmst/cohort"
	"distmst/distmst"
	"distmst/mst"
)

const (
	AlgoPrimSequential     = "prim-seq"
	AlgoKruskalSequential  = "kruskal-seq"
	AlgoPrimDistributed    = "prim-par"
	AlgoKruskalDistributed = "kruskal-par"
)

// ComputeMST runs algo against the N-vertex graph described by adj (M
// is the pre-counted non-zero upper-triangle entry count) over coh, and
// returns rank 0's tree and its total weight. Every other rank returns
// a nil tree. An unknown algorithm name, or a sequential algorithm
// requested on a cohort of more than one peer, is a configuration error
// detected at rank 0 and escalated to a collective abort — the function
// never returns in that case. rep, if non-nil, is kept up to date with
// a distributed algorithm's current round; it is untouched by the
// sequential algorithms, which have no round structure to report.
func ComputeMST(n, m int, adj []int, algo string, coh *cohort.Cohort, rep distmst.RoundReporter) ([]mst.Edge, int) {
	if coh.Rank() == cohort.Root {
		validate(algo, coh.Size(), coh)
	}

	var tree []mst.Edge
	switch algo {
	case AlgoPrimSequential:
		if coh.Rank() == cohort.Root {
			tree, _ = mst.SequentialPrim(n, m, adj)
		}
	case AlgoKruskalSequential:
		if coh.Rank() == cohort.Root {
			tree, _ = mst.SequentialKruskal(n, m, adj)
		}
	case AlgoPrimDistributed:
		result := distmst.DistributedPrim(n, adj, coh, rep)
		if coh.Rank() == cohort.Root {
			tree = result
		}
	case AlgoKruskalDistributed:
		result := distmst.DistributedKruskal(n, adj, coh, rep)
		if coh.Rank() == cohort.Root {
			tree = result
		}
	default:
		// Unreachable on a correctly-configured cohort: rank 0's
		// validate call above is the sole detector of an unknown
		// algorithm name and already aborted every peer by now.
	}

	if coh.Rank() != cohort.Root {
		return nil, 0
	}
	return tree, mst.SumWeights(tree)
}

func validate(algo string, size uint32, coh *cohort.Cohort) {
	switch algo {
	case AlgoPrimSequential, AlgoKruskalSequential:
		if size != 1 {
			log.Printf("orchestrator: %s requires exactly one peer, cohort has %d", algo, size)
			coh.Abort("sequential algorithm requested on a multi-peer cohort")
		}
	case AlgoPrimDistributed, AlgoKruskalDistributed:
		// any cohort size is valid, including one.
	default:
		log.Printf("orchestrator: unrecognized algorithm %q", algo)
		coh.Abort("unknown algorithm " + algo)
	}
}
