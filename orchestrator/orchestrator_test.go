package orchestrator

import (
	"net"
	"sync"
	"testing"

	"distmst/cohort"
	"distmst/mst"
)

func buildMatrix(n int, edges [][3]int) []int {
	adj := make([]int, n*n)
	for _, e := range edges {
		i, j, w := e[0], e[1], e[2]
		adj[i*n+j] = w
		adj[j*n+i] = w
	}
	return adj
}

func startTestCohorts(t *testing.T, p int) []*cohort.Cohort {
	t.Helper()
	dir := make(cohort.Directory, p)
	for r := 0; r < p; r++ {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("reserving port: %v", err)
		}
		dir[uint32(r)] = l.Addr().String()
		l.Close()
	}
	cohorts := make([]*cohort.Cohort, p)
	for r := 0; r < p; r++ {
		c := cohort.NewCohort(uint32(r), dir)
		if err := c.Start(); err != nil {
			t.Fatalf("rank %d: Start: %v", r, err)
		}
		cohorts[r] = c
	}
	t.Cleanup(func() {
		for _, c := range cohorts {
			c.Stop()
		}
	})
	return cohorts
}

func TestComputeMSTSequentialAlgorithms(t *testing.T) {
	n := 3
	adj := buildMatrix(n, [][3]int{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}})
	cohorts := startTestCohorts(t, 1)

	for _, algo := range []string{AlgoPrimSequential, AlgoKruskalSequential} {
		tree, sum := ComputeMST(n, 3, adj, algo, cohorts[0], nil)
		if len(tree) != 2 {
			t.Errorf("%s: expected 2 edges, got %d", algo, len(tree))
		}
		if sum != 3 {
			t.Errorf("%s: expected sum 3, got %d", algo, sum)
		}
	}
}

func TestComputeMSTDistributedAlgorithmsAgreeOnSum(t *testing.T) {
	n := 5
	adj := buildMatrix(n, [][3]int{{0, 1, 4}, {0, 2, 3}, {0, 3, 2}, {0, 4, 1}})
	for _, algo := range []string{AlgoPrimDistributed, AlgoKruskalDistributed} {
		cohorts := startTestCohorts(t, 2)
		results := make([]int, 2)
		done := make(chan int, 2)
		for r := 0; r < 2; r++ {
			r := r
			go func() {
				_, sum := ComputeMST(n, 4, adj, algo, cohorts[r], nil)
				results[r] = sum
				done <- r
			}()
		}
		<-done
		<-done
		if results[0] != 10 {
			t.Errorf("%s: rank 0 expected sum 10, got %d", algo, results[0])
		}
	}
}

func TestComputeMSTOnlyRootReturnsTree(t *testing.T) {
	n := 3
	adj := buildMatrix(n, [][3]int{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}})
	cohorts := startTestCohorts(t, 2)

	results := make([][]mst.Edge, 2)
	done := make(chan int, 2)
	for r := 0; r < 2; r++ {
		r := r
		go func() {
			tree, _ := ComputeMST(n, 3, adj, AlgoKruskalDistributed, cohorts[r], nil)
			results[r] = tree
			done <- r
		}()
	}
	<-done
	<-done
	if results[0] == nil {
		t.Errorf("rank 0: expected a non-nil tree")
	}
	if results[1] != nil {
		t.Errorf("rank 1: expected a nil tree, got %v", results[1])
	}
}

type fakeReporter struct {
	mu     sync.Mutex
	rounds []int
}

func (f *fakeReporter) SetRound(round int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rounds = append(f.rounds, round)
}

func (f *fakeReporter) seen() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.rounds...)
}

func TestComputeMSTReportsRoundsToEveryPeer(t *testing.T) {
	n := 6
	adj := buildMatrix(n, [][3]int{
		{0, 1, 4}, {0, 2, 1}, {1, 2, 2}, {1, 3, 5},
		{2, 3, 8}, {2, 4, 10}, {3, 4, 2}, {3, 5, 6}, {4, 5, 3},
	})
	cohorts := startTestCohorts(t, 3)
	reporters := make([]*fakeReporter, 3)
	for r := range reporters {
		reporters[r] = &fakeReporter{}
	}

	done := make(chan int, 3)
	for r := 0; r < 3; r++ {
		r := r
		go func() {
			ComputeMST(n, 9, adj, AlgoPrimDistributed, cohorts[r], reporters[r])
			done <- r
		}()
	}
	for i := 0; i < 3; i++ {
		<-done
	}

	for r, rep := range reporters {
		rounds := rep.seen()
		if len(rounds) != n-1 {
			t.Errorf("rank %d: expected %d reported rounds, got %v", r, n-1, rounds)
		}
		for i, round := range rounds {
			if round != i {
				t.Errorf("rank %d: expected round %d to report iteration %d, got %d", r, i, i, round)
			}
		}
	}
}
