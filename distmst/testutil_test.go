package distmst

import (
	"net"
	"testing"

	"distmst/cohort"
)

// buildMatrix lays out a symmetric n*n adjacency matrix from a list of
// (i, j, weight) triples.
func buildMatrix(n int, edges [][3]int) []int {
	adj := make([]int, n*n)
	for _, e := range edges {
		i, j, w := e[0], e[1], e[2]
		adj[i*n+j] = w
		adj[j*n+i] = w
	}
	return adj
}

// startTestCohort reserves a loopback port per rank, builds the shared
// directory, starts every cohort, and registers cleanup.
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
