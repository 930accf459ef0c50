// Package fixtures is a minimal adjacency-matrix text loader used only
// by this repository's own tests and the cmd/peer demo path. Reading a
// graph from some production input format or service is a separate,
// unimplemented concern; this loader exists only to hand a matrix to
// cmd/peer and to the test suite.
package fixtures

import (
	"bufio"
	"fmt"
	"io"
)

// LoadMatrix reads a graph description of the form:
//
//	N M
//	i0 j0 w0
//	...
//	i(M-1) j(M-1) w(M-1)
//
// and returns N, M, and the N*N row-major adjacency matrix built from
// the M edges. Each edge line is applied symmetrically.
func LoadMatrix(r io.Reader) (n, m int, adj []int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024), 1024*1024)

	if !scanner.Scan() {
		return 0, 0, nil, fmt.Errorf("fixtures: missing header line")
	}
	if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &n, &m); err != nil {
		return 0, 0, nil, fmt.Errorf("fixtures: parsing header: %w", err)
	}
	if n < 1 {
		return 0, 0, nil, fmt.Errorf("fixtures: N must be >= 1, got %d", n)
	}

	adj = make([]int, n*n)
	for edgeIdx := 0; edgeIdx < m; edgeIdx++ {
		if !scanner.Scan() {
			return 0, 0, nil, fmt.Errorf("fixtures: expected %d edge lines, got %d", m, edgeIdx)
		}
		var i, j, w int
		if _, err := fmt.Sscanf(scanner.Text(), "%d %d %d", &i, &j, &w); err != nil {
			return 0, 0, nil, fmt.Errorf("fixtures: parsing edge line %d: %w", edgeIdx, err)
		}
		if i < 0 || i >= n || j < 0 || j >= n {
			return 0, 0, nil, fmt.Errorf("fixtures: edge (%d,%d) out of range for N=%d", i, j, n)
		}
		if w <= 0 {
			return 0, 0, nil, fmt.Errorf("fixtures: edge (%d,%d) has non-positive weight %d", i, j, w)
		}
		adj[i*n+j] = w
		adj[j*n+i] = w
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, nil, err
	}
	return n, m, adj, nil
}
