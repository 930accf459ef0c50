package mst

// SequentialPrim computes an MST of the N-vertex graph described by the
// N*N row-major adjacency matrix adj (M is the non-zero upper-triangle
// count, used only to size the heap), starting from vertex 0. It
// returns the tree in admission order and the total weight.
//
// The heap is allowed to hold stale edges whose both endpoints are
// already visited; those are discarded when popped. This keeps the
// algorithm simple at the cost of a logarithmic factor.
func SequentialPrim(n, m int, adj []int) ([]Edge, int) {
	tree := make([]Edge, 0, n-1)
	if n <= 1 {
		return tree, 0
	}

	visited := make([]bool, n)
	heap := NewEdgeHeap(m)

	visited[0] = true
	pushNeighbors(0, n, adj, visited, heap)

	for heap.Len() > 0 && len(tree) < n-1 {
		edge := heap.Pop()
		var node int
		if !visited[edge.I] {
			node = edge.I
		} else if !visited[edge.J] {
			node = edge.J
		} else {
			continue
		}
		tree = append(tree, edge)
		visited[node] = true
		pushNeighbors(node, n, adj, visited, heap)
	}

	return tree, SumWeights(tree)
}

func pushNeighbors(node, n int, adj []int, visited []bool, heap *EdgeHeap) {
	for neighbor := 0; neighbor < n; neighbor++ {
		if w := adj[node*n+neighbor]; w != 0 && !visited[neighbor] {
			heap.Push(NewEdge(node, neighbor, w))
		}
	}
}
