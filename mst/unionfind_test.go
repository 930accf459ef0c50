package mst

import "testing"

func TestDisjointSetFindInitiallySelf(t *testing.T) {
	d := NewDisjointSet(4)
	for i := 0; i < 4; i++ {
		if d.Find(i) != i {
			t.Errorf("expected singleton %d to be its own root", i)
		}
	}
}

func TestDisjointSetUnionMergesAndDetectsCycle(t *testing.T) {
	d := NewDisjointSet(4)
	if !d.Union(0, 1) {
		t.Fatalf("expected first union to merge")
	}
	if d.Union(0, 1) {
		t.Fatalf("expected second union of same pair to report no merge")
	}
	if d.Find(0) != d.Find(1) {
		t.Errorf("0 and 1 should share a root after union")
	}
}

func TestDisjointSetFindFlattensPathToRoot(t *testing.T) {
	d := NewDisjointSet(5)
	// chain 0-1-2-3-4 via unions, always unioning growing set into singleton
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(2, 3)
	d.Union(3, 4)
	root := d.Find(0)
	for i := 0; i < 5; i++ {
		if d.parent[i] != root {
			t.Errorf("expected vertex %d to point directly at root %d after Find, got %d", i, root, d.parent[i])
		}
	}
}

func TestKruskalSelectTriangle(t *testing.T) {
	edges := []Edge{NewEdge(0, 1, 1), NewEdge(1, 2, 2), NewEdge(0, 2, 3)}
	tree := KruskalSelect(edges, 3)
	if len(tree) != 2 {
		t.Fatalf("expected 2 edges in MST, got %d", len(tree))
	}
	if SumWeights(tree) != 3 {
		t.Errorf("expected total weight 3, got %d", SumWeights(tree))
	}
}

func TestKruskalSelectSingleVertex(t *testing.T) {
	if tree := KruskalSelect(nil, 1); len(tree) != 0 {
		t.Errorf("expected empty tree for N=1, got %v", tree)
	}
}

func TestKruskalSelectStopsAtNMinusOne(t *testing.T) {
	// a 4-cycle with a chord: should pick exactly 3 edges, never the 4th
	edges := []Edge{
		NewEdge(0, 1, 1), NewEdge(0, 2, 1),
		NewEdge(1, 3, 2), NewEdge(2, 3, 2),
	}
	tree := KruskalSelect(edges, 4)
	if len(tree) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(tree))
	}
	if got, want := tree, []Edge{NewEdge(0, 1, 1), NewEdge(0, 2, 1), NewEdge(1, 3, 2)}; !edgesEqual(got, want) {
		t.Errorf("expected tie-broken tree %v, got %v", want, got)
	}
}

func edgesEqual(a, b []Edge) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
