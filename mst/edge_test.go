package mst

import "testing"

func TestNewEdgeNormalizesOrder(t *testing.T) {
	e := NewEdge(5, 2, 3)
	if e.I != 2 || e.J != 5 {
		t.Errorf("expected canonical order (2,5), got (%d,%d)", e.I, e.J)
	}
}

func TestCompareEdgesWeightThenLex(t *testing.T) {
	a := NewEdge(0, 1, 1)
	b := NewEdge(0, 2, 1)
	c := NewEdge(1, 3, 2)

	if !Less(a, b) {
		t.Errorf("expected (0,1,1) before (0,2,1)")
	}
	if !Less(b, c) {
		t.Errorf("expected weight 1 before weight 2")
	}
	if CompareEdges(a, a) != 0 {
		t.Errorf("expected equal edges to compare 0")
	}
}

func TestEdgesFromMatrixUpperTriangleOnly(t *testing.T) {
	// triangle: 0-1 (1), 1-2 (2), 0-2 (3)
	n := 3
	adj := []int{
		0, 1, 3,
		1, 0, 2,
		3, 2, 0,
	}
	edges := EdgesFromMatrix(n, adj)
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}
	want := map[[2]int]int{{0, 1}: 1, {1, 2}: 2, {0, 2}: 3}
	for _, e := range edges {
		if w, ok := want[[2]int{e.I, e.J}]; !ok || w != e.W {
			t.Errorf("unexpected edge %+v", e)
		}
	}
}

func TestSumWeights(t *testing.T) {
	edges := []Edge{NewEdge(0, 1, 4), NewEdge(1, 2, 6)}
	if s := SumWeights(edges); s != 10 {
		t.Errorf("expected sum 10, got %d", s)
	}
}
