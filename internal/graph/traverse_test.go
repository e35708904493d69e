package graph_test

import (
	"testing"

	"github.com/persistorai/trustgraph/internal/graph"
)

func TestReachable_ChainDepthBoundary(t *testing.T) {
	g := chain(6)

	tests := []struct {
		to       string
		wantOK   bool
		wantHops int
	}{
		{to: "2", wantOK: true, wantHops: 1},
		{to: "3", wantOK: true, wantHops: 2},
		{to: "4", wantOK: true, wantHops: 3},
		{to: "5", wantOK: true, wantHops: 4},
		{to: "6", wantOK: false},
	}

	for _, tt := range tests {
		hops, ok := graph.Reachable(g, "1", tt.to, graph.MaxTrustHops)
		if ok != tt.wantOK {
			t.Errorf("Reachable(1, %s) ok = %v, want %v", tt.to, ok, tt.wantOK)
			continue
		}
		if ok && hops != tt.wantHops {
			t.Errorf("Reachable(1, %s) hops = %d, want %d", tt.to, hops, tt.wantHops)
		}
	}
}

func TestReachable_DepthIsConfigurable(t *testing.T) {
	g := chain(6)

	if _, ok := graph.Reachable(g, "1", "6", 5); !ok {
		t.Error("Reachable(1, 6, 5) = false, want true")
	}
	if _, ok := graph.Reachable(g, "1", "3", 1); ok {
		t.Error("Reachable(1, 3, 1) = true, want false")
	}
	if _, ok := graph.Reachable(g, "1", "2", 0); ok {
		t.Error("Reachable with zero depth should never match")
	}
}

func TestReachable_UnseenEndpoints(t *testing.T) {
	g := chain(3)

	if _, ok := graph.Reachable(g, "1", "x", 4); ok {
		t.Error("unseen target reported reachable")
	}
	if _, ok := graph.Reachable(g, "x", "1", 4); ok {
		t.Error("unseen source reported reachable")
	}
}

func TestReachable_Disconnected(t *testing.T) {
	g := graph.NewAdjacency()
	g.InsertEdge("a", "b")
	g.InsertEdge("c", "d")

	if _, ok := graph.Reachable(g, "a", "d", 4); ok {
		t.Error("disconnected components reported reachable")
	}
}
