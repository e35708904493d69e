// Package graph holds the in-memory transaction graph: an exact adjacency index
// and an approximate per-node index of two-hop neighborhoods.
package graph

import "sort"

// Adjacency is an append-only undirected graph keyed by party id.
// Every edge is stored in both directions, so b is a neighbor of a exactly
// when a is a neighbor of b.
type Adjacency struct {
	nodes map[string]map[string]struct{}
	edges int
}

// NewAdjacency creates an empty graph.
func NewAdjacency() *Adjacency {
	return &Adjacency{nodes: make(map[string]map[string]struct{})}
}

// InsertEdge records a transaction between a and b. The neighbor sets dedupe,
// but the edge counter counts every call, duplicates included.
func (g *Adjacency) InsertEdge(a, b string) {
	g.link(a, b)
	g.link(b, a)
	g.edges++
}

func (g *Adjacency) link(from, to string) {
	set, ok := g.nodes[from]
	if !ok {
		set = make(map[string]struct{})
		g.nodes[from] = set
	}

	set[to] = struct{}{}
}

// Neighbors returns the direct neighbors of id. The returned set is owned by the
// graph and must not be modified. An unseen id yields an empty (nil) set.
func (g *Adjacency) Neighbors(id string) map[string]struct{} {
	return g.nodes[id]
}

// HasNode reports whether id has appeared in any inserted edge.
func (g *Adjacency) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether a and b are direct neighbors.
func (g *Adjacency) HasEdge(a, b string) bool {
	_, ok := g.nodes[a][b]
	return ok
}

// Degree returns the number of distinct neighbors of id.
func (g *Adjacency) Degree(id string) int {
	return len(g.nodes[id])
}

// NodeCount returns the number of distinct ids seen.
func (g *Adjacency) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of InsertEdge calls.
func (g *Adjacency) EdgeCount() int {
	return g.edges
}

// Nodes returns all ids in lexical order.
func (g *Adjacency) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
