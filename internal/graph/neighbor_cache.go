package graph

import (
	"time"

	"github.com/persistorai/trustgraph/internal/bloom"
)

// NeighborCache keeps one Bloom filter per node approximating the node's
// two-hop neighborhood minus its direct neighbors. Filters are sized when they
// are created and never resized.
type NeighborCache struct {
	falsePositive float64
	filters       map[string]*bloom.Filter
}

// BuildStats describes one full cache build.
type BuildStats struct {
	Nodes         int
	AverageDegree int
	Inserted      int
	Duration      time.Duration
}

// NewNeighborCache creates an empty cache whose filters target the given
// false-positive rate.
func NewNeighborCache(falsePositive float64) *NeighborCache {
	if falsePositive <= 0 || falsePositive >= 1 {
		falsePositive = bloom.DefaultFalsePositiveRate
	}

	return &NeighborCache{
		falsePositive: falsePositive,
		filters:       make(map[string]*bloom.Filter),
	}
}

// BuildAll derives every node's filter from scratch. It runs once, after the
// batch load and before the first streaming record.
func (c *NeighborCache) BuildAll(g *Adjacency) BuildStats {
	start := time.Now()
	avg := AverageDegree(g.EdgeCount(), g.NodeCount())
	c.filters = make(map[string]*bloom.Filter, g.NodeCount())

	var inserted int

	for v, direct := range g.nodes {
		f := bloom.New(c.falsePositive, ExpectedTwoHop(len(direct), avg))

		for u := range direct {
			for w := range g.nodes[u] {
				if w == v {
					continue
				}

				if _, ok := direct[w]; ok {
					continue
				}

				f.Add(w)
				inserted++
			}
		}

		c.filters[v] = f
	}

	return BuildStats{
		Nodes:         len(c.filters),
		AverageDegree: avg,
		Inserted:      inserted,
		Duration:      time.Since(start),
	}
}

// UpdateIncremental patches the cache for an edge a-b that has already been
// inserted into g. Cost is O(deg(a) + deg(b)).
func (c *NeighborCache) UpdateIncremental(g *Adjacency, a, b string) {
	c.updateDirected(g, a, b)
	c.updateDirected(g, b, a)
}

func (c *NeighborCache) updateDirected(g *Adjacency, a, b string) {
	direct := g.Neighbors(a)
	fa := c.getOrCreate(g, a)

	// b's neighbors are now two hops from a.
	for w := range g.Neighbors(b) {
		if w == a {
			continue
		}

		if _, ok := direct[w]; ok {
			continue
		}

		fa.Add(w)
	}

	// b is now two hops from each of a's other neighbors.
	for n := range direct {
		fn := c.getOrCreate(g, n)
		if n != b {
			fn.Add(b)
		}
	}
}

// getOrCreate returns id's filter, creating one sized from the current graph
// when it is missing.
func (c *NeighborCache) getOrCreate(g *Adjacency, id string) *bloom.Filter {
	if f, ok := c.filters[id]; ok {
		return f
	}

	avg := AverageDegree(g.EdgeCount(), g.NodeCount())
	f := bloom.New(c.falsePositive, ExpectedTwoHop(g.Degree(id), avg))
	c.filters[id] = f

	return f
}

// Filter returns id's filter, if one has been created.
func (c *NeighborCache) Filter(id string) (*bloom.Filter, bool) {
	f, ok := c.filters[id]
	return f, ok
}

// MayContain reports whether b may be in a's two-hop set. A missing filter
// means no.
func (c *NeighborCache) MayContain(a, b string) bool {
	f, ok := c.filters[a]
	return ok && f.Contains(b)
}

// Len returns the number of filters.
func (c *NeighborCache) Len() int {
	return len(c.filters)
}

// Saturated returns how many filters hold more items than they were sized for.
func (c *NeighborCache) Saturated() int {
	var n int

	for _, f := range c.filters {
		if f.Saturated() {
			n++
		}
	}

	return n
}
