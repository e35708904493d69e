// Package trust computes the three trust features for a pair of parties from
// the current graph state.
package trust

import (
	"github.com/persistorai/trustgraph/internal/graph"
	"github.com/persistorai/trustgraph/internal/models"
)

// Evaluator answers trust queries. It only reads the graph and cache; callers
// are responsible for evaluating before applying the transaction being judged.
type Evaluator struct {
	adj     *graph.Adjacency
	cache   *graph.NeighborCache
	maxHops int
}

// NewEvaluator creates an Evaluator. maxHops bounds the deepest feature and
// falls back to graph.MaxTrustHops when not positive.
func NewEvaluator(adj *graph.Adjacency, cache *graph.NeighborCache, maxHops int) *Evaluator {
	if maxHops <= 0 {
		maxHops = graph.MaxTrustHops
	}

	return &Evaluator{adj: adj, cache: cache, maxHops: maxHops}
}

// MaxHops returns the search depth used by Degree4.
func (e *Evaluator) MaxHops() int { return e.maxHops }

// Degree1 is trusted when b has transacted with a directly.
func (e *Evaluator) Degree1(a, b string) models.Label {
	return models.LabelOf(e.adj.HasEdge(a, b))
}

// Degree2 is trusted when b is a direct neighbor of a or a's two-hop filter
// may contain b.
func (e *Evaluator) Degree2(a, b string) models.Label {
	if !e.known(a, b) {
		return models.Unverified
	}

	return models.LabelOf(e.adj.HasEdge(a, b) || e.cache.MayContain(a, b))
}

// Degree4 extends Degree2 with an exact breadth-first search up to maxHops.
func (e *Evaluator) Degree4(a, b string) models.Label {
	if !e.known(a, b) {
		return models.Unverified
	}

	if e.adj.HasEdge(a, b) || e.cache.MayContain(a, b) {
		return models.Trusted
	}

	_, ok := graph.Reachable(e.adj, a, b, e.maxHops)

	return models.LabelOf(ok)
}

// Evaluate computes all three features in output order.
func (e *Evaluator) Evaluate(a, b string) models.Verdict {
	return models.Verdict{
		Degree1: e.Degree1(a, b),
		Degree2: e.Degree2(a, b),
		Degree4: e.Degree4(a, b),
	}
}

func (e *Evaluator) known(a, b string) bool {
	return e.adj.HasNode(a) && e.adj.HasNode(b)
}
