// Package service owns the graph state and serializes every access to it.
package service

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/trustgraph/internal/domain"
	"github.com/persistorai/trustgraph/internal/graph"
	"github.com/persistorai/trustgraph/internal/metrics"
	"github.com/persistorai/trustgraph/internal/models"
	"github.com/persistorai/trustgraph/internal/trust"
)

// Compile-time check: *TrustService must satisfy domain.TrustService.
var _ domain.TrustService = (*TrustService)(nil)

// Options tunes the approximate index and the deepest trust search.
type Options struct {
	FalsePositiveRate float64
	MaxHops           int
}

// TrustService keeps the adjacency index, the neighbor cache, and the evaluator
// behind one lock. Readers never observe a half-applied edge: an insert and its
// cache patch happen under the same write lock.
type TrustService struct {
	mu    sync.RWMutex
	adj   *graph.Adjacency
	cache *graph.NeighborCache
	eval  *trust.Evaluator
	built bool
	log   *logrus.Logger
}

// NewTrustService creates an empty graph state.
func NewTrustService(opts Options, log *logrus.Logger) *TrustService {
	adj := graph.NewAdjacency()
	cache := graph.NewNeighborCache(opts.FalsePositiveRate)

	return &TrustService{
		adj:   adj,
		cache: cache,
		eval:  trust.NewEvaluator(adj, cache, opts.MaxHops),
		log:   log,
	}
}

// LoadEdge inserts a historical transaction. It is only valid before BuildCache.
func (s *TrustService) LoadEdge(a, b string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return fmt.Errorf("loading edge %s-%s: %w", a, b, models.ErrCacheBuilt)
	}

	s.adj.InsertEdge(a, b)

	return nil
}

// BuildCache derives all two-hop filters from the batch graph. It may run once.
func (s *TrustService) BuildCache() (graph.BuildStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return graph.BuildStats{}, models.ErrCacheBuilt
	}

	stats := s.cache.BuildAll(s.adj)
	s.built = true

	metrics.CacheBuildSeconds.Observe(stats.Duration.Seconds())
	s.updateGauges()

	s.log.WithFields(logrus.Fields{
		"nodes":          stats.Nodes,
		"edges":          s.adj.EdgeCount(),
		"average_degree": stats.AverageDegree,
		"inserted":       stats.Inserted,
		"duration_ms":    stats.Duration.Milliseconds(),
	}).Info("neighbor cache built")

	return stats, nil
}

// Evaluate computes the three features against the current state without
// mutating it.
func (s *TrustService) Evaluate(a, b string) models.Verdict {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eval.Evaluate(a, b)
}

// Process handles one streaming transaction: the verdict is computed against
// the state strictly before the edge, then the edge is applied.
func (s *TrustService) Process(a, b string) (models.Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.built {
		return models.Verdict{}, fmt.Errorf("processing %s-%s: %w", a, b, models.ErrCacheNotBuilt)
	}

	v := s.eval.Evaluate(a, b)

	s.adj.InsertEdge(a, b)
	s.cache.UpdateIncremental(s.adj, a, b)

	metrics.LabelsTotal.WithLabelValues(metrics.FeatureDegree1, string(v.Degree1)).Inc()
	metrics.LabelsTotal.WithLabelValues(metrics.FeatureDegree2, string(v.Degree2)).Inc()
	metrics.LabelsTotal.WithLabelValues(metrics.FeatureDegree4, string(v.Degree4)).Inc()
	s.updateGauges()

	s.log.WithFields(logrus.Fields{
		"source":   a,
		"target":   b,
		"feature1": v.Degree1,
		"feature2": v.Degree2,
		"feature3": v.Degree4,
	}).Debug("trust.process")

	return v, nil
}

// Stats returns a snapshot of the graph size and cache health.
func (s *TrustService) Stats() models.GraphStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := models.GraphStats{
		Nodes:         s.adj.NodeCount(),
		Edges:         s.adj.EdgeCount(),
		AverageDegree: graph.AverageDegree(s.adj.EdgeCount(), s.adj.NodeCount()),
		Filters:       s.cache.Len(),
		CacheBuilt:    s.built,
	}

	if st.Filters > 0 {
		st.SaturatedRatio = float64(s.cache.Saturated()) / float64(st.Filters)
	}

	return st
}

// updateGauges must be called with mu held.
func (s *TrustService) updateGauges() {
	metrics.NodeCount.Set(float64(s.adj.NodeCount()))
	metrics.EdgeCount.Set(float64(s.adj.EdgeCount()))
	metrics.FilterCount.Set(float64(s.cache.Len()))
}
