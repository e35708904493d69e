// Package domain defines the canonical service interfaces shared across the
// ingest driver and the HTTP layer. Consumers should depend on these interfaces
// rather than re-declaring equivalent ones.
package domain

import (
	"github.com/persistorai/trustgraph/internal/graph"
	"github.com/persistorai/trustgraph/internal/models"
)

// TrustReader answers read-only queries against the current graph state.
type TrustReader interface {
	Evaluate(a, b string) models.Verdict
	Stats() models.GraphStats
}

// TrustWriter mutates the graph state through the batch and streaming phases.
type TrustWriter interface {
	LoadEdge(a, b string) error
	BuildCache() (graph.BuildStats, error)
	Process(a, b string) (models.Verdict, error)
}

// TrustService is the full graph-state owner.
type TrustService interface {
	TrustReader
	TrustWriter
}
