// Package metrics defines Prometheus metrics for trustgraph.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustgraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustgraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustgraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	RecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustgraph_records_total",
			Help: "Input records by phase and outcome",
		},
		[]string{"phase", "outcome"},
	)

	LabelsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustgraph_labels_total",
			Help: "Emitted labels by feature",
		},
		[]string{"feature", "label"},
	)

	NodeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trustgraph_graph_nodes",
			Help: "Distinct parties in the graph",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trustgraph_graph_edges",
			Help: "Transactions applied to the graph",
		},
	)

	FilterCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trustgraph_neighbor_filters",
			Help: "Two-hop Bloom filters held in the neighbor cache",
		},
	)

	CacheBuildSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trustgraph_cache_build_seconds",
			Help:    "Duration of full neighbor cache builds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)
)

// Feature label values for LabelsTotal.
const (
	FeatureDegree1 = "feature1"
	FeatureDegree2 = "feature2"
	FeatureDegree4 = "feature3"
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		RecordsTotal, LabelsTotal,
		NodeCount, EdgeCount, FilterCount,
		CacheBuildSeconds,
	)
}
