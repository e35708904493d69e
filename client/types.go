package client

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Phase         string  `json:"phase"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// StatsResponse describes the graph held by the process.
type StatsResponse struct {
	Nodes          int     `json:"nodes"`
	Edges          int     `json:"edges"`
	AverageDegree  int     `json:"average_degree"`
	Filters        int     `json:"neighbor_filters"`
	SaturatedRatio float64 `json:"saturated_filter_ratio"`
	CacheBuilt     bool    `json:"cache_built"`
}

// TrustResponse carries the three labels, each "trusted" or "unverified".
type TrustResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Feature1 string `json:"feature1"`
	Feature2 string `json:"feature2"`
	Feature3 string `json:"feature3"`
}
