package models

// Label is the trust classification emitted for a transaction.
type Label string

// Labels written to the output sinks, one per line.
const (
	Trusted    Label = "trusted"
	Unverified Label = "unverified"
)

// LabelOf maps a membership result to its label.
func LabelOf(trusted bool) Label {
	if trusted {
		return Trusted
	}

	return Unverified
}

// Verdict holds the three features computed for one transaction, in output order.
type Verdict struct {
	Degree1 Label `json:"feature1"`
	Degree2 Label `json:"feature2"`
	Degree4 Label `json:"feature3"`
}

// Labels returns the features in sink order.
func (v Verdict) Labels() [3]Label {
	return [3]Label{v.Degree1, v.Degree2, v.Degree4}
}

// GraphStats summarizes the in-memory graph state.
type GraphStats struct {
	Nodes          int     `json:"nodes"`
	Edges          int     `json:"edges"`
	AverageDegree  int     `json:"average_degree"`
	Filters        int     `json:"neighbor_filters"`
	SaturatedRatio float64 `json:"saturated_filter_ratio"`
	CacheBuilt     bool    `json:"cache_built"`
}
