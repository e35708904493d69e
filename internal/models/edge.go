package models

import "strings"

// MaxIDLength bounds party identifiers accepted over the HTTP surface.
const MaxIDLength = 256

// Transaction is a single payment between two parties. It becomes an
// undirected edge once applied to the graph.
type Transaction struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// TrustQuery is the payload for a read-only trust evaluation.
type TrustQuery struct {
	From string `form:"from" json:"from"`
	To   string `form:"to" json:"to"`
}

// Validate checks that both ids are present and within limits.
func (q *TrustQuery) Validate() error {
	q.From = strings.TrimSpace(q.From)
	q.To = strings.TrimSpace(q.To)

	if q.From == "" {
		return ErrMissingSource
	}

	if q.To == "" {
		return ErrMissingTarget
	}

	if len(q.From) > MaxIDLength {
		return ErrFieldTooLong("from", MaxIDLength)
	}

	if len(q.To) > MaxIDLength {
		return ErrFieldTooLong("to", MaxIDLength)
	}

	return nil
}
