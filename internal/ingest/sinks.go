package ingest

import (
	"bufio"
	"fmt"
	"io"

	"github.com/persistorai/trustgraph/internal/models"
)

// Sinks writes one label per line to three parallel outputs, one per feature.
type Sinks struct {
	w [3]*bufio.Writer
}

// NewSinks wraps the feature1, feature2, and feature3 outputs.
func NewSinks(feature1, feature2, feature3 io.Writer) *Sinks {
	return &Sinks{w: [3]*bufio.Writer{
		bufio.NewWriter(feature1),
		bufio.NewWriter(feature2),
		bufio.NewWriter(feature3),
	}}
}

// Write emits one line to each sink.
func (s *Sinks) Write(v models.Verdict) error {
	for i, l := range v.Labels() {
		if _, err := s.w[i].WriteString(string(l) + "\n"); err != nil {
			return fmt.Errorf("writing feature%d output: %w", i+1, err)
		}
	}

	return nil
}

// Flush flushes every sink.
func (s *Sinks) Flush() error {
	for i, w := range s.w {
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flushing feature%d output: %w", i+1, err)
		}
	}

	return nil
}
