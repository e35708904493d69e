package ingest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/trustgraph/internal/domain"
	"github.com/persistorai/trustgraph/internal/metrics"
	"github.com/persistorai/trustgraph/internal/models"
)

// Phase names used in logs and metrics.
const (
	PhaseBatch  = "batch"
	PhaseStream = "stream"
)

// Summary reports what one run consumed and emitted.
type Summary struct {
	RunID         string
	BatchRecords  int
	BatchSkipped  int
	StreamRecords int
	StreamSkipped int
	Trusted       [3]int
	Duration      time.Duration
}

// Driver sequences the batch load, the one-time cache build, and the
// evaluate-then-apply streaming loop.
type Driver struct {
	svc domain.TrustWriter
	log *logrus.Logger
}

// NewDriver creates a Driver over the given graph state.
func NewDriver(svc domain.TrustWriter, log *logrus.Logger) *Driver {
	return &Driver{svc: svc, log: log}
}

// Run consumes batch fully, builds the neighbor cache, then processes stream
// record by record, writing three labels per valid record to sinks. The sinks
// are flushed before Run returns.
func (d *Driver) Run(ctx context.Context, batch, stream io.Reader, sinks *Sinks) (Summary, error) {
	start := time.Now()
	sum := Summary{RunID: uuid.New().String()}
	log := d.log.WithField("run_id", sum.RunID)

	log.Info("reading batch input")

	if err := d.loadBatch(ctx, batch, &sum); err != nil {
		return sum, err
	}

	if _, err := d.svc.BuildCache(); err != nil {
		return sum, fmt.Errorf("building neighbor cache: %w", err)
	}

	log.Info("reading stream input")

	streamErr := d.processStream(ctx, stream, sinks, &sum)
	if err := sinks.Flush(); err != nil && streamErr == nil {
		streamErr = err
	}

	sum.Duration = time.Since(start)

	if streamErr != nil {
		return sum, streamErr
	}

	log.WithFields(logrus.Fields{
		"batch_records":    sum.BatchRecords,
		"batch_skipped":    sum.BatchSkipped,
		"stream_records":   sum.StreamRecords,
		"stream_skipped":   sum.StreamSkipped,
		"feature1_trusted": sum.Trusted[0],
		"feature2_trusted": sum.Trusted[1],
		"feature3_trusted": sum.Trusted[2],
		"duration_ms":      sum.Duration.Milliseconds(),
	}).Info("run complete")

	return sum, nil
}

func (d *Driver) loadBatch(ctx context.Context, batch io.Reader, sum *Summary) error {
	r := NewReader(batch)
	defer func() {
		sum.BatchSkipped = r.Skipped()
		recordPhase(PhaseBatch, sum.BatchRecords, sum.BatchSkipped)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx, ok, err := r.Next()
		if err != nil {
			return fmt.Errorf("batch input: %w", err)
		}

		if !ok {
			return nil
		}

		if err := d.svc.LoadEdge(tx.Source, tx.Target); err != nil {
			return err
		}

		sum.BatchRecords++
	}
}

func (d *Driver) processStream(ctx context.Context, stream io.Reader, sinks *Sinks, sum *Summary) error {
	r := NewReader(stream)
	defer func() {
		sum.StreamSkipped = r.Skipped()
		recordPhase(PhaseStream, sum.StreamRecords, sum.StreamSkipped)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx, ok, err := r.Next()
		if err != nil {
			return fmt.Errorf("stream input: %w", err)
		}

		if !ok {
			return nil
		}

		v, err := d.svc.Process(tx.Source, tx.Target)
		if err != nil {
			return err
		}

		if err := sinks.Write(v); err != nil {
			return err
		}

		sum.StreamRecords++

		for i, l := range v.Labels() {
			if l == models.Trusted {
				sum.Trusted[i]++
			}
		}
	}
}

func recordPhase(phase string, valid, skipped int) {
	metrics.RecordsTotal.WithLabelValues(phase, "valid").Add(float64(valid))
	metrics.RecordsTotal.WithLabelValues(phase, "skipped").Add(float64(skipped))
}
