package ingest_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/trustgraph/internal/ingest"
	"github.com/persistorai/trustgraph/internal/models"
	"github.com/persistorai/trustgraph/internal/service"
)

const batchInput = `time, id1, id2, amount, message
2016-11-01 17:38:25, 1, 2, 25.32, rent
2016-11-01 17:38:25, 2, 3, 10.00, pizza
not a record
2016-11-01 17:38:25, 3, 4
`

const streamInput = `time, id1, id2, amount, message
2016-11-02 09:38:53, 1, 2, 13.74, lunch
2016-11-02 09:38:53, 1, 3, 7.00, coffee
short,row
2016-11-02 09:38:53, 1, 5, 3.00, first time
2016-11-02 09:38:53, 4, 5, 9.99, friend of friend
`

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)

	return l
}

func newDriver() *ingest.Driver {
	svc := service.NewTrustService(service.Options{FalsePositiveRate: 0.1, MaxHops: 4}, testLogger())
	return ingest.NewDriver(svc, testLogger())
}

func lines(b *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

func TestRun_EndToEnd(t *testing.T) {
	var out1, out2, out3 bytes.Buffer
	sinks := ingest.NewSinks(&out1, &out2, &out3)

	sum, err := newDriver().Run(context.Background(), strings.NewReader(batchInput), strings.NewReader(streamInput), sinks)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.BatchRecords != 3 || sum.BatchSkipped != 1 {
		t.Errorf("batch records/skipped = %d/%d, want 3/1", sum.BatchRecords, sum.BatchSkipped)
	}
	if sum.StreamRecords != 4 || sum.StreamSkipped != 1 {
		t.Errorf("stream records/skipped = %d/%d, want 4/1", sum.StreamRecords, sum.StreamSkipped)
	}
	if sum.RunID == "" {
		t.Error("RunID is empty")
	}

	want1 := []string{"trusted", "unverified", "unverified", "unverified"}
	want3 := []string{"trusted", "trusted", "unverified", "trusted"}

	got1, got2, got3 := lines(&out1), lines(&out2), lines(&out3)
	if len(got1) != 4 || len(got2) != 4 || len(got3) != 4 {
		t.Fatalf("line counts = %d/%d/%d, want 4 each", len(got1), len(got2), len(got3))
	}

	for i := range want1 {
		if got1[i] != want1[i] {
			t.Errorf("feature1 line %d = %q, want %q", i+1, got1[i], want1[i])
		}
		if got3[i] != want3[i] {
			t.Errorf("feature3 line %d = %q, want %q", i+1, got3[i], want3[i])
		}
	}

	// Lines 1-3 are exact for feature2: direct, true two-hop, unseen node.
	for i, want := range []string{"trusted", "trusted", "unverified"} {
		if got2[i] != want {
			t.Errorf("feature2 line %d = %q, want %q", i+1, got2[i], want)
		}
	}

	if sum.Trusted[0] != 1 || sum.Trusted[2] != 3 {
		t.Errorf("trusted tallies = %v, want feature1=1 feature3=3", sum.Trusted)
	}
}

func TestRun_EmptyInputs(t *testing.T) {
	var out1, out2, out3 bytes.Buffer
	sinks := ingest.NewSinks(&out1, &out2, &out3)

	sum, err := newDriver().Run(context.Background(), strings.NewReader(""), strings.NewReader("header\n"), sinks)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.StreamRecords != 0 || out1.Len() != 0 || out2.Len() != 0 || out3.Len() != 0 {
		t.Errorf("expected no output, got %d records", sum.StreamRecords)
	}
}

func TestRun_BlankIDsNeverLinkStrangers(t *testing.T) {
	var out1, out2, out3 bytes.Buffer
	sinks := ingest.NewSinks(&out1, &out2, &out3)

	sum, err := newDriver().Run(context.Background(), strings.NewReader("h\nt,a,\nt,c,\n"), strings.NewReader("h\nt,a,c\n"), sinks)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.BatchRecords != 0 || sum.BatchSkipped != 2 {
		t.Errorf("batch records/skipped = %d/%d, want 0/2", sum.BatchRecords, sum.BatchSkipped)
	}

	for i, out := range []*bytes.Buffer{&out1, &out2, &out3} {
		if out.String() != "unverified\n" {
			t.Errorf("feature%d = %q, want unverified", i+1, out.String())
		}
	}
}

func TestRun_LongMessageDoesNotAbort(t *testing.T) {
	var out1, out2, out3 bytes.Buffer
	sinks := ingest.NewSinks(&out1, &out2, &out3)

	stream := "h\nt,1,2,9.99," + strings.Repeat("m", 2<<20) + "\nt,2,3,1.00,ok\n"

	sum, err := newDriver().Run(context.Background(), strings.NewReader(batchInput), strings.NewReader(stream), sinks)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.StreamRecords != 2 {
		t.Errorf("stream records = %d, want 2", sum.StreamRecords)
	}
	if out1.String() != "trusted\ntrusted\n" {
		t.Errorf("feature1 = %q, want two trusted lines", out1.String())
	}
}

var errBoom = errors.New("boom")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBoom }

func TestRun_SinkFailure(t *testing.T) {
	var ok bytes.Buffer
	sinks := ingest.NewSinks(&ok, failingWriter{}, &ok)

	_, err := newDriver().Run(context.Background(), strings.NewReader(batchInput), strings.NewReader(streamInput), sinks)
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run error = %v, want errBoom", err)
	}
	if !strings.Contains(err.Error(), "feature2") {
		t.Errorf("error %q does not name the failing output", err)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := newDriver().Run(ctx, strings.NewReader(batchInput), strings.NewReader(streamInput), ingest.NewSinks(&out, &out, &out))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestSinks_Write(t *testing.T) {
	var a, b, c bytes.Buffer
	s := ingest.NewSinks(&a, &b, &c)

	if err := s.Write(models.Verdict{Degree1: models.Unverified, Degree2: models.Trusted, Degree4: models.Trusted}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if a.String() != "unverified\n" || b.String() != "trusted\n" || c.String() != "trusted\n" {
		t.Errorf("got %q %q %q", a.String(), b.String(), c.String())
	}
}
