package models_test

import (
	"strings"
	"testing"

	"github.com/persistorai/trustgraph/internal/models"
)

func TestTrustQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		q       models.TrustQuery
		wantErr string
	}{
		{name: "valid", q: models.TrustQuery{From: "1", To: "2"}},
		{name: "trims whitespace", q: models.TrustQuery{From: " 1 ", To: "2 "}},
		{name: "missing from", q: models.TrustQuery{To: "2"}, wantErr: "source id is required"},
		{name: "blank to", q: models.TrustQuery{From: "1", To: "   "}, wantErr: "target id is required"},
		{name: "from too long", q: models.TrustQuery{From: strings.Repeat("x", 257), To: "2"}, wantErr: "from exceeds maximum length of 256"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}

				return
			}

			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTrustQuery_ValidateTrims(t *testing.T) {
	q := models.TrustQuery{From: " a ", To: "\tb"}
	if err := q.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if q.From != "a" || q.To != "b" {
		t.Errorf("got %q/%q, want a/b", q.From, q.To)
	}
}

func TestLabelOf(t *testing.T) {
	if got := models.LabelOf(true); got != models.Trusted {
		t.Errorf("LabelOf(true) = %q, want trusted", got)
	}

	if got := models.LabelOf(false); got != models.Unverified {
		t.Errorf("LabelOf(false) = %q, want unverified", got)
	}
}

func TestVerdict_LabelsOrder(t *testing.T) {
	v := models.Verdict{Degree1: models.Unverified, Degree2: models.Trusted, Degree4: models.Trusted}
	got := v.Labels()

	want := [3]models.Label{models.Unverified, models.Trusted, models.Trusted}
	if got != want {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}
