package usecase

import (
	"reflect"
	"testing"

	"credstamp/internal/domain"
)

func TestClassify(t *testing.T) {
	clean := &domain.ManifestSummary{Producer: "Acme", Ingredients: ""}
	flagged := &domain.ManifestSummary{Producer: "Acme", AiAssertion: true}

	cases := []struct {
		name    string
		summary *domain.ManifestSummary
		count   int
		want    domain.TrustState
	}{
		{name: "no manifest", summary: nil, count: 0, want: domain.StateNotVerifiable},
		{name: "no manifest with warnings", summary: nil, count: 3, want: domain.StateNotVerifiable},
		{name: "clean manifest", summary: clean, count: 0, want: domain.StateReal},
		{name: "ai assertion", summary: flagged, count: 0, want: domain.StateAiGenerated},
		{name: "validation warnings", summary: clean, count: 1, want: domain.StateUntrusted},
		{name: "warnings dominate ai flag", summary: flagged, count: 2, want: domain.StateUntrusted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := Classify(tc.summary, tc.count)
			if outcome.State != tc.want {
				t.Fatalf("expected state %s, got %s", tc.want, outcome.State)
			}
			if tc.summary == nil {
				if outcome.Summary != nil {
					t.Fatalf("expected no summary, got %+v", outcome.Summary)
				}
				if outcome.Error != "" {
					t.Fatalf("absence must not carry an error, got %q", outcome.Error)
				}
			} else if outcome.Summary != tc.summary {
				t.Fatalf("expected summary to be attached")
			}
			if !outcome.State.Terminal() {
				t.Fatalf("classification must yield a terminal state")
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	summary := &domain.ManifestSummary{Producer: "Acme", AiAssertion: true}
	first := Classify(summary, 1)
	second := Classify(summary, 1)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical outcomes, got %+v and %+v", first, second)
	}
}
