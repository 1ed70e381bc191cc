package usecase

import "credstamp/internal/domain"

// Classify derives the trust category for one verified asset. Total and
// deterministic; precedence is fixed: a missing manifest is not verifiable,
// validation warnings dominate the AI flag, and only a clean manifest with
// no AI assertion is reported real.
func Classify(summary *domain.ManifestSummary, validationStatusCount int) domain.Outcome {
	if summary == nil {
		return domain.Outcome{State: domain.StateNotVerifiable}
	}
	if validationStatusCount > 0 {
		return domain.Outcome{State: domain.StateUntrusted, Summary: summary}
	}
	if summary.AiAssertion {
		return domain.Outcome{State: domain.StateAiGenerated, Summary: summary}
	}
	return domain.Outcome{State: domain.StateReal, Summary: summary}
}
