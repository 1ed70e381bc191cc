package usecase

import (
	"encoding/json"
	"strings"

	"credstamp/internal/domain"
)

// DetectAiAssertion reports whether the serialized assertion store mentions
// "ai" anywhere, case-insensitively. This is a best-effort heuristic pending
// a standardized schema flag; it is kept behind this single predicate so a
// schema-driven check can replace it without touching classification
// precedence. Known to match unrelated values that merely contain the
// letters, matching the behavior of the reference verifier.
func DetectAiAssertion(assertions domain.AssertionList) bool {
	if len(assertions) == 0 {
		return false
	}
	payload, err := json.Marshal(assertions)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(payload)), "ai")
}
