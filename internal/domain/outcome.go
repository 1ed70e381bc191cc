package domain

// TrustState names the provenance trust category of a submitted asset.
type TrustState string

const (
	StateIdle          TrustState = "idle"
	StateChecking      TrustState = "checking"
	StateNotVerifiable TrustState = "not_verifiable"
	StateReal          TrustState = "real"
	StateAiGenerated   TrustState = "ai_generated"
	StateUntrusted     TrustState = "untrusted"
)

// Outcome is the single result of one verification request. Exactly one
// variant is live at a time; values are immutable once constructed. Summary
// is set for the three manifest-bearing terminal states, Error only when the
// toolkit failed (absence of a manifest is not a failure).
type Outcome struct {
	State   TrustState       `json:"state"`
	Summary *ManifestSummary `json:"summary,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Terminal reports whether the state will not change without a new
// submission.
func (s TrustState) Terminal() bool {
	switch s {
	case StateNotVerifiable, StateReal, StateAiGenerated, StateUntrusted:
		return true
	}
	return false
}
