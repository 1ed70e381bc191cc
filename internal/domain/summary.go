package domain

// UnknownProducer is reported when the toolkit cannot resolve a producer
// name from the active manifest.
const UnknownProducer = "Unknown"

// ManifestSummary is the normalized, display-ready view of a verified
// manifest. It is read-only once produced; optional string fields use "" for
// absent and are omitted from JSON.
type ManifestSummary struct {
	Title           string `json:"title,omitempty"`
	Format          string `json:"format,omitempty"`
	ClaimGenerator  string `json:"claim_generator,omitempty"`
	Producer        string `json:"producer"`
	SignatureIssuer string `json:"signature_issuer,omitempty"`
	SignatureDate   string `json:"signature_date,omitempty"`
	Ingredients     string `json:"ingredients"`
	AiAssertion     bool   `json:"ai_assertion"`
	ThumbnailRef    string `json:"thumbnail_ref,omitempty"`
}
