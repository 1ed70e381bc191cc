package domain

import "encoding/json"

// ToolkitResult is the normalized read result of the external trust toolkit.
// The toolkit owns container parsing, signature verification, and certificate
// validation; credstamp only interprets what it reports. A nil ActiveManifest
// means the asset carries no content credential at all.
type ToolkitResult struct {
	ActiveManifest   *ActiveManifest    `json:"active_manifest,omitempty"`
	ValidationStatus []ValidationStatus `json:"validation_status,omitempty"`
	Source           *Source            `json:"source,omitempty"`
}

// ValidationStatus is one warning or error the toolkit emitted while checking
// signatures, certificates, or manifest consistency. A non-empty list marks
// the asset untrusted regardless of its other fields.
type ValidationStatus struct {
	Code        string `json:"code"`
	URL         string `json:"url,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// Source describes the asset the toolkit read the manifest from. Only the
// thumbnail reference is consumed here; retrieval mechanics live elsewhere.
type Source struct {
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type SignatureInfo struct {
	Issuer string `json:"issuer,omitempty"`
	Time   string `json:"time,omitempty"`
}

type Ingredient struct {
	Title        string `json:"title,omitempty"`
	Format       string `json:"format,omitempty"`
	InstanceID   string `json:"instance_id,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// Assertion carries one labeled claim from the manifest's assertion store.
// Data is kept raw: assertion schemas are open-ended and only ever inspected
// as serialized text or decoded ad hoc (producer resolution).
type Assertion struct {
	Label string          `json:"label"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// IngredientList tolerates toolkit reports where the ingredient field is not
// an array; anything else decodes to an empty list instead of failing the
// whole result.
type IngredientList []Ingredient

func (l *IngredientList) UnmarshalJSON(payload []byte) error {
	var items []Ingredient
	if err := json.Unmarshal(payload, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// AssertionList mirrors IngredientList: a malformed assertion store degrades
// to empty rather than erroring.
type AssertionList []Assertion

func (l *AssertionList) UnmarshalJSON(payload []byte) error {
	var items []Assertion
	if err := json.Unmarshal(payload, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// ActiveManifest is the manifest the toolkit selected as authoritative.
// Optional string fields use "" for absent.
type ActiveManifest struct {
	Title          string         `json:"title,omitempty"`
	Format         string         `json:"format,omitempty"`
	ClaimGenerator string         `json:"claim_generator,omitempty"`
	SignatureInfo  *SignatureInfo `json:"signature_info,omitempty"`
	Ingredients    IngredientList `json:"ingredients,omitempty"`
	Assertions     AssertionList  `json:"assertions,omitempty"`
}
