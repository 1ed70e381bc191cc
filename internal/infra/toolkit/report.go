package toolkit

import (
	"encoding/json"
	"fmt"

	"credstamp/internal/domain"
)

// reportDoc mirrors the manifest store report emitted by c2patool-compatible
// verifiers: a map of manifests keyed by URN, with active_manifest naming the
// authoritative one.
type reportDoc struct {
	ActiveManifest   string                    `json:"active_manifest"`
	Manifests        map[string]manifestDoc    `json:"manifests"`
	ValidationStatus []domain.ValidationStatus `json:"validation_status"`
}

type manifestDoc struct {
	Title          string                `json:"title"`
	Format         string                `json:"format"`
	ClaimGenerator string                `json:"claim_generator"`
	SignatureInfo  *domain.SignatureInfo `json:"signature_info"`
	Ingredients    domain.IngredientList `json:"ingredients"`
	Assertions     domain.AssertionList  `json:"assertions"`
	Thumbnail      *thumbnailDoc         `json:"thumbnail"`
}

type thumbnailDoc struct {
	Format     string `json:"format"`
	Identifier string `json:"identifier"`
}

// ParseReport converts a verifier report into the boundary result model. A
// report with no active manifest entry yields an empty result (manifest
// absent), never an error.
func ParseReport(payload []byte) (*domain.ToolkitResult, error) {
	var doc reportDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode toolkit report: %w", err)
	}
	result := &domain.ToolkitResult{ValidationStatus: doc.ValidationStatus}
	if doc.ActiveManifest == "" {
		return result, nil
	}
	active, ok := doc.Manifests[doc.ActiveManifest]
	if !ok {
		return result, nil
	}
	result.ActiveManifest = &domain.ActiveManifest{
		Title:          active.Title,
		Format:         active.Format,
		ClaimGenerator: active.ClaimGenerator,
		SignatureInfo:  active.SignatureInfo,
		Ingredients:    active.Ingredients,
		Assertions:     active.Assertions,
	}
	if active.Thumbnail != nil && active.Thumbnail.Identifier != "" {
		result.Source = &domain.Source{ThumbnailURL: active.Thumbnail.Identifier}
	}
	return result, nil
}
