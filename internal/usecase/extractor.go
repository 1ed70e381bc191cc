package usecase

import (
	"strings"

	"credstamp/internal/domain"
)

// Extract builds the display-ready summary from a toolkit read result.
// Returns nil when the result carries no active manifest; that is absence,
// not failure. Pure: no side effects, and malformed individual fields
// degrade to absent instead of failing the extraction.
func Extract(result *domain.ToolkitResult) *domain.ManifestSummary {
	if result == nil || result.ActiveManifest == nil {
		return nil
	}
	m := result.ActiveManifest

	summary := &domain.ManifestSummary{
		Title:          m.Title,
		Format:         m.Format,
		ClaimGenerator: trimClaimGenerator(m.ClaimGenerator),
		Producer:       domain.UnknownProducer,
		Ingredients:    joinIngredientTitles(m.Ingredients),
		AiAssertion:    DetectAiAssertion(m.Assertions),
	}
	if producer := domain.ResolveProducer(m); producer != nil && producer.Name != "" {
		summary.Producer = producer.Name
	}
	if m.SignatureInfo != nil {
		summary.SignatureIssuer = m.SignatureInfo.Issuer
		summary.SignatureDate = m.SignatureInfo.Time
	}
	if result.Source != nil {
		summary.ThumbnailRef = result.Source.ThumbnailURL
	}
	return summary
}

// trimClaimGenerator strips the trailing parenthetical version annotation
// and surrounding whitespace: "Adobe Photoshop (v25.1)" -> "Adobe Photoshop".
func trimClaimGenerator(raw string) string {
	if raw == "" {
		return ""
	}
	if idx := strings.IndexByte(raw, '('); idx >= 0 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}

func joinIngredientTitles(ingredients domain.IngredientList) string {
	titles := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient.Title == "" {
			continue
		}
		titles = append(titles, ingredient.Title)
	}
	return strings.Join(titles, ", ")
}
