package domain

import "encoding/json"

const creativeWorkLabel = "stds.schema-org.CreativeWork"

// Producer is the credentialed author/signer of the asset as declared in the
// manifest's CreativeWork assertion.
type Producer struct {
	Type       string `json:"@type,omitempty"`
	Name       string `json:"name,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

type creativeWorkDoc struct {
	Author []Producer `json:"author"`
}

// ResolveProducer selects the producer from the active manifest's
// CreativeWork assertion: the first author entry carrying a name. Returns nil
// when the manifest declares no resolvable producer.
func ResolveProducer(m *ActiveManifest) *Producer {
	if m == nil {
		return nil
	}
	for _, assertion := range m.Assertions {
		if assertion.Label != creativeWorkLabel || len(assertion.Data) == 0 {
			continue
		}
		var doc creativeWorkDoc
		if err := json.Unmarshal(assertion.Data, &doc); err != nil {
			continue
		}
		for i := range doc.Author {
			if doc.Author[i].Name != "" {
				return &doc.Author[i]
			}
		}
	}
	return nil
}
