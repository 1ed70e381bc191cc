package usecase

import (
	"context"
	"time"

	"credstamp/internal/domain"
)

// Asset is one submitted file: raw bytes plus whatever the caller knows
// about it.
type Asset struct {
	Name      string
	MediaType string
	Data      []byte
}

// TrustToolkit is the narrow boundary to the external verification engine.
// ReadAndVerify parses the embedded manifest container, validates signatures
// and certificate chains, and reports the normalized result. Implementations
// must treat a missing manifest as a nil ActiveManifest, not an error.
type TrustToolkit interface {
	ReadAndVerify(ctx context.Context, asset Asset) (*domain.ToolkitResult, error)
}

// OutcomeCache holds recently computed outcomes keyed by asset digest.
// Entries are ephemeral; a TTL of zero means no expiry.
type OutcomeCache interface {
	Get(ctx context.Context, key string) (*domain.Outcome, bool, error)
	Put(ctx context.Context, key string, value domain.Outcome, ttl time.Duration) error
}

// AssetFetcher loads submitted-by-reference assets from object storage.
type AssetFetcher interface {
	Fetch(ctx context.Context, bucket, object string) ([]byte, error)
}
