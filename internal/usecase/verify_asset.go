package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"credstamp/internal/domain"
)

// VerifyAsset orchestrates one verification request: publish checking, call
// the trust toolkit, extract and classify, publish the terminal outcome.
// Toolkit errors (read or bootstrap, indistinguishable to the caller) map to
// the not-verifiable state with a cause message; nothing is retried.
type VerifyAsset struct {
	Toolkit  TrustToolkit
	State    *OutcomeState
	Cache    OutcomeCache
	CacheTTL time.Duration
}

func (uc *VerifyAsset) Execute(ctx context.Context, asset Asset) domain.Outcome {
	var seq uint64
	if uc.State != nil {
		seq = uc.State.Begin()
	}
	outcome := uc.verify(ctx, asset)
	if uc.State != nil {
		uc.State.Publish(seq, outcome)
	}
	return outcome
}

func (uc *VerifyAsset) verify(ctx context.Context, asset Asset) domain.Outcome {
	if uc.Toolkit == nil {
		return domain.Outcome{
			State: domain.StateNotVerifiable,
			Error: domain.ErrToolkitUnavailable.Error(),
		}
	}

	key := assetDigest(asset.Data)
	if uc.Cache != nil {
		if cached, ok, err := uc.Cache.Get(ctx, key); err == nil && ok && cached != nil {
			return *cached
		}
	}

	result, err := uc.Toolkit.ReadAndVerify(ctx, asset)
	if err != nil {
		return domain.Outcome{State: domain.StateNotVerifiable, Error: err.Error()}
	}

	outcome := Classify(Extract(result), validationStatusCount(result))
	if uc.Cache != nil && outcome.Error == "" {
		// Failures are never cached; a new submission must re-run them.
		_ = uc.Cache.Put(ctx, key, outcome, uc.CacheTTL)
	}
	return outcome
}

func validationStatusCount(result *domain.ToolkitResult) int {
	if result == nil {
		return 0
	}
	return len(result.ValidationStatus)
}

func assetDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
