package toolkit

import (
	"context"

	"credstamp/internal/domain"
	"credstamp/internal/usecase"
)

// Unavailable stands in for a toolkit that failed to initialize. Every read
// surfaces the bootstrap error; callers cannot and need not distinguish it
// from a read failure.
type Unavailable struct {
	Err error
}

func (u Unavailable) ReadAndVerify(context.Context, usecase.Asset) (*domain.ToolkitResult, error) {
	if u.Err != nil {
		return nil, u.Err
	}
	return nil, domain.ErrToolkitUnavailable
}
