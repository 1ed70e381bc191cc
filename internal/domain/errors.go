package domain

import "errors"

var (
	ErrToolkitUnavailable = errors.New("trust toolkit unavailable")
	ErrUnsupportedAsset   = errors.New("unsupported asset type")
	ErrAssetRequired      = errors.New("asset is required")
	ErrAssetTooLarge      = errors.New("asset too large")
	ErrNotFound           = errors.New("not found")
)
