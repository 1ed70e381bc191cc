package assets

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sethvargo/go-retry"

	"credstamp/internal/config"
)

// Store fetches submitted-by-reference assets from S3-compatible object
// storage. Downloads retry with exponential backoff; verification of the
// fetched asset is never retried here or anywhere else.
type Store struct {
	client *minio.Client
}

func NewStoreFromConfig(cfg config.Config) (*Store, error) {
	if cfg.MinioEndpoint == "" {
		return nil, errors.New("minio endpoint is required")
	}
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return nil, err
	}
	return &Store{client: client}, nil
}

func (s *Store) Fetch(ctx context.Context, bucket, object string) ([]byte, error) {
	var payload []byte
	backoff := retry.WithMaxRetries(3, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		obj, err := s.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
		if err != nil {
			return retry.RetryableError(err)
		}
		defer obj.Close()
		data, err := io.ReadAll(obj)
		if err != nil {
			return retry.RetryableError(err)
		}
		payload = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}
