package cacheredis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"credstamp/internal/domain"
	"credstamp/internal/usecase"
)

const keyPrefix = "credstamp:outcome:"

// Cache stores verification outcomes in Redis with a TTL. Entries are
// ephemeral by design; this is not result persistence.
type Cache struct {
	client *redis.Client
}

func New(addr, password string, db int) (*Cache, error) {
	if addr == "" {
		return nil, errors.New("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: client}, nil
}

func (c *Cache) Get(ctx context.Context, key string) (*domain.Outcome, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var outcome domain.Outcome
	if err := json.Unmarshal(payload, &outcome); err != nil {
		return nil, false, err
	}
	return &outcome, true, nil
}

func (c *Cache) Put(ctx context.Context, key string, value domain.Outcome, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, payload, ttl).Err()
}

var _ usecase.OutcomeCache = (*Cache)(nil)
