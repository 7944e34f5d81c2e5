package redis

import (
	"context"
	"time"

	redisclient "github.com/heystay/booking-api/cmd/redis"
)

// Repository is the entity read cache. Every method degrades to a no-op
// (miss on reads) when no redis client is configured, so the cache is
// strictly optional.
type Repository interface {
	GetEntity(ctx context.Context, resource, id string) ([]byte, error)
	SetEntity(ctx context.Context, resource, id string, payload []byte, ttl time.Duration) error
	InvalidateEntity(ctx context.Context, resource, id string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func entityKey(resource, id string) string {
	return resource + ":" + id
}

// GetEntity returns the cached JSON payload for the entity, or nil on miss.
func (r *redis) GetEntity(ctx context.Context, resource, id string) ([]byte, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, entityKey(resource, id)).Bytes()
	if err != nil {
		return nil, err
	}
	return val, nil
}

// SetEntity stores the entity JSON payload with a time-to-live.
func (r *redis) SetEntity(ctx context.Context, resource, id string, payload []byte, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, entityKey(resource, id), payload, ttl).Err()
}

// InvalidateEntity drops the cached payload after an update or delete.
func (r *redis) InvalidateEntity(ctx context.Context, resource, id string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, entityKey(resource, id)).Err()
}
