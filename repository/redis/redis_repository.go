package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// Repository stores merchant sessions keyed by token id
type Repository interface {
	SetSession(ctx context.Context, sessionID, merchantID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct {
	client *goredis.Client
}

func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func (r *redis) SetSession(ctx context.Context, sessionID, merchantID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionPrefix+sessionID, merchantID, ttl).Err()
}

// GetSession returns goredis.Nil when the session expired or never existed
func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	return r.client.Get(ctx, sessionPrefix+sessionID).Result()
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}
