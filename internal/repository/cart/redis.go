package cart

import (
	"context"
	"errors"
	"time"

	"gearstore/internal/domain"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "gearstore:cart:"

type redisCmdable interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type redisRepo struct {
	client redisCmdable
	ttl    time.Duration
}

// NewRedis stores carts under gearstore:cart:<session>. Each save refreshes
// the TTL; zero keeps entries forever.
func NewRedis(client redisCmdable, ttl time.Duration) Repository {
	return &redisRepo{client: client, ttl: ttl}
}

func (r *redisRepo) Load(ctx context.Context, sessionID string) ([]byte, error) {
	payload, err := r.client.Get(ctx, redisKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (r *redisRepo) Save(ctx context.Context, sessionID string, payload []byte) error {
	return r.client.Set(ctx, redisKey(sessionID), payload, r.ttl).Err()
}

func (r *redisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func redisKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}
