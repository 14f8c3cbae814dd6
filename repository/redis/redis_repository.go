package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "token:"

// ErrCacheMiss is returned when a key is absent or the cache is disabled.
var ErrCacheMiss = errors.New("cache miss")

// Repository caches token hash -> pembeli id bindings in Redis.
type Repository interface {
	SetTokenOwner(ctx context.Context, tokenHash string, pembeliID uint64, ttl time.Duration) error
	GetTokenOwner(ctx context.Context, tokenHash string) (uint64, error)
	DeleteTokenOwner(ctx context.Context, tokenHashes ...string) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation.
// A nil client disables caching: every read misses and writes are dropped.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func TokenKey(tokenHash string) string {
	return tokenKeyPrefix + tokenHash
}

// SetTokenOwner stores the owner of a token hash with time-to-live
func (r *redis) SetTokenOwner(ctx context.Context, tokenHash string, pembeliID uint64, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, TokenKey(tokenHash), pembeliID, ttl).Err()
}

// GetTokenOwner retrieves the owner of a token hash
func (r *redis) GetTokenOwner(ctx context.Context, tokenHash string) (uint64, error) {
	if r.client == nil {
		return 0, ErrCacheMiss
	}
	val, err := r.client.Get(ctx, TokenKey(tokenHash)).Uint64()
	if errors.Is(err, goredis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteTokenOwner evicts token hashes from the cache
func (r *redis) DeleteTokenOwner(ctx context.Context, tokenHashes ...string) error {
	if r.client == nil || len(tokenHashes) == 0 {
		return nil
	}
	keys := make([]string, len(tokenHashes))
	for i, h := range tokenHashes {
		keys[i] = TokenKey(h)
	}
	return r.client.Del(ctx, keys...).Err()
}
