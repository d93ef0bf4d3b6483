package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/shopsvc/domain"
)

// ResetTokenStoreImpl implements domain.ResetTokenStore using Redis.
// Reset tokens are stateless JWTs; this store adds the single-use guarantee
// by marking each jti consumed for the token's remaining lifetime.
type ResetTokenStoreImpl struct {
	client *redis.Client
	prefix string
}

// NewResetTokenStore creates a new reset token store
func NewResetTokenStore(client *redis.Client) domain.ResetTokenStore {
	return &ResetTokenStoreImpl{
		client: client,
		prefix: "reset:consumed:",
	}
}

// Consume implements domain.ResetTokenStore. SetNX makes the first caller the
// only winner; the key expires with the token so the store stays bounded.
func (s *ResetTokenStoreImpl) Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.client.SetNX(ctx, s.prefix+tokenID, 1, ttl).Result()
}
