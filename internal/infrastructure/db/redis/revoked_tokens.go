package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// RevokedTokens is a RevokedTokenSet shared by every instance through Redis.
// Key format: revoked:<token_id>. Each key expires together with the token it
// revokes, so Redis expiry is the purge policy.
type RevokedTokens struct {
	client *redis.Client
	now    func() time.Time
}

// NewRevokedTokens wraps the given Redis client.
func NewRevokedTokens(client *redis.Client) *RevokedTokens {
	return &RevokedTokens{client: client, now: time.Now}
}

// Revoke stores tokenID until expiresAt. A token that has already expired
// needs no entry and is accepted as a no-op.
func (r *RevokedTokens) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been revoked and not yet lapsed.
func (r *RevokedTokens) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *RevokedTokens) key(tokenID string) string {
	return revokedKeyPrefix + tokenID
}
