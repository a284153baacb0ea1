package ports

import (
	"context"
	"time"

	"github.com/emsp/platform/internal/core/domain"
)

// PasswordHasher hashes and verifies passwords with a one-way adaptive algorithm.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify compares in constant time and never errors on mismatch.
	Verify(hash, plain string) bool
}

// TokenCodec issues and decodes signed bearer tokens.
type TokenCodec interface {
	Issue(subject int64) (string, *domain.TokenClaims, error)
	// Decode checks format and signature only. Expiry is left to the caller so
	// expired tokens can still be identified (and revoked idempotently).
	Decode(token string) (*domain.TokenClaims, error)
}

// RevokedTokenSet records tokens invalidated before their natural expiry.
// Implementations must be safe for concurrent use.
type RevokedTokenSet interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
