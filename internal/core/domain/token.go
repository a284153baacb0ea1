package domain

import "time"

// TokenClaims is the decoded content of a bearer token.
type TokenClaims struct {
	ID        string
	Subject   int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's natural lifetime has ended at now.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
