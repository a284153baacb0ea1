package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsp/platform/internal/core/domain"
)

func newTestCodec(t *testing.T, now time.Time) *JWTCodec {
	t.Helper()
	c, err := NewJWTCodec("secret", "emsp-auth", time.Hour)
	require.NoError(t, err)
	return c.WithClock(func() time.Time { return now })
}

func TestJWTCodec_IssueDecodeRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := newTestCodec(t, now)

	token, issued, err := c.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.EqualValues(t, 42, issued.Subject)
	assert.True(t, issued.ExpiresAt.Equal(now.Add(time.Hour)))

	decoded, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, decoded.ID)
	assert.EqualValues(t, 42, decoded.Subject)
	assert.True(t, decoded.ExpiresAt.Equal(issued.ExpiresAt))
	assert.True(t, decoded.IssuedAt.Equal(now))
}

func TestJWTCodec_UniqueTokenIDs(t *testing.T) {
	c := newTestCodec(t, time.Now())

	_, a, err := c.Issue(1)
	require.NoError(t, err)
	_, b, err := c.Issue(1)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestJWTCodec_ExpiredTokenStillDecodes(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	token, _, err := newTestCodec(t, past).Issue(7)
	require.NoError(t, err)

	decoded, err := newTestCodec(t, time.Now()).Decode(token)
	require.NoError(t, err)
	assert.True(t, decoded.Expired(time.Now()))
}

func TestJWTCodec_RejectsTampering(t *testing.T) {
	c := newTestCodec(t, time.Now())
	token, _, err := c.Issue(1)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = c.Decode(tampered)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTCodec_RejectsForeignSecret(t *testing.T) {
	other, err := NewJWTCodec("other-secret", "emsp-auth", time.Hour)
	require.NoError(t, err)
	token, _, err := other.Issue(1)
	require.NoError(t, err)

	_, err = newTestCodec(t, time.Now()).Decode(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTCodec_RejectsWrongIssuer(t *testing.T) {
	other, err := NewJWTCodec("secret", "someone-else", time.Hour)
	require.NoError(t, err)
	token, _, err := other.Issue(1)
	require.NoError(t, err)

	_, err = newTestCodec(t, time.Now()).Decode(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTCodec_RejectsMalformedClaims(t *testing.T) {
	c := newTestCodec(t, time.Now())
	sign := func(claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := map[string]string{
		"missing jti":     sign(jwt.RegisteredClaims{Subject: "1", Issuer: "emsp-auth", ExpiresAt: exp}),
		"missing exp":     sign(jwt.RegisteredClaims{ID: "x", Subject: "1", Issuer: "emsp-auth"}),
		"non-numeric sub": sign(jwt.RegisteredClaims{ID: "x", Subject: "alice", Issuer: "emsp-auth", ExpiresAt: exp}),
		"garbage":         "not-a-token",
		"empty":           "",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.Decode(token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestJWTCodec_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{ID: "x", Subject: "1", Issuer: "emsp-auth", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestCodec(t, time.Now()).Decode(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestNewJWTCodec_Defaults(t *testing.T) {
	_, err := NewJWTCodec("", "", time.Hour)
	assert.Error(t, err)

	c, err := NewJWTCodec("s", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, c.TTL())
}
