package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/logger"
)

// dummyPassword is hashed once so that logins for unknown usernames spend the
// same time in the hasher as logins with a wrong password.
const dummyPassword = "emsp-dummy-password"

// AuthService implements login, registration, logout and token verification.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenCodec
	revoked ports.RevokedTokenSet
	logger  zerolog.Logger
	now     func() time.Time

	dummyHash string
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenCodec,
	revoked ports.RevokedTokenSet,
	log zerolog.Logger,
) *AuthService {
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		log.Warn().Err(err).Msg("failed to prepare dummy password hash")
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		revoked:   revoked,
		logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
		dummyHash: dummy,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// log returns the service logger tagged with the request id carried by ctx.
func (s *AuthService) log(ctx context.Context) *zerolog.Logger {
	l := logger.For(ctx, s.logger)
	return &l
}

// Login authenticates a user by username and password and issues a token.
// An unknown username yields domain.ErrUserNotFound; callers exposing the
// result to clients should report it as invalid credentials.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(s.dummyHash, in.Password)
			s.log(ctx).Info().Str("username", in.Username).Msg("login failed: unknown user")
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, in.Password) {
		s.log(ctx).Info().Int64("user_id", user.ID).Msg("login failed: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.log(ctx).Info().Int64("user_id", user.ID).Msg("login failed: account disabled")
		return nil, domain.ErrAccountDisabled
	}

	now := s.now()
	if err := s.users.RecordLogin(ctx, user.ID, now, in.ClientIP); err != nil {
		return nil, fmt.Errorf("record last login: %w", err)
	}
	user.LastLoginAt = &now
	if in.ClientIP != "" {
		user.LastLoginIP = in.ClientIP
	}

	token, claims, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log(ctx).Info().Int64("user_id", user.ID).Str("token_id", claims.ID).Msg("login succeeded")

	return &ports.LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		User:      user,
	}, nil
}

// Register creates an active user with role user. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.InvalidInput("username, email and password are required")
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, domain.NewConflict("username")
	}

	exists, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.NewConflict("email")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Nickname:     in.Nickname,
		Role:         domain.RoleUser,
		Status:       domain.UserActive,
	}
	user.Stamp(s.now(), 0)

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.log(ctx).Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Logout revokes token until its natural expiry. Revoking a token that is
// already revoked or already expired succeeds without writing anything.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return err
	}

	if claims.Expired(s.now()) {
		return nil
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil
	}

	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.log(ctx).Info().Int64("user_id", claims.Subject).Str("token_id", claims.ID).Msg("token revoked")
	return nil
}

// VerifyToken resolves a bearer token to its active user.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrInvalidToken
	}

	if claims.Expired(s.now()) {
		return nil, domain.ErrTokenExpired
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	if !user.IsActive() {
		return nil, domain.ErrAccountDisabled
	}
	return user, nil
}
