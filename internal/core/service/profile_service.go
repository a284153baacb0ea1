package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/logger"
)

// ProfileService lets an authenticated user read and edit their own account.
type ProfileService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
	now    func() time.Time
}

func NewProfileService(users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *ProfileService {
	return &ProfileService{
		users:  users,
		hasher: hasher,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of in. The email stays unique
// across live users and a password change needs the current password.
// The write is guarded by the version read here, so a concurrent edit of the
// same account fails with a version conflict instead of being overwritten.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, in ports.ProfileInput) (*domain.User, error) {
	if in.Empty() {
		return nil, domain.InvalidInput("no fields to update")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return nil, domain.InvalidInput("email must not be empty")
		}
		if !strings.EqualFold(email, user.Email) {
			exists, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if exists {
				return nil, domain.NewConflict("email")
			}
		}
		user.Email = email
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Nickname != nil {
		user.Nickname = strings.TrimSpace(*in.Nickname)
	}
	if in.Avatar != nil {
		user.Avatar = strings.TrimSpace(*in.Avatar)
	}

	passwordChanged := false
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, domain.InvalidInput("current password is required")
		}
		if !s.hasher.Verify(user.PasswordHash, in.CurrentPassword) {
			return nil, domain.InvalidInput("current password is incorrect")
		}
		hash, err := s.hasher.Hash(in.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
		passwordChanged = true
	}

	user.Touch(s.now(), userID)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	l := logger.For(ctx, s.logger)
	l.Info().Int64("user_id", userID).Bool("password_changed", passwordChanged).Msg("profile updated")
	return user, nil
}
