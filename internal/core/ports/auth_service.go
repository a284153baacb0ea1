package ports

import (
	"context"
	"time"

	"github.com/emsp/platform/internal/core/domain"
)

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
	ClientIP string // optional, recorded as last login ip
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    string
	Nickname string
}

type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Logout(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}

// ProfileInput changes the caller's own account. Nil fields are left as they are.
type ProfileInput struct {
	Email    *string
	Phone    *string
	Nickname *string
	Avatar   *string
	// NewPassword is applied only when CurrentPassword matches the stored hash.
	CurrentPassword string
	NewPassword     string
}

// Empty reports whether the input changes nothing.
func (in ProfileInput) Empty() bool {
	return in.Email == nil && in.Phone == nil && in.Nickname == nil && in.Avatar == nil && in.NewPassword == ""
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (*domain.User, error)
}
