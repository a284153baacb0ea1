package ports

import (
	"context"
	"time"

	"github.com/emsp/platform/internal/core/domain"
)

// UserRepository is the credential store consumed by the auth service.
// Lookups return domain.ErrUserNotFound when no live user matches.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Save inserts the user when ID is zero (assigning ID) and updates it otherwise.
	// It returns once the write is durable.
	Save(ctx context.Context, user *domain.User) error
	// RecordLogin stamps the last login time and address of a live user. It is
	// a field-level write that ignores the version, so concurrent logins of the
	// same account never conflict.
	RecordLogin(ctx context.Context, id int64, at time.Time, ip string) error
}
