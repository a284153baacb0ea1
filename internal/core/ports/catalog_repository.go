package ports

import (
	"context"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/pkg/result"
)

// ProductFilter carries the query parameters for listing products.
type ProductFilter struct {
	Keyword string // optional: case-insensitive match on name or description
	Page    result.Page
}

// ProductRepository defines persistence operations for products.
// Every method ignores logically deleted records.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
	// Update replaces the mutable fields when p.Version still matches the stored
	// version, and bumps the version on success.
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id, actor int64) error
}

// OrderFilter carries the query parameters for listing orders.
type OrderFilter struct {
	UserID int64 // 0 = every user (admin)
	Page   result.Page
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus, actor int64) error
}

// MomentFilter carries the query parameters for listing moments.
type MomentFilter struct {
	UserID        int64  // optional author filter
	Keyword       string // optional case-insensitive content match
	IncludeHidden bool   // moderation views also list hidden moments
	Page          result.Page
}

type MomentRepository interface {
	Create(ctx context.Context, m *domain.Moment) error
	FindByID(ctx context.Context, id int64) (*domain.Moment, error)
	List(ctx context.Context, filter MomentFilter) ([]*domain.Moment, int64, error)
	Delete(ctx context.Context, id, actor int64) error
	IncrementLikes(ctx context.Context, id int64) (int, error)
	// SetStatus changes the visibility of a live moment and bumps its version.
	SetStatus(ctx context.Context, id int64, status domain.MomentStatus, actor int64) error
}
