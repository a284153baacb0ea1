package ports

import (
	"context"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/pkg/result"
)

// Actor identifies the authenticated caller of a use case.
type Actor struct {
	UserID int64
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == domain.RoleAdmin }

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  int64
	ImageURL    string
	Status      domain.ProductStatus
	Version     int // required on update for optimistic locking
}

type ProductService interface {
	ListProducts(ctx context.Context, keyword string, page result.Page) (result.PageResult[*domain.Product], error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, actor Actor, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, actor Actor, id int64, in ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, actor Actor, id int64) error
}

// CreateOrderInput carries the data of a new order.
type CreateOrderInput struct {
	TotalAmount     float64
	PaymentMethod   string
	DeliveryAddress string
	Remark          string
}

type OrderService interface {
	CreateOrder(ctx context.Context, actor Actor, in CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, actor Actor, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, actor Actor, page result.Page) (result.PageResult[*domain.Order], error)
	CancelOrder(ctx context.Context, actor Actor, id int64) (*domain.Order, error)
}

// CreateMomentInput carries the content of a new moment.
type CreateMomentInput struct {
	Content   string
	ImageURLs []string
}

type MomentService interface {
	ListMoments(ctx context.Context, userID int64, page result.Page) (result.PageResult[*domain.Moment], error)
	GetMoment(ctx context.Context, id int64) (*domain.Moment, error)
	CreateMoment(ctx context.Context, actor Actor, in CreateMomentInput) (*domain.Moment, error)
	DeleteMoment(ctx context.Context, actor Actor, id int64) error
	LikeMoment(ctx context.Context, id int64) (int, error)
	// ListAllMoments and SetMomentStatus are the admin moderation views.
	ListAllMoments(ctx context.Context, actor Actor, keyword string, page result.Page) (result.PageResult[*domain.Moment], error)
	SetMomentStatus(ctx context.Context, actor Actor, id int64, status domain.MomentStatus) (*domain.Moment, error)
}
