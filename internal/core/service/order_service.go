package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// CreateOrder places a pending order owned by actor.
func (s *OrderService) CreateOrder(ctx context.Context, actor ports.Actor, in ports.CreateOrderInput) (*domain.Order, error) {
	if in.TotalAmount < 0 {
		return nil, domain.InvalidInput("total amount must not be negative")
	}

	now := s.now()
	o := &domain.Order{
		OrderNo:         generateOrderNo(now),
		UserID:          actor.UserID,
		TotalAmount:     in.TotalAmount,
		Status:          domain.OrderPending,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		Remark:          in.Remark,
	}
	o.Stamp(now, actor.UserID)

	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("order_no", o.OrderNo).Int64("user_id", actor.UserID).Msg("order created")
	return o, nil
}

// GetOrder returns an order visible to actor: its owner or an admin.
func (s *OrderService) GetOrder(ctx context.Context, actor ports.Actor, id int64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && o.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// ListOrders returns actor's own orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, actor ports.Actor, page result.Page) (result.PageResult[*domain.Order], error) {
	items, total, err := s.repo.List(ctx, ports.OrderFilter{UserID: actor.UserID, Page: page})
	if err != nil {
		return result.EmptyPage[*domain.Order](), err
	}
	return result.NewPage(items, total, page.Number, page.Size), nil
}

// CancelOrder moves a pending order to cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, actor ports.Actor, id int64) (*domain.Order, error) {
	o, err := s.GetOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !o.CanCancel() {
		return nil, domain.InvalidInput("only pending orders can be cancelled")
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, domain.OrderPending, domain.OrderCancelled, actor.UserID); err != nil {
		return nil, err
	}

	o.Status = domain.OrderCancelled
	o.Touch(s.now(), actor.UserID)
	o.Version++

	s.logger.Info().Str("order_no", o.OrderNo).Int64("user_id", actor.UserID).Msg("order cancelled")
	return o, nil
}

// generateOrderNo returns an order number in the format ORD-YYYYMMDD-XXXXXXXX.
func generateOrderNo(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("ORD-%s-%08X", now.Format("20060102"), now.UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("ORD-%s-%08X", now.Format("20060102"), b)
}
