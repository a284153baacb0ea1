package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// ListProducts returns one page of products. keyword, when set, matches the
// name or description case-insensitively.
func (s *ProductService) ListProducts(ctx context.Context, keyword string, page result.Page) (result.PageResult[*domain.Product], error) {
	items, total, err := s.repo.List(ctx, ports.ProductFilter{
		Keyword: strings.TrimSpace(keyword),
		Page:    page,
	})
	if err != nil {
		return result.EmptyPage[*domain.Product](), err
	}
	return result.NewPage(items, total, page.Number, page.Size), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, actor ports.Actor, in ports.ProductInput) (*domain.Product, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	p := &domain.Product{}
	applyProduct(p, in)
	p.Stamp(s.now(), actor.UserID)

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Int64("product_id", p.ID).Int64("user_id", actor.UserID).Msg("product created")
	return p, nil
}

// UpdateProduct replaces the writable fields of a product. in.Version must be
// the version the caller read; a stale version yields a version conflict.
func (s *ProductService) UpdateProduct(ctx context.Context, actor ports.Actor, id int64, in ports.ProductInput) (*domain.Product, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	if in.Version <= 0 {
		return nil, domain.InvalidInput("version is required")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Version != in.Version {
		return nil, domain.NewConflict("version")
	}

	applyProduct(p, in)
	p.Touch(s.now(), actor.UserID)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", p.ID).Int("version", p.Version).Msg("product updated")
	return p, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, actor ports.Actor, id int64) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id, actor.UserID); err != nil {
		return err
	}
	s.logger.Info().Int64("product_id", id).Int64("user_id", actor.UserID).Msg("product deleted")
	return nil
}

func validateProduct(in ports.ProductInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return domain.InvalidInput("name is required")
	case in.Price < 0:
		return domain.InvalidInput("price must not be negative")
	case in.Stock < 0:
		return domain.InvalidInput("stock must not be negative")
	case in.Status != domain.ProductOffSale && in.Status != domain.ProductOnSale:
		return domain.InvalidInput("unknown product status")
	}
	return nil
}

func applyProduct(p *domain.Product, in ports.ProductInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.CategoryID = in.CategoryID
	p.ImageURL = in.ImageURL
	p.Status = in.Status
}
