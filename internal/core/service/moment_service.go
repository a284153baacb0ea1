package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/logger"
	"github.com/emsp/platform/pkg/result"
)

const (
	maxMomentContent = 1000
	maxMomentImages  = 9
)

type MomentService struct {
	repo   ports.MomentRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewMomentService(repo ports.MomentRepository, logger zerolog.Logger) *MomentService {
	return &MomentService{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// ListMoments returns visible moments, newest first. A non-zero userID limits
// the page to that author.
func (s *MomentService) ListMoments(ctx context.Context, userID int64, page result.Page) (result.PageResult[*domain.Moment], error) {
	items, total, err := s.repo.List(ctx, ports.MomentFilter{UserID: userID, Page: page})
	if err != nil {
		return result.EmptyPage[*domain.Moment](), err
	}
	return result.NewPage(items, total, page.Number, page.Size), nil
}

// GetMoment returns a visible moment. Hidden moments are reported as not found.
func (s *MomentService) GetMoment(ctx context.Context, id int64) (*domain.Moment, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != domain.MomentVisible {
		return nil, domain.ErrMomentNotFound
	}
	return m, nil
}

func (s *MomentService) CreateMoment(ctx context.Context, actor ports.Actor, in ports.CreateMomentInput) (*domain.Moment, error) {
	content := strings.TrimSpace(in.Content)
	switch {
	case content == "":
		return nil, domain.InvalidInput("content is required")
	case utf8.RuneCountInString(content) > maxMomentContent:
		return nil, domain.InvalidInput("content must not exceed 1000 characters")
	case len(in.ImageURLs) > maxMomentImages:
		return nil, domain.InvalidInput("at most 9 images are allowed")
	}

	m := &domain.Moment{
		UserID:    actor.UserID,
		Content:   content,
		ImageURLs: in.ImageURLs,
		Status:    domain.MomentVisible,
	}
	m.Stamp(s.now(), actor.UserID)

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error().Err(err).Msg("failed to create moment")
		return nil, err
	}

	s.logger.Info().Int64("moment_id", m.ID).Int64("user_id", actor.UserID).Msg("moment created")
	return m, nil
}

// DeleteMoment removes a moment. Only its author or an admin may do so.
func (s *MomentService) DeleteMoment(ctx context.Context, actor ports.Actor, id int64) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && m.UserID != actor.UserID {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id, actor.UserID); err != nil {
		return err
	}
	s.logger.Info().Int64("moment_id", id).Int64("user_id", actor.UserID).Msg("moment deleted")
	return nil
}

// LikeMoment increments the like counter and returns the new count.
func (s *MomentService) LikeMoment(ctx context.Context, id int64) (int, error) {
	return s.repo.IncrementLikes(ctx, id)
}

// ListAllMoments pages through every live moment, hidden ones included.
func (s *MomentService) ListAllMoments(ctx context.Context, actor ports.Actor, keyword string, page result.Page) (result.PageResult[*domain.Moment], error) {
	if !actor.IsAdmin() {
		return result.EmptyPage[*domain.Moment](), domain.ErrForbidden
	}
	items, total, err := s.repo.List(ctx, ports.MomentFilter{
		Keyword:       strings.TrimSpace(keyword),
		IncludeHidden: true,
		Page:          page,
	})
	if err != nil {
		return result.EmptyPage[*domain.Moment](), err
	}
	return result.NewPage(items, total, page.Number, page.Size), nil
}

// SetMomentStatus hides or shows a moment. Admin only.
func (s *MomentService) SetMomentStatus(ctx context.Context, actor ports.Actor, id int64, status domain.MomentStatus) (*domain.Moment, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if status != domain.MomentHidden && status != domain.MomentVisible {
		return nil, domain.InvalidInput("status must be 0 or 1")
	}
	if err := s.repo.SetStatus(ctx, id, status, actor.UserID); err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l := logger.For(ctx, s.logger)
	l.Info().Int64("moment_id", id).Int64("user_id", actor.UserID).Int("status", int(status)).Msg("moment status changed")
	return m, nil
}
