package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emsp/platform/internal/api/metrics"
	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

type MomentHandler struct {
	service ports.MomentService
}

func NewMomentHandler(service ports.MomentService) *MomentHandler {
	return &MomentHandler{service: service}
}

// List handles GET /api/moments.
//
// @Summary      List moments
// @Tags         moments
// @Produce      json
// @Param        page    query     int  false  "Page number (default 1)"
// @Param        size    query     int  false  "Page size (default 10, max 100)"
// @Param        userId  query     int  false  "Only moments of this author"
// @Success      200     {object}  result.Result[result.PageResult[domain.Moment]]
// @Router       /api/moments [get]
func (h *MomentHandler) List(c echo.Context) error {
	var userID int64
	if raw := c.QueryParam("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return domain.InvalidInput("userId must be a positive integer")
		}
		userID = id
	}

	page, err := h.service.ListMoments(c.Request().Context(), userID, pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(page))
}

// Get handles GET /api/moments/:id.
//
// @Summary      Get a moment
// @Tags         moments
// @Produce      json
// @Param        id   path      int  true  "Moment id"
// @Success      200  {object}  result.Result[domain.Moment]
// @Failure      404  {object}  result.Result[any]
// @Router       /api/moments/{id} [get]
func (h *MomentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	m, err := h.service.GetMoment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(m))
}

// Create handles POST /api/moments.
//
// @Summary      Publish a moment
// @Tags         moments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMomentRequest  true  "Moment"
// @Success      200   {object}  result.Result[domain.Moment]
// @Failure      400   {object}  result.Result[any]
// @Router       /api/moments [post]
func (h *MomentHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createMomentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.service.CreateMoment(c.Request().Context(), actor, ports.CreateMomentInput{
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return err
	}
	metrics.MomentsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, result.SuccessMessage("moment published", m))
}

// Delete handles DELETE /api/moments/:id. Author or admin only.
//
// @Summary      Delete a moment
// @Tags         moments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Moment id"
// @Success      200  {object}  result.Result[any]
// @Failure      403  {object}  result.Result[any]
// @Failure      404  {object}  result.Result[any]
// @Router       /api/moments/{id} [delete]
func (h *MomentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteMoment(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Message("moment deleted"))
}

// Like handles POST /api/moments/:id/like.
//
// @Summary      Like a moment
// @Tags         moments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Moment id"
// @Success      200  {object}  result.Result[likeResponse]
// @Failure      404  {object}  result.Result[any]
// @Router       /api/moments/{id}/like [post]
func (h *MomentHandler) Like(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	n, err := h.service.LikeMoment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(likeResponse{LikeCount: n}))
}

// ListAll handles GET /api/moments/admin. Admin only.
//
// @Summary      List moments for moderation
// @Tags         moments
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query     string  false  "Content contains (case-insensitive)"
// @Param        page     query     int     false  "Page number (default 1)"
// @Param        size     query     int     false  "Page size (default 10, max 100)"
// @Success      200      {object}  result.Result[result.PageResult[domain.Moment]]
// @Failure      403      {object}  result.Result[any]
// @Router       /api/moments/admin [get]
func (h *MomentHandler) ListAll(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	page, err := h.service.ListAllMoments(c.Request().Context(), actor, c.QueryParam("keyword"), pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(page))
}

// SetStatus handles PUT /api/moments/admin/:id/status. Admin only.
//
// @Summary      Hide or show a moment
// @Tags         moments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Moment id"
// @Param        body  body      momentStatusRequest  true  "0 hides, 1 shows"
// @Success      200   {object}  result.Result[domain.Moment]
// @Failure      400   {object}  result.Result[any]
// @Failure      403   {object}  result.Result[any]
// @Failure      404   {object}  result.Result[any]
// @Router       /api/moments/admin/{id}/status [put]
func (h *MomentHandler) SetStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req momentStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.service.SetMomentStatus(c.Request().Context(), actor, id, domain.MomentStatus(*req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.SuccessMessage("moment status updated", m))
}
