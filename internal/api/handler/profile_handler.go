package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /api/auth/me and GET /api/users/profile.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  result.Result[domain.User]
// @Failure      401  {object}  result.Result[any]
// @Router       /api/auth/me [get]
// @Router       /api/users/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	user, err := h.service.GetProfile(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(user))
}

// Update handles PUT /api/users/profile.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Changed fields"
// @Success      200   {object}  result.Result[domain.User]
// @Failure      400   {object}  result.Result[any]
// @Failure      409   {object}  result.Result[any]
// @Router       /api/users/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), actor.UserID, ports.ProfileInput{
		Email:           req.Email,
		Phone:           req.Phone,
		Nickname:        req.Nickname,
		Avatar:          req.Avatar,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.SuccessMessage("profile updated", user))
}
