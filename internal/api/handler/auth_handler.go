package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsp/platform/internal/api/metrics"
	"github.com/emsp/platform/internal/api/middleware"
	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  result.Result[loginResponse]
// @Failure      400   {object}  result.Result[any]
// @Failure      401   {object}  result.Result[any]
// @Failure      403   {object}  result.Result[any]
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Password: req.Password,
		ClientIP: c.RealIP(),
	})
	// Unknown usernames and wrong passwords look the same to clients.
	if errors.Is(err, domain.ErrNotFound) {
		err = domain.ErrInvalidCredentials
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.SuccessMessage("login successful", loginResponse{
		Token: res.Token,
		User:  res.User,
	}))
}

// Register creates a new user account. It does not log the user in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  result.Result[any]
// @Failure      400   {object}  result.Result[any]
// @Failure      409   {object}  result.Result[any]
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Nickname: req.Nickname,
	})
	metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Message("registered successfully"))
}

// Logout revokes the presented bearer token. Repeating it is harmless.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  result.Result[any]
// @Failure      401  {object}  result.Result[any]
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return middleware.ErrMissingBearer
	}

	err := h.authService.Logout(c.Request().Context(), token)
	metrics.AuthAttemptsTotal.WithLabelValues("logout", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Message("logged out"))
}

// Verify returns the user owning the presented bearer token.
//
// @Summary      Verify a token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  result.Result[domain.User]
// @Failure      401  {object}  result.Result[any]
// @Failure      403  {object}  result.Result[any]
// @Failure      404  {object}  result.Result[any]
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return middleware.ErrMissingBearer
	}

	user, err := h.authService.VerifyToken(c.Request().Context(), token)
	metrics.AuthAttemptsTotal.WithLabelValues("verify", metrics.Outcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result.Success(user))
}
