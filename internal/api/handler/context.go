package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emsp/platform/internal/api/middleware"
	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

// ctxActor extracts the caller injected by the Auth middleware. A missing
// user id means the route was not protected, which is reported as 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	id, _ := c.Get(middleware.ContextUserID).(int64)
	if id == 0 {
		return ports.Actor{}, middleware.ErrMissingBearer
	}
	role, _ := c.Get(middleware.ContextRole).(string)
	return ports.Actor{UserID: id, Role: role}, nil
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.InvalidInput("invalid payload")
	}
	return c.Validate(req)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidInput("id must be a positive integer")
	}
	return id, nil
}

// pageQuery reads the page and size query parameters, applying defaults.
func pageQuery(c echo.Context) result.Page {
	number, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	size, _ := strconv.ParseInt(c.QueryParam("size"), 10, 64)
	return result.NewPageRequest(number, size)
}
