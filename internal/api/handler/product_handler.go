package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsp/platform/internal/api/metrics"
	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page     query     int     false  "Page number (default 1)"
// @Param        size     query     int     false  "Page size (default 10, max 100)"
// @Param        keyword  query     string  false  "Match on name or description"
// @Success      200      {object}  result.Result[result.PageResult[domain.Product]]
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.service.ListProducts(c.Request().Context(), c.QueryParam("keyword"), pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(page))
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  result.Result[domain.Product]
// @Failure      404  {object}  result.Result[any]
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := h.service.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(p))
}

// Create handles POST /api/products. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  result.Result[domain.Product]
// @Failure      400   {object}  result.Result[any]
// @Failure      403   {object}  result.Result[any]
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.CreateProduct(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return err
	}
	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, result.SuccessMessage("product created", p))
}

// Update handles PUT /api/products/:id. Admin only; the body must carry the
// version the client last read.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  result.Result[domain.Product]
// @Failure      404   {object}  result.Result[any]
// @Failure      409   {object}  result.Result[any]
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.UpdateProduct(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.SuccessMessage("product updated", p))
}

// Delete handles DELETE /api/products/:id. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  result.Result[any]
// @Failure      404  {object}  result.Result[any]
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Message("product deleted"))
}

func (r productRequest) toInput() ports.ProductInput {
	status := domain.ProductOnSale
	if r.Status != nil {
		status = domain.ProductStatus(*r.Status)
	}
	return ports.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		CategoryID:  r.CategoryID,
		ImageURL:    r.ImageURL,
		Status:      status,
		Version:     r.Version,
	}
}
