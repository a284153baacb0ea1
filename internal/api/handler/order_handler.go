package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsp/platform/internal/api/metrics"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order"
// @Success      200   {object}  result.Result[domain.Order]
// @Failure      400   {object}  result.Result[any]
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.service.CreateOrder(c.Request().Context(), actor, ports.CreateOrderInput{
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		Remark:          req.Remark,
	})
	if err != nil {
		return err
	}
	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, result.SuccessMessage("order created", o))
}

// Get handles GET /api/orders/:id. Visible to the owner and admins.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  result.Result[domain.Order]
// @Failure      403  {object}  result.Result[any]
// @Failure      404  {object}  result.Result[any]
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	o, err := h.service.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(o))
}

// List handles GET /api/orders: the caller's orders, newest first.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (default 1)"
// @Param        size  query     int  false  "Page size (default 10, max 100)"
// @Success      200   {object}  result.Result[result.PageResult[domain.Order]]
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	page, err := h.service.ListOrders(c.Request().Context(), actor, pageQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Success(page))
}

// Cancel handles POST /api/orders/:id/cancel. Only pending orders can be cancelled.
//
// @Summary      Cancel an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  result.Result[domain.Order]
// @Failure      400  {object}  result.Result[any]
// @Failure      403  {object}  result.Result[any]
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	o, err := h.service.CancelOrder(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.SuccessMessage("order cancelled", o))
}
