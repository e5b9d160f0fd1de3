package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ivolkoff/pizzeria/internal/domain/errors"
	"github.com/ivolkoff/pizzeria/internal/domain/model"
	"github.com/ivolkoff/pizzeria/internal/server/http/dto"
)

const (
	msgOrderNotFound = "Order not found"
	msgNotAuthorized = "You are not authorized to view this page"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Ping handles GET /orders/.
func (h *OrderHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "order service is up"})
}

// Place handles POST /orders/order.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PizzaSize == "" {
		req.PizzaSize = string(model.PizzaSizeSmall)
	}

	size, err := model.ParsePizzaSize(req.PizzaSize)
	if err != nil {
		detail(c, http.StatusBadRequest, "invalid pizza size")
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentIdentity(c), size, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(*order))
}

// ListAll handles GET /orders/orders. Staff only.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context(), CurrentIdentity(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetByID handles GET /orders/orders/:id. Staff only.
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		detail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.facade.OrderByID(c.Request.Context(), CurrentIdentity(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// ListOwned handles GET /orders/user/orders. An empty list is a valid result.
func (h *OrderHandler) ListOwned(c *gin.Context) {
	orders, err := h.facade.UserOrders(c.Request.Context(), CurrentIdentity(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOwned handles GET /orders/user/order/:id.
func (h *OrderHandler) GetOwned(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		detail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.facade.UserOrder(c.Request.Context(), CurrentIdentity(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Update handles PATCH /orders/order/update/:id. Staff only.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		detail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := model.ParseOrderStatus(req.OrderStatus)
	if err != nil {
		detail(c, http.StatusBadRequest, "invalid order status")
		return
	}
	size, err := model.ParsePizzaSize(req.PizzaSize)
	if err != nil {
		detail(c, http.StatusBadRequest, "invalid pizza size")
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), CurrentIdentity(c), id, status, size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Delete handles DELETE /orders/order/delete/:id. Staff only.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		detail(c, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentIdentity(c), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrForbidden):
		detail(c, http.StatusForbidden, msgNotAuthorized)
	case errors.Is(err, domainErrors.ErrNotFound):
		detail(c, http.StatusBadRequest, msgOrderNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ToOrderResponse(o))
	}
	return response
}
