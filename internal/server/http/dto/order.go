package dto

import "github.com/ivolkoff/pizzeria/internal/domain/model"

// PlaceOrderRequest describes the order placement payload. Quantity defaults
// to zero and size to small when absent.
type PlaceOrderRequest struct {
	Quantity  int    `json:"quantity"`
	PizzaSize string `json:"pizza_size"`
}

// UpdateOrderRequest describes the staff order update payload.
type UpdateOrderRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
	PizzaSize   string `json:"pizza_size" binding:"required"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	PizzaSize   string `json:"pizza_size"`
	Quantity    int    `json:"quantity"`
	OrderStatus string `json:"order_status"`
}

// ToOrderResponse maps a domain order to its wire representation.
func ToOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		PizzaSize:   string(o.Size),
		Quantity:    o.Quantity,
		OrderStatus: string(o.Status),
	}
}
