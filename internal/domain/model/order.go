package model

import (
	"time"

	domainErrors "github.com/ivolkoff/pizzeria/internal/domain/errors"
)

// OrderStatus describes order processing lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PizzaSize enumerates the sizes a pizza can be ordered in.
type PizzaSize string

const (
	PizzaSizeSmall      PizzaSize = "small"
	PizzaSizeMedium     PizzaSize = "medium"
	PizzaSizeLarge      PizzaSize = "large"
	PizzaSizeExtraLarge PizzaSize = "extra_large"
)

// ParseOrderStatus validates a raw status value. Unknown values are rejected
// rather than stored.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return OrderStatus(raw), nil
	}
	return "", domainErrors.ErrInvalidOrderStatus
}

// ParsePizzaSize validates a raw size value.
func ParsePizzaSize(raw string) (PizzaSize, error) {
	switch PizzaSize(raw) {
	case PizzaSizeSmall, PizzaSizeMedium, PizzaSizeLarge, PizzaSizeExtraLarge:
		return PizzaSize(raw), nil
	}
	return "", domainErrors.ErrInvalidPizzaSize
}

// Order describes a pizza order placed by a user. The owner never changes
// after creation.
type Order struct {
	ID        int64
	UserID    int64
	Size      PizzaSize
	Quantity  int
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
