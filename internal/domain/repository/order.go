package repository

import (
	"context"

	"github.com/ivolkoff/pizzeria/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, userID int64, size model.PizzaSize, quantity int) (*model.Order, error)
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	Update(ctx context.Context, orderID int64, status model.OrderStatus, size model.PizzaSize) (*model.Order, error)
	Delete(ctx context.Context, orderID int64) error
}
