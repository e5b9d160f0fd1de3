package handlers

import (
	"context"

	"github.com/ivolkoff/pizzeria/internal/domain/model"
	pkgAuth "github.com/ivolkoff/pizzeria/internal/pkg/auth"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.User, error)
	Login(ctx context.Context, username, password string) (pkgAuth.TokenPair, error)
	Refresh(refreshToken string) (string, error)
	IdentityFromToken(ctx context.Context, token string) (*model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, identity *model.User, size model.PizzaSize, quantity int) (*model.Order, error)
	AllOrders(ctx context.Context, identity *model.User) ([]model.Order, error)
	OrderByID(ctx context.Context, identity *model.User, orderID int64) (*model.Order, error)
	UserOrders(ctx context.Context, identity *model.User) ([]model.Order, error)
	UserOrder(ctx context.Context, identity *model.User, orderID int64) (*model.Order, error)
	UpdateOrder(ctx context.Context, identity *model.User, orderID int64, status model.OrderStatus, size model.PizzaSize) (*model.Order, error)
	DeleteOrder(ctx context.Context, identity *model.User, orderID int64) error
}

// PizzeriaFacade aggregates the full set of operations used across handlers.
type PizzeriaFacade interface {
	AuthFacade
	OrderFacade
}
