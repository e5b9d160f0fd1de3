package test

import (
	"context"

	"github.com/ivolkoff/pizzeria/internal/domain/model"
	pkgAuth "github.com/ivolkoff/pizzeria/internal/pkg/auth"
)

// AuthFacadeStub lets handler tests script account operations.
type AuthFacadeStub struct {
	SignUpFn            func(context.Context, string, string, string, bool, bool) (*model.User, error)
	LoginFn             func(context.Context, string, string) (pkgAuth.TokenPair, error)
	RefreshFn           func(string) (string, error)
	IdentityFromTokenFn func(context.Context, string) (*model.User, error)
}

func (s AuthFacadeStub) SignUp(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.User, error) {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, username, email, password, isStaff, isActive)
	}
	return &model.User{ID: 1, Username: username, Email: email, IsStaff: isStaff, IsActive: isActive}, nil
}

func (s AuthFacadeStub) Login(ctx context.Context, username, password string) (pkgAuth.TokenPair, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return pkgAuth.TokenPair{AccessToken: "access:" + username, RefreshToken: "refresh:" + username}, nil
}

func (s AuthFacadeStub) Refresh(refreshToken string) (string, error) {
	if s.RefreshFn != nil {
		return s.RefreshFn(refreshToken)
	}
	return "access-token", nil
}

func (s AuthFacadeStub) IdentityFromToken(ctx context.Context, token string) (*model.User, error) {
	if s.IdentityFromTokenFn != nil {
		return s.IdentityFromTokenFn(ctx, token)
	}
	return &model.User{ID: 1, Username: "user", IsActive: true}, nil
}

// OrderFacadeStub lets handler tests script order operations.
type OrderFacadeStub struct {
	PlaceOrderFn  func(context.Context, *model.User, model.PizzaSize, int) (*model.Order, error)
	AllOrdersFn   func(context.Context, *model.User) ([]model.Order, error)
	OrderByIDFn   func(context.Context, *model.User, int64) (*model.Order, error)
	UserOrdersFn  func(context.Context, *model.User) ([]model.Order, error)
	UserOrderFn   func(context.Context, *model.User, int64) (*model.Order, error)
	UpdateOrderFn func(context.Context, *model.User, int64, model.OrderStatus, model.PizzaSize) (*model.Order, error)
	DeleteOrderFn func(context.Context, *model.User, int64) error
}

func (s OrderFacadeStub) PlaceOrder(ctx context.Context, identity *model.User, size model.PizzaSize, quantity int) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, identity, size, quantity)
	}
	return &model.Order{ID: 1, UserID: identity.ID, Size: size, Quantity: quantity, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context, identity *model.User) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, identity)
	}
	return nil, nil
}

func (s OrderFacadeStub) OrderByID(ctx context.Context, identity *model.User, orderID int64) (*model.Order, error) {
	if s.OrderByIDFn != nil {
		return s.OrderByIDFn(ctx, identity, orderID)
	}
	return &model.Order{ID: orderID, UserID: identity.ID, Size: model.PizzaSizeSmall, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) UserOrders(ctx context.Context, identity *model.User) ([]model.Order, error) {
	if s.UserOrdersFn != nil {
		return s.UserOrdersFn(ctx, identity)
	}
	return nil, nil
}

func (s OrderFacadeStub) UserOrder(ctx context.Context, identity *model.User, orderID int64) (*model.Order, error) {
	if s.UserOrderFn != nil {
		return s.UserOrderFn(ctx, identity, orderID)
	}
	return &model.Order{ID: orderID, UserID: identity.ID, Size: model.PizzaSizeSmall, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) UpdateOrder(ctx context.Context, identity *model.User, orderID int64, status model.OrderStatus, size model.PizzaSize) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, identity, orderID, status, size)
	}
	return &model.Order{ID: orderID, UserID: identity.ID, Size: size, Status: status}, nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, identity *model.User, orderID int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, identity, orderID)
	}
	return nil
}

// PizzeriaFacadeStub aggregates the stubs for router level tests.
type PizzeriaFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
}
