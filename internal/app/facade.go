package app

import (
	"context"

	"github.com/ivolkoff/pizzeria/internal/domain/model"
	pkgAuth "github.com/ivolkoff/pizzeria/internal/pkg/auth"
	"github.com/ivolkoff/pizzeria/internal/usecase"
)

// PizzeriaFacade aggregates account and order services behind the surface the
// HTTP layer talks to.
type PizzeriaFacade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
}

func NewPizzeriaFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase) *PizzeriaFacade {
	return &PizzeriaFacade{auth: auth, orders: orders}
}

func (f *PizzeriaFacade) SignUp(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.User, error) {
	return f.auth.SignUp(ctx, username, email, password, isStaff, isActive)
}

func (f *PizzeriaFacade) Login(ctx context.Context, username, password string) (pkgAuth.TokenPair, error) {
	return f.auth.Login(ctx, username, password)
}

func (f *PizzeriaFacade) Refresh(refreshToken string) (string, error) {
	return f.auth.Refresh(refreshToken)
}

func (f *PizzeriaFacade) IdentityFromToken(ctx context.Context, token string) (*model.User, error) {
	return f.auth.IdentityFromAccessToken(ctx, token)
}

func (f *PizzeriaFacade) PlaceOrder(ctx context.Context, identity *model.User, size model.PizzaSize, quantity int) (*model.Order, error) {
	return f.orders.Place(ctx, identity, size, quantity)
}

func (f *PizzeriaFacade) AllOrders(ctx context.Context, identity *model.User) ([]model.Order, error) {
	return f.orders.ListAll(ctx, identity)
}

func (f *PizzeriaFacade) OrderByID(ctx context.Context, identity *model.User, orderID int64) (*model.Order, error) {
	return f.orders.GetByID(ctx, identity, orderID)
}

func (f *PizzeriaFacade) UserOrders(ctx context.Context, identity *model.User) ([]model.Order, error) {
	return f.orders.ListOwned(ctx, identity)
}

func (f *PizzeriaFacade) UserOrder(ctx context.Context, identity *model.User, orderID int64) (*model.Order, error) {
	return f.orders.GetOwned(ctx, identity, orderID)
}

func (f *PizzeriaFacade) UpdateOrder(ctx context.Context, identity *model.User, orderID int64, status model.OrderStatus, size model.PizzaSize) (*model.Order, error) {
	return f.orders.Update(ctx, identity, orderID, status, size)
}

func (f *PizzeriaFacade) DeleteOrder(ctx context.Context, identity *model.User, orderID int64) error {
	return f.orders.Delete(ctx, identity, orderID)
}
