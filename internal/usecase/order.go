package usecase

import (
	"context"

	domainErrors "github.com/ivolkoff/pizzeria/internal/domain/errors"
	"github.com/ivolkoff/pizzeria/internal/domain/model"
	"github.com/ivolkoff/pizzeria/internal/domain/policy"
	"github.com/ivolkoff/pizzeria/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic. Every operation consults
// the access control policy before touching the repository.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place creates a new order owned by identity with status pending.
func (u *OrderUseCase) Place(ctx context.Context, identity *model.User, size model.PizzaSize, quantity int) (*model.Order, error) {
	if !policy.CanPlaceOrder(identity) {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.Create(ctx, identity.ID, size, quantity)
}

// ListAll returns every order in the system. Staff only.
func (u *OrderUseCase) ListAll(ctx context.Context, identity *model.User) ([]model.Order, error) {
	if !policy.CanViewAllOrders(identity) {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.ListAll(ctx)
}

// GetByID looks up an arbitrary order. Staff only.
func (u *OrderUseCase) GetByID(ctx context.Context, identity *model.User, orderID int64) (*model.Order, error) {
	if !policy.CanViewAllOrders(identity) {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.GetByID(ctx, orderID)
}

// ListOwned returns every order owned by identity. An empty result is not an
// error.
func (u *OrderUseCase) ListOwned(ctx context.Context, identity *model.User) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, identity.ID)
}

// GetOwned fetches a single order visible to identity. Absence is reported
// before ownership, so callers can tell a missing order from a foreign one.
func (u *OrderUseCase) GetOwned(ctx context.Context, identity *model.User, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewOrder(identity, order) {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// Update overwrites status and size of an order. Staff only.
func (u *OrderUseCase) Update(ctx context.Context, identity *model.User, orderID int64, status model.OrderStatus, size model.PizzaSize) (*model.Order, error) {
	if !policy.CanMutateOrder(identity, nil) {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.Update(ctx, orderID, status, size)
}

// Delete removes an order. Staff only.
func (u *OrderUseCase) Delete(ctx context.Context, identity *model.User, orderID int64) error {
	if !policy.CanMutateOrder(identity, nil) {
		return domainErrors.ErrForbidden
	}
	return u.orders.Delete(ctx, orderID)
}
