package test

import (
	"context"

	domainErrors "github.com/ivolkoff/pizzeria/internal/domain/errors"
	"github.com/ivolkoff/pizzeria/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByUsername map[string]*model.User
	ByEmail    map[string]*model.User
	ByID       map[int64]*model.User
	Next       int64
	Err        error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByUsername: make(map[string]*model.User),
		ByEmail:    make(map[string]*model.User),
		ByID:       make(map[int64]*model.User),
		Next:       1,
	}
}

// Create registers a user unless username or email is taken. Email is checked
// first, mirroring the storage constraint ordering.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string, isStaff, isActive bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrEmailTaken
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrUsernameTaken
	}
	user := &model.User{
		ID:           s.Next,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsStaff:      isStaff,
		IsActive:     isActive,
	}
	s.Next++
	s.ByUsername[username] = user
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches a user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByUsername[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub stores orders in-memory and lets tests override
// individual operations.
type OrderRepositoryStub struct {
	CreateFn     func(context.Context, int64, model.PizzaSize, int) (*model.Order, error)
	GetByIDFn    func(context.Context, int64) (*model.Order, error)
	ListAllFn    func(context.Context) ([]model.Order, error)
	ListByUserFn func(context.Context, int64) ([]model.Order, error)
	UpdateFn     func(context.Context, int64, model.OrderStatus, model.PizzaSize) (*model.Order, error)
	DeleteFn     func(context.Context, int64) error

	Orders map[int64]*model.Order
	Next   int64
}

// NewOrderRepositoryStub constructs stub repository with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Create stores a pending order owned by userID.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, size model.PizzaSize, quantity int) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, size, quantity)
	}
	order := &model.Order{
		ID:       s.Next,
		UserID:   userID,
		Size:     size,
		Quantity: quantity,
		Status:   model.OrderStatusPending,
	}
	s.Next++
	s.Orders[order.ID] = order
	return order, nil
}

// GetByID fetches an order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	if order, ok := s.Orders[orderID]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	var result []model.Order
	for id := int64(1); id < s.Next; id++ {
		if order, ok := s.Orders[id]; ok {
			result = append(result, *order)
		}
	}
	return result, nil
}

// ListByUser returns orders owned by userID.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for id := int64(1); id < s.Next; id++ {
		if order, ok := s.Orders[id]; ok && order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

// Update overwrites status and size of a stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, orderID int64, status model.OrderStatus, size model.PizzaSize) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, status, size)
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order.Status = status
	order.Size = size
	return order, nil
}

// Delete removes a stored order.
func (s *OrderRepositoryStub) Delete(ctx context.Context, orderID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	if _, ok := s.Orders[orderID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, orderID)
	return nil
}
