package app

import (
	"context"
	"testing"

	domainErrors "github.com/ivolkoff/pizzeria/internal/domain/errors"
	"github.com/ivolkoff/pizzeria/internal/domain/model"
	testhelpers "github.com/ivolkoff/pizzeria/internal/test"
	"github.com/ivolkoff/pizzeria/internal/usecase"
)

func newFacade() (*PizzeriaFacade, *testhelpers.UserRepositoryStub, *testhelpers.OrderRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	orderRepo := testhelpers.NewOrderRepositoryStub()
	orderUC := usecase.NewOrderUseCase(orderRepo)

	return NewPizzeriaFacade(authUC, orderUC), userRepo, orderRepo
}

func TestPizzeriaFacadeAccountFlow(t *testing.T) {
	facade, users, _ := newFacade()
	ctx := context.Background()

	user, err := facade.SignUp(ctx, "alice", "alice@test.com", "pass", false, true)
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := users.GetByUsername(ctx, "alice"); err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	pair, err := facade.Login(ctx, "alice", "pass")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if pair.AccessToken != "access:alice" {
		t.Fatalf("unexpected access token %q", pair.AccessToken)
	}

	access, err := facade.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}
	if access != "access:alice" {
		t.Fatalf("unexpected refreshed token %q", access)
	}

	identity, err := facade.IdentityFromToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("identity lookup failed: %v", err)
	}
	if identity.ID != user.ID {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestPizzeriaFacadeOrderFlow(t *testing.T) {
	facade, _, _ := newFacade()
	ctx := context.Background()

	customer, err := facade.SignUp(ctx, "bob", "bob@test.com", "pw", false, true)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	staff, err := facade.SignUp(ctx, "admin", "admin@test.com", "pw", true, true)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	placed, err := facade.PlaceOrder(ctx, customer, model.PizzaSizeLarge, 2)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if placed.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %q", placed.Status)
	}

	mine, err := facade.UserOrders(ctx, customer)
	if err != nil {
		t.Fatalf("user orders failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != placed.ID {
		t.Fatalf("expected placed order in listing, got %+v", mine)
	}

	if _, err := facade.AllOrders(ctx, customer); err != domainErrors.ErrForbidden {
		t.Fatalf("customer must not list all orders, got %v", err)
	}
	all, err := facade.AllOrders(ctx, staff)
	if err != nil {
		t.Fatalf("staff listing failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one order, got %d", len(all))
	}

	if _, err := facade.OrderByID(ctx, staff, placed.ID); err != nil {
		t.Fatalf("staff lookup failed: %v", err)
	}

	updated, err := facade.UpdateOrder(ctx, staff, placed.ID, model.OrderStatusCompleted, model.PizzaSizeLarge)
	if err != nil {
		t.Fatalf("staff update failed: %v", err)
	}
	if updated.Status != model.OrderStatusCompleted {
		t.Fatalf("update not applied: %+v", updated)
	}

	seen, err := facade.UserOrder(ctx, customer, placed.ID)
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if seen.Status != model.OrderStatusCompleted {
		t.Fatalf("owner must observe staff update, got %q", seen.Status)
	}

	if err := facade.DeleteOrder(ctx, customer, placed.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("customer must not delete, got %v", err)
	}
	if err := facade.DeleteOrder(ctx, staff, placed.ID); err != nil {
		t.Fatalf("staff delete failed: %v", err)
	}
}
