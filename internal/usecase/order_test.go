package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/ivolkoff/pizzeria/internal/domain/errors"
	"github.com/ivolkoff/pizzeria/internal/domain/model"
	testhelpers "github.com/ivolkoff/pizzeria/internal/test"
)

var (
	staffUser = &model.User{ID: 1, Username: "staff", IsStaff: true, IsActive: true}
	customer  = &model.User{ID: 2, Username: "customer", IsActive: true}
	other     = &model.User{ID: 3, Username: "other", IsActive: true}
	suspended = &model.User{ID: 4, Username: "suspended"}
)

func TestOrderUseCasePlace(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	order, err := uc.Place(context.Background(), customer, model.PizzaSizeLarge, 2)
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.UserID != customer.ID {
		t.Fatalf("order must be owned by the placer, got %d", order.UserID)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if order.Size != model.PizzaSizeLarge || order.Quantity != 2 {
		t.Fatalf("size/quantity not taken from input: %+v", order)
	}
}

func TestOrderUseCasePlaceZeroQuantity(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.NewOrderRepositoryStub())
	order, err := uc.Place(context.Background(), customer, model.PizzaSizeSmall, 0)
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.Quantity != 0 {
		t.Fatalf("zero quantity must be accepted, got %d", order.Quantity)
	}
}

func TestOrderUseCasePlaceInactive(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.NewOrderRepositoryStub())
	if _, err := uc.Place(context.Background(), suspended, model.PizzaSizeSmall, 1); err != domainErrors.ErrForbidden {
		t.Fatalf("expected forbidden for inactive user, got %v", err)
	}
}

func TestOrderUseCaseListAll(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Place(ctx, customer, model.PizzaSizeSmall, 1); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if _, err := uc.Place(ctx, other, model.PizzaSizeMedium, 3); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	orders, err := uc.ListAll(ctx, staffUser)
	if err != nil {
		t.Fatalf("list all returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	if _, err := uc.ListAll(ctx, customer); err != domainErrors.ErrForbidden {
		t.Fatalf("expected forbidden for non-staff, got %v", err)
	}
}

func TestOrderUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	ctx := context.Background()

	placed, err := uc.Place(ctx, customer, model.PizzaSizeSmall, 1)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	order, err := uc.GetByID(ctx, staffUser, placed.ID)
	if err != nil {
		t.Fatalf("staff lookup failed: %v", err)
	}
	if order.ID != placed.ID {
		t.Fatalf("unexpected order %+v", order)
	}

	if _, err := uc.GetByID(ctx, customer, placed.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("expected forbidden for non-staff even as owner, got %v", err)
	}
	if _, err := uc.GetByID(ctx, staffUser, 999); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseListOwned(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	ctx := context.Background()

	mine, err := uc.Place(ctx, customer, model.PizzaSizeLarge, 2)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if _, err := uc.Place(ctx, other, model.PizzaSizeSmall, 1); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	orders, err := uc.ListOwned(ctx, customer)
	if err != nil {
		t.Fatalf("list owned returned error: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != mine.ID {
		t.Fatalf("expected only own order, got %+v", orders)
	}

	// No orders is a valid, empty result.
	empty, err := uc.ListOwned(ctx, suspended)
	if err != nil {
		t.Fatalf("empty list must not be an error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no orders, got %+v", empty)
	}
}

func TestOrderUseCaseGetOwned(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	ctx := context.Background()

	placed, err := uc.Place(ctx, customer, model.PizzaSizeMedium, 1)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if _, err := uc.GetOwned(ctx, customer, placed.ID); err != nil {
		t.Fatalf("owner must see own order: %v", err)
	}
	if _, err := uc.GetOwned(ctx, staffUser, placed.ID); err != nil {
		t.Fatalf("staff must see any order: %v", err)
	}
	if _, err := uc.GetOwned(ctx, other, placed.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	if _, err := uc.GetOwned(ctx, customer, 999); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found for absent order, got %v", err)
	}
}

func TestOrderUseCaseUpdate(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	ctx := context.Background()

	placed, err := uc.Place(ctx, customer, model.PizzaSizeLarge, 2)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	updated, err := uc.Update(ctx, staffUser, placed.ID, model.OrderStatusCompleted, model.PizzaSizeMedium)
	if err != nil {
		t.Fatalf("staff update failed: %v", err)
	}
	if updated.Status != model.OrderStatusCompleted || updated.Size != model.PizzaSizeMedium {
		t.Fatalf("update not applied: %+v", updated)
	}

	// The owner later observes the staff update.
	seen, err := uc.GetOwned(ctx, customer, placed.ID)
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if seen.Status != model.OrderStatusCompleted {
		t.Fatalf("owner must see updated status, got %q", seen.Status)
	}

	if _, err := uc.Update(ctx, customer, placed.ID, model.OrderStatusCancelled, model.PizzaSizeSmall); err != domainErrors.ErrForbidden {
		t.Fatalf("owner without staff flag must not update, got %v", err)
	}
	if _, err := uc.Update(ctx, staffUser, 999, model.OrderStatusCancelled, model.PizzaSizeSmall); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseDelete(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	ctx := context.Background()

	placed, err := uc.Place(ctx, customer, model.PizzaSizeSmall, 1)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if err := uc.Delete(ctx, customer, placed.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("owner without staff flag must not delete, got %v", err)
	}
	if err := uc.Delete(ctx, staffUser, placed.ID); err != nil {
		t.Fatalf("staff delete failed: %v", err)
	}
	if err := uc.Delete(ctx, staffUser, placed.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
