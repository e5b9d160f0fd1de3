package policy

import (
	"testing"

	"github.com/ivolkoff/pizzeria/internal/domain/model"
)

var (
	staff    = &model.User{ID: 1, Username: "staff", IsStaff: true, IsActive: true}
	owner    = &model.User{ID: 2, Username: "owner", IsActive: true}
	stranger = &model.User{ID: 3, Username: "stranger", IsActive: true}
	inactive = &model.User{ID: 4, Username: "inactive"}
)

func TestCanViewAllOrders(t *testing.T) {
	if !CanViewAllOrders(staff) {
		t.Fatal("staff must be able to view all orders")
	}
	if CanViewAllOrders(owner) {
		t.Fatal("non-staff must not view all orders")
	}
	if CanViewAllOrders(nil) {
		t.Fatal("nil identity must be denied")
	}
}

func TestCanViewOrder(t *testing.T) {
	order := &model.Order{ID: 10, UserID: owner.ID}

	if !CanViewOrder(owner, order) {
		t.Fatal("owner must view own order")
	}
	if !CanViewOrder(staff, order) {
		t.Fatal("staff must view any order")
	}
	if CanViewOrder(stranger, order) {
		t.Fatal("non-owner non-staff must be denied")
	}
	if CanViewOrder(nil, order) || CanViewOrder(owner, nil) {
		t.Fatal("nil identity or order must be denied")
	}
}

func TestCanMutateOrder(t *testing.T) {
	order := &model.Order{ID: 10, UserID: owner.ID}

	if !CanMutateOrder(staff, order) {
		t.Fatal("staff must mutate orders")
	}
	if CanMutateOrder(owner, order) {
		t.Fatal("ownership must not grant mutation rights")
	}
	if CanMutateOrder(nil, order) {
		t.Fatal("nil identity must be denied")
	}
}

func TestCanPlaceOrder(t *testing.T) {
	if !CanPlaceOrder(owner) {
		t.Fatal("active user must place orders")
	}
	if CanPlaceOrder(inactive) {
		t.Fatal("inactive user must be denied")
	}
	if CanPlaceOrder(nil) {
		t.Fatal("nil identity must be denied")
	}
}
