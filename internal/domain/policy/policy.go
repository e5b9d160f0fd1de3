// Package policy holds the access control rules for order management.
// Every decision is a pure function of the authenticated identity and the
// resource; denial is always surfaced to the caller, never silently filtered.
package policy

import "github.com/ivolkoff/pizzeria/internal/domain/model"

// CanViewAllOrders reports whether identity may list or look up arbitrary
// orders.
func CanViewAllOrders(identity *model.User) bool {
	return identity != nil && identity.IsStaff
}

// CanViewOrder reports whether identity may read a single order.
func CanViewOrder(identity *model.User, order *model.Order) bool {
	if identity == nil || order == nil {
		return false
	}
	return identity.IsStaff || order.UserID == identity.ID
}

// CanMutateOrder reports whether identity may update or delete an order.
// Ownership does not grant mutation rights.
func CanMutateOrder(identity *model.User, order *model.Order) bool {
	return identity != nil && identity.IsStaff
}

// CanPlaceOrder reports whether identity may create a new order.
func CanPlaceOrder(identity *model.User) bool {
	return identity != nil && identity.IsActive
}
