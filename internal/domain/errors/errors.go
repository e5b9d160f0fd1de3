package errors

import "errors"

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidPizzaSize   = errors.New("invalid pizza size")
)
