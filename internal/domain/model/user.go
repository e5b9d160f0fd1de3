package model

import "time"

// User represents a registered customer of the pizzeria.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsStaff      bool
	IsActive     bool
	CreatedAt    time.Time
}
