package dto

import "github.com/ivolkoff/pizzeria/internal/domain/model"

// SignUpRequest describes the signup payload.
type SignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	IsStaff  bool   `json:"is_staff"`
	IsActive bool   `json:"is_active"`
}

// LoginRequest describes login/password payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user. The password digest is never
// serialized.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
	IsActive bool   `json:"is_active"`
}

// TokenPairResponse carries both tokens issued at login.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessTokenResponse carries a freshly minted access token.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ToUserResponse maps a domain user to its public view.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsStaff:  u.IsStaff,
		IsActive: u.IsActive,
	}
}
