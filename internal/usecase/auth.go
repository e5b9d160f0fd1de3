package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/ivolkoff/pizzeria/internal/domain/errors"
	"github.com/ivolkoff/pizzeria/internal/domain/model"
	"github.com/ivolkoff/pizzeria/internal/domain/repository"
	pkgAuth "github.com/ivolkoff/pizzeria/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// SignUp creates a new user with a one-way password digest. Duplicate email
// and duplicate username surface as distinct conflicts; the storage layer
// enforces uniqueness, so concurrent signups cannot both succeed.
func (u *AuthUseCase) SignUp(ctx context.Context, username, email, password string, isStaff, isActive bool) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, username, email, hash, isStaff, isActive)
}

// Login validates credentials and returns a fresh access/refresh token pair
// bound to the username. Unknown user and wrong password are deliberately
// indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (pkgAuth.TokenPair, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if err == domainErrors.ErrNotFound {
			return pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
		}
		return pkgAuth.TokenPair{}, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	return u.tokens.IssuePair(usr.Username)
}

// Refresh mints a new access token for the identity embedded in a valid
// refresh token.
func (u *AuthUseCase) Refresh(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	subject, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return u.tokens.IssueAccess(subject)
}

// IdentityFromAccessToken resolves an access token into the stored user.
func (u *AuthUseCase) IdentityFromAccessToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	subject, err := u.tokens.ParseAccess(token)
	if err != nil {
		return nil, err
	}
	usr, err := u.users.GetByUsername(ctx, subject)
	if err != nil {
		if err == domainErrors.ErrNotFound {
			return nil, pkgAuth.ErrInvalidToken
		}
		return nil, err
	}
	return usr, nil
}
