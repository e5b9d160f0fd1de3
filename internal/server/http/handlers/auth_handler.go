package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ivolkoff/pizzeria/internal/domain/errors"
	pkgAuth "github.com/ivolkoff/pizzeria/internal/pkg/auth"
	"github.com/ivolkoff/pizzeria/internal/server/http/dto"
	"github.com/ivolkoff/pizzeria/internal/server/http/middleware"
)

// AuthHandler processes signup, login and token refresh.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Ping handles GET /auth/. Reaching it proves the access token is valid.
func (h *AuthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "auth service is up"})
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.facade.SignUp(c.Request.Context(), req.Username, req.Email, req.Password, req.IsStaff, req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmailTaken):
			detail(c, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, domainErrors.ErrUsernameTaken):
			detail(c, http.StatusBadRequest, "Username already exists")
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			detail(c, http.StatusBadRequest, "invalid signup data")
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			detail(c, http.StatusUnauthorized, "Incorrect username or password")
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh handles GET /auth/refresh. The bearer token must be of refresh type.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := middleware.BearerToken(c)

	access, err := h.facade.Refresh(token)
	if err != nil {
		switch {
		case errors.Is(err, pkgAuth.ErrInvalidToken):
			detail(c, http.StatusUnauthorized, "Please provide a valid refresh token")
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{AccessToken: access})
}
