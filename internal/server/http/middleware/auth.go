package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ivolkoff/pizzeria/internal/domain/model"
	pkgAuth "github.com/ivolkoff/pizzeria/internal/pkg/auth"
)

// IdentityContextKey is a gin context key for the authenticated user.
const IdentityContextKey = "identity"

// IdentityResolver turns a bearer access token into a stored user.
type IdentityResolver interface {
	IdentityFromToken(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired ensures the request carries a valid access token and loads the
// corresponding user into the gin context.
func AuthRequired(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid Token"})
			return
		}

		identity, err := resolver.IdentityFromToken(c.Request.Context(), token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid Token"})
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
