package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ivolkoff/pizzeria/internal/domain/model"
	"github.com/ivolkoff/pizzeria/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated user from the gin context.
func CurrentIdentity(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return nil
	}
	identity, _ := val.(*model.User)
	return identity
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}
