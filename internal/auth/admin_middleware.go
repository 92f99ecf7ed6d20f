package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware creates a gin middleware to check for admin rights.
// It must be used AFTER the standard AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := CurrentUser(c)
		if errors.Is(err, ErrNoSession) {
			// This should not happen if AuthMiddleware is used before it
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Authenticated user not found"})
			return
		}

		if !Authorize(user, RoleAdmin) {
			// Non-admin rejections use 401, not 403; the storefront client
			// treats any 401 as a prompt to re-authenticate.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
