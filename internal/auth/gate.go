package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The access gate. Routes are either open to any authenticated user or
// restricted to admins; both checks run against the profile Authenticate
// already resolved, so they never fire on a half-resolved session.

// RequireUser rejects requests that carry no resolved user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose resolved user is not an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
