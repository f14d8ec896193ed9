package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/acidpbl/homequest/internal/users"
)

// ProfileResolver turns a verified identity into the stored user profile,
// creating the profile on first sign-in.
type ProfileResolver interface {
	Resolve(ctx context.Context, id users.Identity) (*users.User, error)
}

// Authenticate validates the Bearer ID token and resolves the caller's
// profile into the request context. Verification failure is a 401; a store
// failure during resolution is a 503, never a retry loop.
func Authenticate(verifier TokenVerifier, resolver ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), users.Identity{
			UID:    identity.UID,
			Email:  identity.Email,
			Name:   identity.Name,
			Avatar: identity.Avatar,
		})
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "profile unavailable"})
			c.Abort()
			return
		}

		c.Set("firebase_uid", identity.UID)
		SetCurrentUser(c, user)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
