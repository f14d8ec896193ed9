package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acidpbl/homequest/internal/auth"
)

// me returns the caller's own resolved profile, points balance included.
func (h *Handler) me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// list returns every profile. Admin only; feeds the assignment dropdown.
func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": items})
}
