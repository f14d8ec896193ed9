package http

import (
	"github.com/gin-gonic/gin"

	"github.com/acidpbl/homequest/internal/auth"
	"github.com/acidpbl/homequest/internal/users"
)

type Handler struct {
	repo *users.Repo
}

// Register attaches profile routes to the given router group.
func Register(rg *gin.RouterGroup, repo *users.Repo) {
	h := &Handler{repo: repo}

	rg.GET("/me", h.me)
	rg.GET("/users", auth.RequireAdmin(), h.list)
}
