package missions

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acidpbl/homequest/internal/auth"
)

type Handler struct {
	svc *Service
}

func Register(rg *gin.RouterGroup, svc *Service) {
	h := &Handler{svc: svc}

	rg.GET("", h.list)
	rg.POST("", auth.RequireAdmin(), h.create)
	rg.POST("/:id/complete", h.complete)
	rg.DELETE("/:id", auth.RequireAdmin(), h.delete)
}

func (h *Handler) list(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	items, err := h.svc.List(c.Request.Context(), user.UID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to list missions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"missions": items})
}

type createReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AssignedTo  []string `json:"assignedTo"`
	DueDate     string   `json:"dueDate"`
	Points      int      `json:"points"`
	Category    string   `json:"category"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due date"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), CreateInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
		Points:      req.Points,
		Category:    req.Category,
	}, auth.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) complete(c *gin.Context) {
	m, err := h.svc.Complete(c.Request.Context(), c.Param("id"), auth.CurrentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mission": m})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), auth.CurrentUser(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "mission is not pending"})
	case errors.Is(err, ErrDuplicateMission):
		c.JSON(http.StatusConflict, gin.H{"error": "an identical mission already exists"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	}
}

// parseDueDate accepts a plain date (midnight local, as the admin form
// submits) or a full RFC3339 timestamp.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
