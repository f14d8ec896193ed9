// Package missions owns the mission lifecycle: creation, completion, expiry
// and deletion of assigned chores.
package missions

import (
	"errors"
	"time"
)

// Collection is the record store collection holding missions.
const Collection = "missions"

// Mission statuses. Transitions are one-way: pending -> completed by user
// action, pending -> expired by the sweep. Terminal states never change.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusExpired   = "expired"
)

// Mission categories.
const (
	CategoryCleaning = "cleaning"
	CategoryBills    = "bills"
	CategoryGeneral  = "general"
)

var (
	ErrNotFound          = errors.New("mission not found")
	ErrInvalidTransition = errors.New("mission is not pending")
	ErrDuplicateMission  = errors.New("mission already exists")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrValidation        = errors.New("invalid mission")
)

// Mission is an assignable, point-valued chore record.
type Mission struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssignedTo  []string  `json:"assignedTo"`
	CreatedAt   time.Time `json:"createdAt"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	Points      int       `json:"points"`
	Category    string    `json:"category,omitempty"`
	CompletedBy string    `json:"completedBy,omitempty"`
}

// CreateInput is the data an admin submits to create a mission.
type CreateInput struct {
	Title       string
	Description string
	AssignedTo  []string
	DueDate     time.Time
	Points      int
	Category    string
}

func validCategory(c string) bool {
	switch c {
	case CategoryCleaning, CategoryBills, CategoryGeneral:
		return true
	}
	return false
}
