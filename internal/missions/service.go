package missions

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/acidpbl/homequest/internal/metrics"
	"github.com/acidpbl/homequest/internal/users"
)

// Service enforces the mission lifecycle rules on top of the repository.
type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// List returns every mission assigned to userID after running the expiry
// sweep: pending missions past their due date are rewritten to expired, in
// the store and in the returned slice. The rewrites run concurrently and are
// joined before returning; a failed rewrite is logged and the entry keeps its
// pre-sweep status.
func (s *Service) List(ctx context.Context, userID string) ([]Mission, error) {
	items, err := s.repo.ListAssignedTo(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.sweep(ctx, items)
	return items, nil
}

func (s *Service) sweep(ctx context.Context, items []Mission) {
	now := time.Now()

	var wg sync.WaitGroup
	for i := range items {
		m := &items[i]
		if m.Status != StatusPending || !m.DueDate.Before(now) {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.repo.MarkExpired(ctx, m.ID); err != nil {
				log.Printf("[missions] sweep: expire %s: %v", m.ID, err)
				metrics.SweepFailures.Inc()
				return
			}
			m.Status = StatusExpired
			metrics.MissionsExpired.Inc()
		}()
	}
	wg.Wait()
}

// Create validates and inserts a new pending mission. Only admins may create
// missions. A mission with the same title, category, due date and assignee is
// rejected as a duplicate; the read-then-insert check is not atomic against
// the store, so two concurrent identical submissions can both pass it.
func (s *Service) Create(ctx context.Context, in CreateInput, actor *users.User) (string, error) {
	if actor == nil || !actor.IsAdmin {
		return "", ErrPermissionDenied
	}
	if err := validate(in); err != nil {
		return "", err
	}

	for _, uid := range in.AssignedTo {
		dup, err := s.repo.HasDuplicate(ctx, in.Title, in.Category, in.DueDate, uid)
		if err != nil {
			return "", err
		}
		if dup {
			return "", ErrDuplicateMission
		}
	}

	m := &Mission{
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   time.Now().UTC(),
		DueDate:     in.DueDate,
		Status:      StatusPending,
		Points:      in.Points,
		Category:    in.Category,
	}
	return s.repo.Insert(ctx, m)
}

// Complete transitions a pending mission to completed and records who
// completed it. A mission that is already completed or expired is rejected
// with ErrInvalidTransition and no write is performed. The actor's points
// balance is deliberately left untouched.
func (s *Service) Complete(ctx context.Context, missionID string, actor *users.User) (*Mission, error) {
	if actor == nil {
		return nil, ErrPermissionDenied
	}

	m, err := s.repo.Get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.MarkCompleted(ctx, missionID, actor.UID); err != nil {
		return nil, fmt.Errorf("complete mission: %w", err)
	}
	m.Status = StatusCompleted
	m.CompletedBy = actor.UID
	return m, nil
}

// Delete removes a mission outright. Admin only; no soft delete, no undo.
func (s *Service) Delete(ctx context.Context, missionID string, actor *users.User) error {
	if actor == nil || !actor.IsAdmin {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, missionID)
}

// SweepAll expires every overdue pending mission. Used by the scheduled
// sweeper so missions expire even for users who never refetch their list.
func (s *Service) SweepAll(ctx context.Context) (int, error) {
	items, err := s.repo.ListPending(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	expired := 0
	for _, m := range items {
		if !m.DueDate.Before(now) {
			continue
		}
		if err := s.repo.MarkExpired(ctx, m.ID); err != nil {
			log.Printf("[missions] sweep all: expire %s: %v", m.ID, err)
			metrics.SweepFailures.Inc()
			continue
		}
		expired++
		metrics.MissionsExpired.Inc()
	}
	return expired, nil
}

func validate(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if in.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrValidation)
	}
	if len(in.AssignedTo) == 0 {
		return fmt.Errorf("%w: at least one assignee is required", ErrValidation)
	}
	for _, uid := range in.AssignedTo {
		if strings.TrimSpace(uid) == "" {
			return fmt.Errorf("%w: empty assignee", ErrValidation)
		}
	}
	if in.Points < 0 {
		return fmt.Errorf("%w: points must not be negative", ErrValidation)
	}
	if !validCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	return nil
}
