package missions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acidpbl/homequest/internal/store"
)

type Repo struct {
	st store.Store
}

func NewRepo(st store.Store) *Repo {
	return &Repo{st: st}
}

func (r *Repo) Get(ctx context.Context, id string) (*Mission, error) {
	doc, err := r.st.Get(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get mission: %w", err)
	}
	m := decode(doc)
	return &m, nil
}

// ListAssignedTo returns every mission whose assignedTo contains uid.
func (r *Repo) ListAssignedTo(ctx context.Context, uid string) ([]Mission, error) {
	docs, err := r.st.Query(ctx, Collection, []store.Predicate{
		store.ArrayContains("assignedTo", uid),
	})
	if err != nil {
		return nil, fmt.Errorf("query missions: %w", err)
	}
	return decodeAll(docs), nil
}

// ListPending returns every pending mission regardless of assignee.
func (r *Repo) ListPending(ctx context.Context) ([]Mission, error) {
	docs, err := r.st.Query(ctx, Collection, []store.Predicate{
		store.Eq("status", StatusPending),
	})
	if err != nil {
		return nil, fmt.Errorf("query pending missions: %w", err)
	}
	return decodeAll(docs), nil
}

// HasDuplicate reports whether a mission with the same title, category and
// due date is already assigned to uid.
func (r *Repo) HasDuplicate(ctx context.Context, title, category string, dueDate time.Time, uid string) (bool, error) {
	docs, err := r.st.Query(ctx, Collection, []store.Predicate{
		store.Eq("title", title),
		store.Eq("category", category),
		store.Eq("dueDate", dueDate),
		store.ArrayContains("assignedTo", uid),
	})
	if err != nil {
		return false, fmt.Errorf("duplicate check: %w", err)
	}
	return len(docs) > 0, nil
}

func (r *Repo) Insert(ctx context.Context, m *Mission) (string, error) {
	id, err := r.st.Insert(ctx, Collection, encode(m))
	if err != nil {
		return "", fmt.Errorf("insert mission: %w", err)
	}
	return id, nil
}

// MarkCompleted rewrites the status to completed in a single write.
func (r *Repo) MarkCompleted(ctx context.Context, id, completedBy string) error {
	err := r.st.Update(ctx, Collection, id, map[string]interface{}{
		"status":      StatusCompleted,
		"completedBy": completedBy,
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// MarkExpired rewrites the status to expired in a single write.
func (r *Repo) MarkExpired(ctx context.Context, id string) error {
	err := r.st.Update(ctx, Collection, id, map[string]interface{}{
		"status": StatusExpired,
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.st.Delete(ctx, Collection, id); err != nil {
		return fmt.Errorf("delete mission: %w", err)
	}
	return nil
}

func encode(m *Mission) map[string]interface{} {
	data := map[string]interface{}{
		"title":       m.Title,
		"description": m.Description,
		"assignedTo":  m.AssignedTo,
		"createdAt":   m.CreatedAt,
		"dueDate":     m.DueDate,
		"status":      m.Status,
		"points":      m.Points,
		"category":    m.Category,
	}
	if m.CompletedBy != "" {
		data["completedBy"] = m.CompletedBy
	}
	return data
}

func decode(d store.Document) Mission {
	return Mission{
		ID:          d.ID,
		Title:       store.String(d.Data, "title"),
		Description: store.String(d.Data, "description"),
		AssignedTo:  store.StringSlice(d.Data, "assignedTo"),
		CreatedAt:   store.Time(d.Data, "createdAt"),
		DueDate:     store.Time(d.Data, "dueDate"),
		Status:      store.String(d.Data, "status"),
		Points:      store.Int(d.Data, "points"),
		Category:    store.String(d.Data, "category"),
		CompletedBy: store.String(d.Data, "completedBy"),
	}
}

func decodeAll(docs []store.Document) []Mission {
	out := make([]Mission, 0, len(docs))
	for _, d := range docs {
		out = append(out, decode(d))
	}
	return out
}
