package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acidpbl/homequest/internal/store"
)

func TestGetSetUpdateDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Get(ctx, "users", "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Set(ctx, "users", "u1", map[string]interface{}{"name": "Ana", "points": 0}))

	doc, err := s.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", doc.ID)
	assert.Equal(t, "Ana", doc.Data["name"])

	require.NoError(t, s.Update(ctx, "users", "u1", map[string]interface{}{"points": 5}))
	doc, err = s.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, doc.Data["points"])
	assert.Equal(t, "Ana", doc.Data["name"], "update keeps untouched fields")

	assert.ErrorIs(t, s.Update(ctx, "users", "missing", map[string]interface{}{"points": 1}), store.ErrNotFound)

	require.NoError(t, s.Delete(ctx, "users", "u1"))
	_, err = s.Get(ctx, "users", "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting a missing document is not an error.
	assert.NoError(t, s.Delete(ctx, "users", "u1"))
}

func TestInsertGeneratesIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	id1, err := s.Insert(ctx, "missions", map[string]interface{}{"title": "a"})
	require.NoError(t, err)
	id2, err := s.Insert(ctx, "missions", map[string]interface{}{"title": "b"})
	require.NoError(t, err)
	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
}

func TestQueryPredicates(t *testing.T) {
	s := New()
	ctx := context.Background()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.Set(ctx, "missions", "m1", map[string]interface{}{
		"title":      "Lavar louça",
		"status":     "pending",
		"assignedTo": []string{"alice"},
		"dueDate":    due,
	}))
	require.NoError(t, s.Set(ctx, "missions", "m2", map[string]interface{}{
		"title":      "Lavar louça",
		"status":     "completed",
		"assignedTo": []string{"bob", "alice"},
		"dueDate":    due.Add(24 * time.Hour),
	}))

	t.Run("equality", func(t *testing.T) {
		docs, err := s.Query(ctx, "missions", []store.Predicate{store.Eq("status", "pending")})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "m1", docs[0].ID)
	})

	t.Run("array contains", func(t *testing.T) {
		docs, err := s.Query(ctx, "missions", []store.Predicate{store.ArrayContains("assignedTo", "alice")})
		require.NoError(t, err)
		assert.Len(t, docs, 2)

		docs, err = s.Query(ctx, "missions", []store.Predicate{store.ArrayContains("assignedTo", "bob")})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "m2", docs[0].ID)
	})

	t.Run("time equality compares instants", func(t *testing.T) {
		elsewhere := due.In(time.FixedZone("BRT", -3*60*60))
		docs, err := s.Query(ctx, "missions", []store.Predicate{store.Eq("dueDate", elsewhere)})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "m1", docs[0].ID)
	})

	t.Run("predicates are ANDed", func(t *testing.T) {
		docs, err := s.Query(ctx, "missions", []store.Predicate{
			store.Eq("title", "Lavar louça"),
			store.Eq("status", "completed"),
			store.ArrayContains("assignedTo", "alice"),
		})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "m2", docs[0].ID)
	})

	t.Run("no predicates returns everything", func(t *testing.T) {
		docs, err := s.Query(ctx, "missions", nil)
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})
}

func TestDocumentsAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users", "u1", map[string]interface{}{"name": "Ana"}))

	doc, err := s.Get(ctx, "users", "u1")
	require.NoError(t, err)
	doc.Data["name"] = "changed"

	again, err := s.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.Data["name"])
}
