package users

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acidpbl/homequest/internal/store"
	"github.com/acidpbl/homequest/internal/store/memory"
)

// countingSets counts profile writes going through Set.
type countingSets struct {
	store.Store
	sets atomic.Int64
}

func (c *countingSets) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	c.sets.Add(1)
	return c.Store.Set(ctx, collection, id, data)
}

func TestResolver_CreatesProfileOnFirstSignIn(t *testing.T) {
	st := &countingSets{Store: memory.New()}
	resolver := NewResolver(NewRepo(st), nil)
	ctx := context.Background()

	identity := Identity{UID: "uid-1", Email: "ana@example.com", Name: "Ana", Avatar: "https://example.com/a.png"}

	u, err := resolver.Resolve(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", u.UID)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, 0, u.Points)
	assert.False(t, u.IsAdmin)
	assert.False(t, u.CreatedAt.IsZero())

	t.Run("second resolve performs no write", func(t *testing.T) {
		again, err := resolver.Resolve(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, u.UID, again.UID)
		assert.Equal(t, int64(1), st.sets.Load(), "exactly one stored profile")
	})
}

func TestResolver_ExistingProfileWins(t *testing.T) {
	st := memory.New()
	repo := NewRepo(st)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &User{
		UID:     "uid-2",
		Name:    "Bruno",
		Email:   "bruno@example.com",
		Points:  42,
		IsAdmin: true,
	}))

	resolver := NewResolver(repo, nil)

	// Token claims carry a different display name; the stored profile is
	// what the session sees.
	u, err := resolver.Resolve(ctx, Identity{UID: "uid-2", Name: "B."})
	require.NoError(t, err)
	assert.Equal(t, "Bruno", u.Name)
	assert.Equal(t, 42, u.Points)
	assert.True(t, u.IsAdmin)
}

func TestResolver_RequiresUID(t *testing.T) {
	resolver := NewResolver(NewRepo(memory.New()), nil)

	_, err := resolver.Resolve(context.Background(), Identity{})
	assert.Error(t, err)
}
