package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acidpbl/homequest/internal/store"
)

// Resolver fetches the profile behind an authenticated identity, creating it
// on first sign-in. cache may be nil.
type Resolver struct {
	repo  *Repo
	cache *Cache
}

func NewResolver(repo *Repo, cache *Cache) *Resolver {
	return &Resolver{repo: repo, cache: cache}
}

// Resolve looks up the profile for id.UID and lazily creates it with zero
// points and no admin flag. Creation happens at most once per identity: a
// second call finds the stored record and performs no write.
func (r *Resolver) Resolve(ctx context.Context, id Identity) (*User, error) {
	if id.UID == "" {
		return nil, fmt.Errorf("identity uid required")
	}

	if r.cache != nil {
		if u, ok := r.cache.Get(ctx, id.UID); ok {
			return u, nil
		}
	}

	u, err := r.repo.Get(ctx, id.UID)
	if errors.Is(err, store.ErrNotFound) {
		u = &User{
			UID:       id.UID,
			Name:      id.Name,
			Email:     id.Email,
			Avatar:    id.Avatar,
			Points:    0,
			CreatedAt: time.Now().UTC(),
			IsAdmin:   false,
		}
		if err := r.repo.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, u)
	}
	return u, nil
}
