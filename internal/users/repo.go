package users

import (
	"context"
	"fmt"

	"github.com/acidpbl/homequest/internal/store"
)

type Repo struct {
	st store.Store
}

func NewRepo(st store.Store) *Repo {
	return &Repo{st: st}
}

// Get returns the profile stored under uid, or store.ErrNotFound.
func (r *Repo) Get(ctx context.Context, uid string) (*User, error) {
	doc, err := r.st.Get(ctx, Collection, uid)
	if err != nil {
		return nil, err
	}
	u := decode(doc)
	return &u, nil
}

// Create stores a new profile under its uid.
func (r *Repo) Create(ctx context.Context, u *User) error {
	if u.UID == "" {
		return fmt.Errorf("uid required")
	}
	return r.st.Set(ctx, Collection, u.UID, encode(u))
}

// List returns every stored profile.
func (r *Repo) List(ctx context.Context) ([]User, error) {
	docs, err := r.st.Query(ctx, Collection, nil)
	if err != nil {
		return nil, err
	}

	out := make([]User, 0, len(docs))
	for _, d := range docs {
		out = append(out, decode(d))
	}
	return out, nil
}

func encode(u *User) map[string]interface{} {
	return map[string]interface{}{
		"name":      u.Name,
		"email":     u.Email,
		"avatar":    u.Avatar,
		"points":    u.Points,
		"createdAt": u.CreatedAt,
		"isAdmin":   u.IsAdmin,
	}
}

func decode(d store.Document) User {
	return User{
		UID:       d.ID,
		Name:      store.String(d.Data, "name"),
		Email:     store.String(d.Data, "email"),
		Avatar:    store.String(d.Data, "avatar"),
		Points:    store.Int(d.Data, "points"),
		CreatedAt: store.Time(d.Data, "createdAt"),
		IsAdmin:   store.Bool(d.Data, "isAdmin"),
	}
}
