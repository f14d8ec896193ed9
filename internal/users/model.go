package users

import "time"

// Collection is the record store collection holding user profiles. The
// document id is the identity provider uid.
const Collection = "users"

// User is a stored profile. Points only ever change through reward flows
// outside this service; missions carry their own point values.
type User struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
	IsAdmin   bool      `json:"isAdmin"`
}

// Identity is the minimal authenticated-identity view the resolver needs.
type Identity struct {
	UID    string
	Email  string
	Name   string
	Avatar string
}
