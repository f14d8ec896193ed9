package auth

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// Identity is the authenticated principal handle issued by the identity
// provider after token verification.
type Identity struct {
	UID    string
	Email  string
	Name   string
	Avatar string
}

// TokenVerifier checks a raw ID token and returns the identity behind it.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier wraps the Firebase Auth client as a TokenVerifier.
func NewFirebaseVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	id := &Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		id.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		id.Avatar = picture
	}
	return id, nil
}
