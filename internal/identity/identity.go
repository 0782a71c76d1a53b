// Package identity verifies bearer credentials against the external
// identity provider. It is the sole source of authenticated identity;
// nothing else in the backend stores or checks credentials.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/dineatlas/directory-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller as asserted by the provider.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// Verifier turns an opaque bearer credential into an Identity, or fails.
// Every request re-verifies; there is no session state.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// New selects a Verifier from config.
func New(cfg *config.Config) (Verifier, error) {
	switch cfg.AuthProvider {
	case "google", "":
		if cfg.FirebaseProjectID == "" {
			return nil, errors.New("FIREBASE_PROJECT_ID is required for the google auth provider")
		}
		return NewGoogleVerifier(cfg.FirebaseProjectID), nil
	case "static":
		if cfg.StaticAuthSecret == "" {
			return nil, errors.New("AUTH_STATIC_SECRET is required for the static auth provider")
		}
		return NewStaticVerifier(cfg.StaticAuthSecret), nil
	default:
		return nil, fmt.Errorf("unknown auth provider: %q (supported: google, static)", cfg.AuthProvider)
	}
}

// identityFromClaims maps provider claims onto an Identity. Firebase puts
// the uid in both "user_id" and the subject.
func identityFromClaims(claims jwt.MapClaims) (*Identity, error) {
	uid, _ := claims["user_id"].(string)
	if uid == "" {
		uid, _ = claims["sub"].(string)
	}
	if uid == "" {
		return nil, errors.New("token has no uid claim")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return &Identity{UID: uid, Email: email, Name: name}, nil
}
