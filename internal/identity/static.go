package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaticVerifier accepts HMAC-signed tokens under a shared secret. It
// exists for local development and tests, where a round trip to the real
// identity provider is unwanted.
type StaticVerifier struct {
	secret []byte
}

func NewStaticVerifier(secret string) *StaticVerifier {
	return &StaticVerifier{secret: []byte(secret)}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return identityFromClaims(claims)
}

// Sign issues a token the verifier will accept, with the same claim
// layout the real provider uses.
func (v *StaticVerifier) Sign(ident Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     ident.UID,
		"user_id": ident.UID,
		"email":   ident.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	if ident.Name != "" {
		claims["name"] = ident.Name
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
