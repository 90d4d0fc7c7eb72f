package ports

import (
	"context"

	"github.com/libris/library-api/internal/core/domain"
)

// TokenCodec signs and verifies the compact tokens issued at login.
type TokenCodec interface {
	Issue(user *domain.User) (string, error)
	// Verify returns domain.ErrInvalidToken on a malformed, forged or
	// expired token.
	Verify(token string) (*domain.TokenClaims, error)
}

// CredentialVerifier checks a presented password against a user record.
// Implementations return domain.ErrWrongCredentials on mismatch.
type CredentialVerifier interface {
	Verify(user *domain.User, password string) error
}

type AuthService interface {
	// Login returns a signed token. Unknown username and bad password both
	// fail with domain.ErrWrongCredentials so callers cannot probe for
	// registered usernames.
	Login(ctx context.Context, username, password string) (string, error)
	CreateUser(ctx context.Context, username, favoriteGenre string) (*domain.User, error)
	// Authenticate resolves a bearer token to a user. A token that verifies
	// but names a user that no longer exists yields (nil, nil).
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
