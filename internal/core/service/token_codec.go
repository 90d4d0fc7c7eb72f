package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/libris/library-api/internal/core/domain"
)

// TokenCodec issues and verifies HS256 tokens carrying the identity of a
// logged-in user. The signing secret is read-only after construction.
type TokenCodec struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenCodec(secret string, tokenTTL time.Duration) *TokenCodec {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), tokenTTL: tokenTTL}
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issue signs a token with the user's username and id. The expiry is
// tokenTTL from now.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token string. Any failure, whether a bad
// signature, an unexpected algorithm, a malformed payload or an expired
// token, collapses to domain.ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (*domain.TokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{
		Username: claims.Username,
		UserID:   claims.Subject,
	}, nil
}
