package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/libris/library-api/internal/core/domain"
)

// SharedSecretVerifier accepts a single process-wide password for every user.
// It exists for deployments that have not migrated to per-user credentials;
// the secret comes from configuration, never from source.
type SharedSecretVerifier struct {
	secret []byte
}

func NewSharedSecretVerifier(secret string) *SharedSecretVerifier {
	return &SharedSecretVerifier{secret: []byte(secret)}
}

func (v *SharedSecretVerifier) Verify(_ *domain.User, password string) error {
	if subtle.ConstantTimeCompare(v.secret, []byte(password)) != 1 {
		return domain.ErrWrongCredentials
	}
	return nil
}

// BcryptVerifier compares the presented password against the user's stored
// bcrypt hash.
type BcryptVerifier struct{}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

func (v *BcryptVerifier) Verify(user *domain.User, password string) error {
	if user.PasswordHash == "" {
		return domain.ErrWrongCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.ErrWrongCredentials
	}
	return nil
}
