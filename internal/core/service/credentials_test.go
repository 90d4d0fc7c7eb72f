package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/libris/library-api/internal/core/domain"
)

func TestSharedSecretVerifier(t *testing.T) {
	v := NewSharedSecretVerifier("hunter2")
	user := &domain.User{Username: "alice"}

	if err := v.Verify(user, "hunter2"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := v.Verify(user, "wrong"); err != domain.ErrWrongCredentials {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash generation failed: %v", err)
	}

	v := NewBcryptVerifier()
	user := &domain.User{Username: "alice", PasswordHash: string(hash)}

	if err := v.Verify(user, "s3cret"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := v.Verify(user, "wrong"); err != domain.ErrWrongCredentials {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
}

func TestBcryptVerifier_NoHash(t *testing.T) {
	v := NewBcryptVerifier()
	if err := v.Verify(&domain.User{Username: "alice"}, "anything"); err != domain.ErrWrongCredentials {
		t.Fatalf("expected ErrWrongCredentials for user without hash, got %v", err)
	}
}
