package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/libris/library-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo *stubUserRepo) (*AuthService, *TokenCodec) {
	codec := NewTokenCodec("secret", time.Hour)
	verifier := NewSharedSecretVerifier("letmein")
	return NewAuthService(repo, codec, verifier, zerolog.Nop()), codec
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, codec := newTestAuthService(repo)

	created, err := svc.CreateUser(context.Background(), "alice", "refactoring")
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	token, err := svc.Login(context.Background(), "alice", "letmein")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username in claims: %s", claims.Username)
	}
	if claims.UserID != created.ID {
		t.Fatalf("expected user id %s in claims, got %s", created.ID, claims.UserID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.CreateUser(context.Background(), "alice", "refactoring"); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	if _, err := svc.Login(context.Background(), "alice", "wrong"); err != domain.ErrWrongCredentials {
		t.Fatalf("expected ErrWrongCredentials, got %v", err)
	}
}

// Unknown username and wrong password must be indistinguishable.
func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, unknownErr := svc.Login(context.Background(), "nonexistent", "anything")
	if unknownErr != domain.ErrWrongCredentials {
		t.Fatalf("expected ErrWrongCredentials, got %v", unknownErr)
	}

	if _, err := svc.CreateUser(context.Background(), "alice", "refactoring"); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	_, wrongPassErr := svc.Login(context.Background(), "alice", "wrong")
	if wrongPassErr.Error() != unknownErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassErr, unknownErr)
	}
}

func TestAuthService_CreateUser_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.CreateUser(context.Background(), "alice", "refactoring"); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "alice", "crime"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	repo := newStubUserRepo()
	svc, codec := newTestAuthService(repo)

	created, err := svc.CreateUser(context.Background(), "alice", "refactoring")
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	token, err := codec.Issue(created)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "garbage"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// A verified token naming a deleted user resolves to an anonymous context,
// not a failed request.
func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc, codec := newTestAuthService(repo)

	token, err := codec.Issue(&domain.User{ID: "999", Username: "ghost"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}
