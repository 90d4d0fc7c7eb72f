package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrWrongCredentials = errors.New("wrong credentials")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidToken = errors.New("invalid authentication token")

// User models an authenticated actor in the system.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	FavoriteGenre string `json:"favorite_genre"`
	// PasswordHash is only populated when per-user bcrypt credentials are in
	// use; the shared-secret verifier ignores it.
	PasswordHash string `json:"-"`
}

// TokenClaims is the identity payload embedded in a signed token.
type TokenClaims struct {
	Username string
	UserID   string
}
