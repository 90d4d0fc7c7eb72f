package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/libris/library-api/internal/core/domain"
	"github.com/libris/library-api/internal/core/ports"
)

// AuthService implements login, account creation and bearer-token resolution.
type AuthService struct {
	users       ports.UserRepository
	codec       ports.TokenCodec
	credentials ports.CredentialVerifier
	logger      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec ports.TokenCodec, credentials ports.CredentialVerifier, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, credentials: credentials, logger: logger}
}

// Login validates the presented credentials and returns a signed token.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrWrongCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Err(err).Msg("user lookup failed during login")
		}
		return "", domain.ErrWrongCredentials
	}

	if err := s.credentials.Verify(user, password); err != nil {
		return "", domain.ErrWrongCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("token signing failed")
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("user logged in")
	return token, nil
}

// CreateUser registers a new account. The registration path carries no
// password; credentials are handled by the configured verifier.
func (s *AuthService) CreateUser(ctx context.Context, username, favoriteGenre string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", domain.ErrInvalidInput)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:      username,
		FavoriteGenre: favoriteGenre,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user created")
	return created, nil
}

// Authenticate resolves a bearer token to a user record. A verified token
// whose subject no longer exists resolves to (nil, nil): the request proceeds
// anonymously rather than failing outright.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("user_id", claims.UserID).Msg("user lookup failed during authentication")
		return nil, err
	}
	return user, nil
}
