package graphqlapi

import (
	"errors"

	"github.com/libris/library-api/internal/core/domain"
)

// Apollo-compatible error codes surfaced in extensions.code.
const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeBadUserInput    = "BAD_USER_INPUT"
	codeNotFound        = "NOT_FOUND"
	codeInternal        = "INTERNAL_SERVER_ERROR"
)

// gqlError is a resolver error with GraphQL extensions. graphql-go picks up
// the Extensions method and includes the map in the response error entry.
type gqlError struct {
	message    string
	code       string
	extensions map[string]interface{}
}

func (e *gqlError) Error() string { return e.message }

func (e *gqlError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	for k, v := range e.extensions {
		ext[k] = v
	}
	return ext
}

func authenticationError(message string) *gqlError {
	return &gqlError{message: message, code: codeUnauthenticated}
}

func userInputError(message string, invalidArgs map[string]interface{}) *gqlError {
	var ext map[string]interface{}
	if invalidArgs != nil {
		ext = map[string]interface{}{"invalidArgs": invalidArgs}
	}
	return &gqlError{message: message, code: codeBadUserInput, extensions: ext}
}

func notFoundError(message string) *gqlError {
	return &gqlError{message: message, code: codeNotFound}
}

// asResolverError maps a domain error onto the typed error taxonomy. Errors
// outside the taxonomy are masked as internal; the caller logs the cause.
func asResolverError(err error, invalidArgs map[string]interface{}) *gqlError {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrInvalidToken):
		return authenticationError(err.Error())
	case errors.Is(err, domain.ErrWrongCredentials),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrBookExists):
		return userInputError(err.Error(), invalidArgs)
	case errors.Is(err, domain.ErrAuthorNotFound), errors.Is(err, domain.ErrUserNotFound):
		return notFoundError(err.Error())
	}
	return &gqlError{message: "internal server error", code: codeInternal}
}
