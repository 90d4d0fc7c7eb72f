package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/libris/library-api/internal/api/metrics"
	"github.com/libris/library-api/internal/core/domain"
	"github.com/libris/library-api/internal/core/ports"
)

type contextKey string

const userContextKey contextKey = "current_user"

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user for this request, or nil for
// an anonymous request.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// gqlErrorEnvelope is the shape of a GraphQL error response produced before
// query execution starts.
type gqlErrorEnvelope struct {
	Errors []gqlEnvelopeError `json:"errors"`
}

type gqlEnvelopeError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

// TokenAuth builds the per-request context from the Authorization header.
//
// A missing header or a non-Bearer scheme yields an anonymous context; read
// operations accept anonymous callers. A Bearer token that fails verification
// rejects the whole request before execution. A verified token naming an
// unknown user also yields an anonymous context.
func TokenAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			user, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, domain.ErrInvalidToken) {
					metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
					return c.JSON(http.StatusUnauthorized, gqlErrorEnvelope{
						Errors: []gqlEnvelopeError{{
							Message:    domain.ErrInvalidToken.Error(),
							Extensions: map[string]any{"code": "UNAUTHENTICATED"},
						}},
					})
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "authentication unavailable")
			}
			if user == nil {
				return next(c)
			}

			ctx := WithUser(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
