package graphqlapi

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/libris/library-api/internal/core/domain"
)

type userResolver struct {
	u *domain.User
}

func (r *userResolver) ID() graphql.ID        { return graphql.ID(r.u.ID) }
func (r *userResolver) Username() string      { return r.u.Username }
func (r *userResolver) FavoriteGenre() string { return r.u.FavoriteGenre }

// tokenResolver wraps the signed token returned by login.
type tokenResolver struct {
	value string
}

func (r *tokenResolver) Value() string { return r.value }
