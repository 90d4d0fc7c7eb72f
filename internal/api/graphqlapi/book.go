package graphqlapi

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/libris/library-api/internal/core/domain"
	"github.com/libris/library-api/internal/core/ports"
)

type bookResolver struct {
	b       *domain.Book
	catalog ports.CatalogService
}

func (r *bookResolver) ID() graphql.ID   { return graphql.ID(r.b.ID) }
func (r *bookResolver) Title() string    { return r.b.Title }
func (r *bookResolver) Published() int32 { return int32(r.b.Published) }
func (r *bookResolver) Genres() []string { return r.b.Genres }

// Author resolves the book's author reference. The insert path guarantees the
// referenced author exists before the book is persisted.
func (r *bookResolver) Author(ctx context.Context) (*authorResolver, error) {
	author, err := r.catalog.AuthorByID(ctx, r.b.AuthorID)
	if err != nil {
		return nil, asResolverError(err, nil)
	}
	return &authorResolver{a: author, catalog: r.catalog}, nil
}
