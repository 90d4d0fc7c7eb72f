package graphqlapi

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/libris/library-api/internal/core/domain"
	"github.com/libris/library-api/internal/core/ports"
)

type authorResolver struct {
	a       *domain.Author
	catalog ports.CatalogService
}

func (r *authorResolver) ID() graphql.ID { return graphql.ID(r.a.ID) }
func (r *authorResolver) Name() string   { return r.a.Name }

func (r *authorResolver) Born() *int32 {
	if r.a.Born == nil {
		return nil
	}
	born := int32(*r.a.Born)
	return &born
}

// BookCount counts the books referencing this author, computed per query.
func (r *authorResolver) BookCount(ctx context.Context) (int32, error) {
	n, err := r.catalog.BookCountByAuthor(ctx, r.a.ID)
	if err != nil {
		return 0, asResolverError(err, nil)
	}
	return int32(n), nil
}
