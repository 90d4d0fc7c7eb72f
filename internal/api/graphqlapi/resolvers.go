package graphqlapi

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/libris/library-api/internal/api/metrics"
	"github.com/libris/library-api/internal/api/middleware"
	"github.com/libris/library-api/internal/core/domain"
	"github.com/libris/library-api/internal/core/ports"
)

// Resolver is the root resolver. It is shared across requests and holds only
// read-only dependencies; all per-request state travels on the context.
type Resolver struct {
	catalog ports.CatalogService
	auth    ports.AuthService
	logger  zerolog.Logger
}

func NewResolver(catalog ports.CatalogService, auth ports.AuthService, logger zerolog.Logger) *Resolver {
	return &Resolver{catalog: catalog, auth: auth, logger: logger}
}

// resolverError maps err onto the typed taxonomy, logging anything that falls
// outside it before it is masked as an internal error.
func (r *Resolver) resolverError(err error, invalidArgs map[string]interface{}) error {
	mapped := asResolverError(err, invalidArgs)
	if mapped.code == codeInternal {
		r.logger.Error().Err(err).Msg("unhandled resolver error")
	}
	return mapped
}

// ── Query ────────────────────────────────────────────────────────────────────

func (r *Resolver) BookCount(ctx context.Context) (int32, error) {
	n, err := r.catalog.BookCount(ctx)
	if err != nil {
		return 0, r.resolverError(err, nil)
	}
	return int32(n), nil
}

func (r *Resolver) AuthorCount(ctx context.Context) (int32, error) {
	n, err := r.catalog.AuthorCount(ctx)
	if err != nil {
		return 0, r.resolverError(err, nil)
	}
	return int32(n), nil
}

func (r *Resolver) AllBooks(ctx context.Context, args struct {
	Author *string
	Genre  *string
}) ([]*bookResolver, error) {
	books, err := r.catalog.AllBooks(ctx, args.Author, args.Genre)
	if err != nil {
		return nil, r.resolverError(err, nil)
	}
	resolvers := make([]*bookResolver, 0, len(books))
	for _, b := range books {
		resolvers = append(resolvers, &bookResolver{b: b, catalog: r.catalog})
	}
	return resolvers, nil
}

func (r *Resolver) AllAuthors(ctx context.Context) ([]*authorResolver, error) {
	authors, err := r.catalog.AllAuthors(ctx)
	if err != nil {
		return nil, r.resolverError(err, nil)
	}
	resolvers := make([]*authorResolver, 0, len(authors))
	for _, a := range authors {
		resolvers = append(resolvers, &authorResolver{a: a, catalog: r.catalog})
	}
	return resolvers, nil
}

// Me returns the authenticated user, or null for anonymous requests.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	user := middleware.UserFromContext(ctx)
	if user == nil {
		return nil, nil
	}
	return &userResolver{u: user}, nil
}

// ── Mutation ─────────────────────────────────────────────────────────────────

func (r *Resolver) AddBook(ctx context.Context, args struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}) (*bookResolver, error) {
	user := middleware.UserFromContext(ctx)
	invalidArgs := map[string]interface{}{
		"title":     args.Title,
		"author":    args.Author,
		"published": args.Published,
		"genres":    args.Genres,
	}

	book, err := r.catalog.AddBook(ctx, user, ports.AddBookInput{
		Title:     args.Title,
		Author:    args.Author,
		Published: int(args.Published),
		Genres:    args.Genres,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			metrics.AuthFailuresTotal.WithLabelValues("not_authenticated").Inc()
			return nil, r.resolverError(err, nil)
		}
		return nil, r.resolverError(err, invalidArgs)
	}

	metrics.BooksAddedTotal.Inc()
	return &bookResolver{b: book, catalog: r.catalog}, nil
}

func (r *Resolver) EditAuthor(ctx context.Context, args struct {
	Name string
	Born int32
}) (*authorResolver, error) {
	user := middleware.UserFromContext(ctx)

	author, err := r.catalog.EditAuthor(ctx, user, args.Name, int(args.Born))
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			metrics.AuthFailuresTotal.WithLabelValues("not_authenticated").Inc()
		}
		return nil, r.resolverError(err, nil)
	}

	metrics.AuthorsEditedTotal.Inc()
	return &authorResolver{a: author, catalog: r.catalog}, nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct {
	Username      string
	FavoriteGenre string
}) (*userResolver, error) {
	user, err := r.auth.CreateUser(ctx, args.Username, args.FavoriteGenre)
	if err != nil {
		return nil, r.resolverError(err, map[string]interface{}{"username": args.Username})
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Username string
	Password string
}) (*tokenResolver, error) {
	token, err := r.auth.Login(ctx, args.Username, args.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, r.resolverError(err, nil)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &tokenResolver{value: token}, nil
}
