package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/libris/library-api/internal/core/domain"
	"github.com/libris/library-api/internal/core/ports"
)

// CatalogService implements the book/author catalog operations. Reads are
// open to anonymous callers; writes require an authenticated user.
type CatalogService struct {
	authors  ports.AuthorRepository
	books    ports.BookRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewCatalogService(authors ports.AuthorRepository, books ports.BookRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		authors:  authors,
		books:    books,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *CatalogService) BookCount(ctx context.Context) (int64, error) {
	return s.books.Count(ctx)
}

func (s *CatalogService) AuthorCount(ctx context.Context) (int64, error) {
	return s.authors.Count(ctx)
}

// AllBooks returns every book. The author and genre arguments are part of
// the public contract but are currently ignored; the full set is returned
// regardless of what the caller passes.
func (s *CatalogService) AllBooks(ctx context.Context, author, genre *string) ([]*domain.Book, error) {
	_ = author
	_ = genre
	return s.books.FindAll(ctx)
}

func (s *CatalogService) AllAuthors(ctx context.Context) ([]*domain.Author, error) {
	return s.authors.FindAll(ctx)
}

func (s *CatalogService) AuthorByID(ctx context.Context, id string) (*domain.Author, error) {
	return s.authors.FindByID(ctx, id)
}

// BookCountByAuthor counts the books referencing the given author.
func (s *CatalogService) BookCountByAuthor(ctx context.Context, authorID string) (int64, error) {
	return s.books.CountByAuthor(ctx, authorID)
}

// AddBook inserts a book for an authenticated user, creating the author
// first when no author with that name exists. The two inserts are separate
// writes with no surrounding transaction: a book that fails validation or
// persistence after the author insert leaves the new author committed.
func (s *CatalogService) AddBook(ctx context.Context, user *domain.User, input ports.AddBookInput) (*domain.Book, error) {
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationMessage(err))
	}

	author, err := s.authors.FindByName(ctx, input.Author)
	if err != nil {
		if !errors.Is(err, domain.ErrAuthorNotFound) {
			return nil, err
		}
		author, err = s.authors.Create(ctx, &domain.Author{Name: input.Author})
		if err != nil {
			return nil, err
		}
		s.logger.Info().Str("author", author.Name).Msg("author auto-created")
	}

	book, err := s.books.Create(ctx, &domain.Book{
		Title:     input.Title,
		Published: input.Published,
		Genres:    input.Genres,
		AuthorID:  author.ID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBookExists) {
			return nil, fmt.Errorf("%w: a book with that title already exists", domain.ErrInvalidInput)
		}
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to insert book")
		return nil, err
	}

	s.logger.Info().Str("title", book.Title).Str("author", author.Name).Msg("book added")
	return book, nil
}

// EditAuthor sets the birth year of an existing author. A name that matches
// no author is a clean not-found failure, not a write.
func (s *CatalogService) EditAuthor(ctx context.Context, user *domain.User, name string, born int) (*domain.Author, error) {
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}

	author, err := s.authors.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	updated, err := s.authors.SetBorn(ctx, author.ID, born)
	if err != nil {
		s.logger.Error().Err(err).Str("author", name).Msg("failed to update author")
		return nil, err
	}

	s.logger.Info().Str("author", name).Int("born", born).Msg("author updated")
	return updated, nil
}

// validationMessage flattens a validator error into a single human-readable
// line, mirroring the messages the API used to emit from schema validation.
func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	out := msgs[0]
	for _, m := range msgs[1:] {
		out += "; " + m
	}
	return out
}
