package ports

import (
	"context"

	"github.com/libris/library-api/internal/core/domain"
)

// AddBookInput carries the arguments of the addBook mutation. Validation tags
// replace the schema-level constraints of the document store.
type AddBookInput struct {
	Title     string   `validate:"required,min=2"`
	Author    string   `validate:"required,min=4"`
	Published int      `validate:"gte=0"`
	Genres    []string `validate:"required,min=1,dive,required"`
}

type CatalogService interface {
	BookCount(ctx context.Context) (int64, error)
	AuthorCount(ctx context.Context) (int64, error)
	AllBooks(ctx context.Context, author, genre *string) ([]*domain.Book, error)
	AllAuthors(ctx context.Context) ([]*domain.Author, error)
	AuthorByID(ctx context.Context, id string) (*domain.Author, error)
	BookCountByAuthor(ctx context.Context, authorID string) (int64, error)
	AddBook(ctx context.Context, user *domain.User, input AddBookInput) (*domain.Book, error)
	EditAuthor(ctx context.Context, user *domain.User, name string, born int) (*domain.Author, error)
}
