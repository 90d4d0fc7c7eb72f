package ports

import (
	"context"

	"github.com/libris/library-api/internal/core/domain"
)

// AuthorRepository persists authors.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) (*domain.Author, error)
	FindByName(ctx context.Context, name string) (*domain.Author, error)
	FindByID(ctx context.Context, id string) (*domain.Author, error)
	FindAll(ctx context.Context) ([]*domain.Author, error)
	Count(ctx context.Context) (int64, error)
	// SetBorn updates the birth year of the author with the given id and
	// returns the updated record.
	SetBorn(ctx context.Context, id string, born int) (*domain.Author, error)
}

// BookRepository persists books.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindAll(ctx context.Context) ([]*domain.Book, error)
	Count(ctx context.Context) (int64, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}
