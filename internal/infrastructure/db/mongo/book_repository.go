package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/libris/library-api/internal/core/domain"
)

const bookCollection = "books"

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(bookCollection)}
}

// Books store the author as an ObjectID reference into the authors
// collection.
type mongoBook struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Published int                `bson:"published"`
	Genres    []string           `bson:"genres"`
	Author    primitive.ObjectID `bson:"author"`
}

func (b mongoBook) toDomain() *domain.Book {
	return &domain.Book{
		ID:        b.ID.Hex(),
		Title:     b.Title,
		Published: b.Published,
		Genres:    b.Genres,
		AuthorID:  b.Author.Hex(),
	}
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	authorID, err := primitive.ObjectIDFromHex(book.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("insert book: bad author reference %q", book.AuthorID)
	}

	doc := mongoBook{
		Title:     book.Title,
		Published: book.Published,
		Genres:    book.Genres,
		Author:    authorID,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrBookExists
		}
		return nil, fmt.Errorf("insert book: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *BookRepository) FindAll(ctx context.Context) ([]*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cur.Close(ctx)

	books := []*domain.Book{}
	for cur.Next(ctx) {
		var doc mongoBook
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		books = append(books, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *BookRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return 0, nil
	}
	return r.coll.CountDocuments(ctx, bson.M{"author": oid})
}

// EnsureIndexes creates the unique index on title and the author reference
// index used by per-author counts.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "author", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
