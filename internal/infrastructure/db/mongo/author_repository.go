package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/libris/library-api/internal/core/domain"
)

const authorCollection = "authors"

type AuthorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{coll: db.Collection(authorCollection)}
}

type mongoAuthor struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Born *int               `bson:"born,omitempty"`
}

func (a mongoAuthor) toDomain() *domain.Author {
	return &domain.Author{ID: a.ID.Hex(), Name: a.Name, Born: a.Born}
}

// Create inserts a new author. A concurrent insert of the same name resolves
// to the already-stored record instead of an error.
func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAuthor{Name: author.Name, Born: author.Born}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.FindByName(ctx, author.Name)
		}
		return nil, fmt.Errorf("insert author: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AuthorRepository) FindByName(ctx context.Context, name string) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoAuthor
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}

	var doc mongoAuthor
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer cur.Close(ctx)

	authors := []*domain.Author{}
	for cur.Next(ctx) {
		var doc mongoAuthor
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode author: %w", err)
		}
		authors = append(authors, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}
	return authors, nil
}

func (r *AuthorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}

// SetBorn updates the birth year and returns the updated record.
func (r *AuthorRepository) SetBorn(ctx context.Context, id string, born int) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAuthorNotFound
	}

	var doc mongoAuthor
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"born": born}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("update author: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique index on author name.
func (r *AuthorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
