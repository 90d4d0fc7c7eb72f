package domain

import "errors"

var ErrAuthorNotFound = errors.New("author not found")
var ErrBookExists = errors.New("book already exists")
var ErrInvalidInput = errors.New("invalid input")

// Author is created implicitly the first time a book names it and is never
// deleted. Born is nil until set by an edit.
type Author struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
	Born *int   `json:"born,omitempty" bson:"born,omitempty"`
}

// Book is immutable once persisted. AuthorID references an existing Author;
// the author is auto-created before the book when no matching name exists.
type Book struct {
	ID        string   `json:"id" bson:"_id,omitempty"`
	Title     string   `json:"title" bson:"title"`
	Published int      `json:"published" bson:"published"`
	Genres    []string `json:"genres" bson:"genres"`
	AuthorID  string   `json:"author_id" bson:"author"`
}
