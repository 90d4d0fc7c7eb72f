package graphqlapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/libris/library-api/internal/api/middleware"
	"github.com/libris/library-api/internal/core/domain"
	"github.com/libris/library-api/internal/core/ports"
)

// stubCatalog is an in-memory ports.CatalogService.
type stubCatalog struct {
	authors []*domain.Author
	books   []*domain.Book
	nextID  int
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{nextID: 1}
}

func (s *stubCatalog) id(prefix string) string {
	id := prefix + strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func (s *stubCatalog) BookCount(context.Context) (int64, error) {
	return int64(len(s.books)), nil
}

func (s *stubCatalog) AuthorCount(context.Context) (int64, error) {
	return int64(len(s.authors)), nil
}

func (s *stubCatalog) AllBooks(context.Context, *string, *string) ([]*domain.Book, error) {
	return s.books, nil
}

func (s *stubCatalog) AllAuthors(context.Context) ([]*domain.Author, error) {
	return s.authors, nil
}

func (s *stubCatalog) AuthorByID(_ context.Context, id string) (*domain.Author, error) {
	for _, a := range s.authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrAuthorNotFound
}

func (s *stubCatalog) BookCountByAuthor(_ context.Context, authorID string) (int64, error) {
	var n int64
	for _, b := range s.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (s *stubCatalog) AddBook(_ context.Context, user *domain.User, input ports.AddBookInput) (*domain.Book, error) {
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	var author *domain.Author
	for _, a := range s.authors {
		if a.Name == input.Author {
			author = a
		}
	}
	if author == nil {
		author = &domain.Author{ID: s.id("a"), Name: input.Author}
		s.authors = append(s.authors, author)
	}

	book := &domain.Book{
		ID:        s.id("b"),
		Title:     input.Title,
		Published: input.Published,
		Genres:    input.Genres,
		AuthorID:  author.ID,
	}
	s.books = append(s.books, book)
	return book, nil
}

func (s *stubCatalog) EditAuthor(_ context.Context, user *domain.User, name string, born int) (*domain.Author, error) {
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	for _, a := range s.authors {
		if a.Name == name {
			a.Born = &born
			return a, nil
		}
	}
	return nil, domain.ErrAuthorNotFound
}

type stubAuth struct {
	users map[string]*domain.User // keyed by username
}

func (s *stubAuth) Login(_ context.Context, username, password string) (string, error) {
	if _, ok := s.users[username]; !ok || password != "letmein" {
		return "", domain.ErrWrongCredentials
	}
	return "signed-token", nil
}

func (s *stubAuth) CreateUser(_ context.Context, username, favoriteGenre string) (*domain.User, error) {
	if _, ok := s.users[username]; ok {
		return nil, domain.ErrUserExists
	}
	user := &domain.User{ID: username, Username: username, FavoriteGenre: favoriteGenre}
	s.users[username] = user
	return user, nil
}

func (s *stubAuth) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrInvalidToken
}

func newTestResolver() (*Resolver, *stubCatalog, *stubAuth) {
	catalog := newStubCatalog()
	auth := &stubAuth{users: make(map[string]*domain.User)}
	return NewResolver(catalog, auth, zerolog.Nop()), catalog, auth
}

func authedContext(user *domain.User) context.Context {
	return middleware.WithUser(context.Background(), user)
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var gerr *gqlError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected a typed GraphQL error, got %T: %v", err, err)
	}
	return gerr.Extensions()["code"].(string)
}

func TestResolver_Me(t *testing.T) {
	r, _, _ := newTestResolver()

	me, err := r.Me(context.Background())
	if err != nil {
		t.Fatalf("Me returned error for anonymous request: %v", err)
	}
	if me != nil {
		t.Fatalf("expected null me for anonymous request")
	}

	alice := &domain.User{ID: "1", Username: "alice", FavoriteGenre: "refactoring"}
	me, err = r.Me(authedContext(alice))
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if me == nil || me.Username() != "alice" || me.FavoriteGenre() != "refactoring" {
		t.Fatalf("unexpected me resolver: %+v", me)
	}
}

func TestResolver_AddBook_Unauthenticated(t *testing.T) {
	r, catalog, _ := newTestResolver()

	_, err := r.AddBook(context.Background(), struct {
		Title     string
		Author    string
		Published int32
		Genres    []string
	}{Title: "X", Author: "New Author", Published: 2020, Genres: []string{"a"}})

	if err == nil {
		t.Fatalf("expected error for unauthenticated addBook")
	}
	if code := errorCode(t, err); code != "UNAUTHENTICATED" {
		t.Fatalf("expected UNAUTHENTICATED, got %s", code)
	}
	if len(catalog.books) != 0 || len(catalog.authors) != 0 {
		t.Fatalf("unauthenticated addBook must not write")
	}
}

func TestResolver_AddBook(t *testing.T) {
	r, _, _ := newTestResolver()
	ctx := authedContext(&domain.User{ID: "1", Username: "alice"})

	book, err := r.AddBook(ctx, struct {
		Title     string
		Author    string
		Published int32
		Genres    []string
	}{Title: "X", Author: "New Author", Published: 2020, Genres: []string{"a"}})
	if err != nil {
		t.Fatalf("AddBook returned error: %v", err)
	}

	if book.Title() != "X" || book.Published() != 2020 {
		t.Fatalf("unexpected book resolver: title=%s published=%d", book.Title(), book.Published())
	}

	author, err := book.Author(ctx)
	if err != nil {
		t.Fatalf("Author resolution failed: %v", err)
	}
	if author.Name() != "New Author" {
		t.Fatalf("unexpected author: %s", author.Name())
	}
	if author.Born() != nil {
		t.Fatalf("expected born to be null on auto-created author")
	}
	if n, err := author.BookCount(ctx); err != nil || n != 1 {
		t.Fatalf("expected bookCount 1, got %d (err %v)", n, err)
	}
}

func TestResolver_AddBook_InvalidInput(t *testing.T) {
	r, _, _ := newTestResolver()
	ctx := authedContext(&domain.User{ID: "1", Username: "alice"})

	_, err := r.AddBook(ctx, struct {
		Title     string
		Author    string
		Published int32
		Genres    []string
	}{Title: "", Author: "New Author", Published: 2020, Genres: []string{"a"}})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if code := errorCode(t, err); code != "BAD_USER_INPUT" {
		t.Fatalf("expected BAD_USER_INPUT, got %s", code)
	}

	var gerr *gqlError
	errors.As(err, &gerr)
	if _, ok := gerr.Extensions()["invalidArgs"]; !ok {
		t.Fatalf("expected offending arguments in extensions, got %v", gerr.Extensions())
	}
}

func TestResolver_EditAuthor_NotFound(t *testing.T) {
	r, _, _ := newTestResolver()
	ctx := authedContext(&domain.User{ID: "1", Username: "alice"})

	_, err := r.EditAuthor(ctx, struct {
		Name string
		Born int32
	}{Name: "Nobody", Born: 1900})
	if err == nil {
		t.Fatalf("expected error for unknown author")
	}
	if code := errorCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}

func TestResolver_EditAuthor(t *testing.T) {
	r, catalog, _ := newTestResolver()
	ctx := authedContext(&domain.User{ID: "1", Username: "alice"})

	catalog.authors = append(catalog.authors, &domain.Author{ID: "a1", Name: "Robert Martin"})

	author, err := r.EditAuthor(ctx, struct {
		Name string
		Born int32
	}{Name: "Robert Martin", Born: 1952})
	if err != nil {
		t.Fatalf("EditAuthor returned error: %v", err)
	}
	if author.Born() == nil || *author.Born() != 1952 {
		t.Fatalf("expected born 1952, got %v", author.Born())
	}
}

func TestResolver_Login(t *testing.T) {
	r, _, auth := newTestResolver()
	auth.users["alice"] = &domain.User{ID: "1", Username: "alice"}

	token, err := r.Login(context.Background(), struct {
		Username string
		Password string
	}{Username: "alice", Password: "letmein"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token.Value() != "signed-token" {
		t.Fatalf("unexpected token value: %s", token.Value())
	}
}

// Bad password and unknown user produce the identical failure.
func TestResolver_Login_WrongCredentials(t *testing.T) {
	r, _, auth := newTestResolver()
	auth.users["alice"] = &domain.User{ID: "1", Username: "alice"}

	args := []struct{ Username, Password string }{
		{"alice", "wrong"},
		{"nonexistent", "anything"},
	}
	var messages []string
	for _, a := range args {
		_, err := r.Login(context.Background(), struct {
			Username string
			Password string
		}{Username: a.Username, Password: a.Password})
		if err == nil {
			t.Fatalf("expected login failure for %+v", a)
		}
		if code := errorCode(t, err); code != "BAD_USER_INPUT" {
			t.Fatalf("expected BAD_USER_INPUT, got %s", code)
		}
		messages = append(messages, err.Error())
	}
	if messages[0] != messages[1] || messages[0] != "wrong credentials" {
		t.Fatalf("expected identical %q messages, got %v", "wrong credentials", messages)
	}
}

func TestResolver_CreateUser_Duplicate(t *testing.T) {
	r, _, _ := newTestResolver()

	args := struct{ Username, FavoriteGenre string }{"alice", "refactoring"}
	if _, err := r.CreateUser(context.Background(), args); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	_, err := r.CreateUser(context.Background(), args)
	if err == nil {
		t.Fatalf("expected duplicate username failure")
	}
	if code := errorCode(t, err); code != "BAD_USER_INPUT" {
		t.Fatalf("expected BAD_USER_INPUT, got %s", code)
	}
}

func TestResolver_Counts(t *testing.T) {
	r, catalog, _ := newTestResolver()
	ctx := authedContext(&domain.User{ID: "1", Username: "alice"})

	if _, err := catalog.AddBook(ctx, &domain.User{ID: "1"}, ports.AddBookInput{
		Title: "Clean Code", Author: "Robert Martin", Published: 2008, Genres: []string{"refactoring"},
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if n, err := r.BookCount(ctx); err != nil || n != 1 {
		t.Fatalf("expected bookCount 1, got %d (err %v)", n, err)
	}
	if n, err := r.AuthorCount(ctx); err != nil || n != 1 {
		t.Fatalf("expected authorCount 1, got %d (err %v)", n, err)
	}

	books, err := r.AllBooks(ctx, struct {
		Author *string
		Genre  *string
	}{})
	if err != nil || len(books) != 1 {
		t.Fatalf("expected 1 book, got %d (err %v)", len(books), err)
	}
}
