package graphqlapi

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/libris/library-api/internal/core/domain"
)

// The schema must parse against the resolver method set, the same check the
// server performs at startup.
func TestParseSchema(t *testing.T) {
	auth := &stubAuth{users: make(map[string]*domain.User)}
	MustParseSchema(NewResolver(newStubCatalog(), auth, zerolog.Nop()))
}
