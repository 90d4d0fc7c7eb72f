package graphqlapi

import (
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// MustParseSchema parses the SDL against the resolver method set. It panics on
// a mismatch, which is the desired startup behaviour.
func MustParseSchema(resolver *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, resolver)
}

// NewHandler returns the HTTP handler for the /graphql endpoint. The handler
// executes queries with the request's context, so the authenticated user set
// by the auth middleware is visible to resolvers.
func NewHandler(schema *graphql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}
