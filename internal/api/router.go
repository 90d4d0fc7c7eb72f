package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/libris/library-api/internal/api/graphqlapi"
	"github.com/libris/library-api/internal/api/middleware"
	"github.com/libris/library-api/internal/core/ports"
	"github.com/libris/library-api/internal/core/service"
	"github.com/libris/library-api/internal/infrastructure/config"
	mongodb "github.com/libris/library-api/internal/infrastructure/db/mongo"
	"github.com/libris/library-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("library"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authorRepo := mongodb.NewAuthorRepository(db)
	bookRepo := mongodb.NewBookRepository(db)

	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	var credentials ports.CredentialVerifier
	if cfg.AuthMode == "bcrypt" {
		credentials = service.NewBcryptVerifier()
	} else {
		credentials = service.NewSharedSecretVerifier(cfg.LoginSecret)
	}

	authService := service.NewAuthService(userRepo, codec, credentials, log)
	catalogService := service.NewCatalogService(authorRepo, bookRepo, log)

	// --- GraphQL endpoint ---
	schema := graphqlapi.MustParseSchema(graphqlapi.NewResolver(catalogService, authService, log))
	gqlHandler := graphqlapi.NewHandler(schema)

	e.POST("/graphql", echo.WrapHandler(gqlHandler), middleware.TokenAuth(authService))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
