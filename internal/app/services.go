package app

import (
	"log/slog"

	"github.com/heartmarshall/exhibit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/exhibit-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/exhibit-backend/internal/adapter/postgres/membership"
	"github.com/heartmarshall/exhibit-backend/internal/config"
	"github.com/heartmarshall/exhibit-backend/internal/service/access"
	"github.com/heartmarshall/exhibit-backend/internal/service/browse"
	"github.com/heartmarshall/exhibit-backend/internal/service/search"
)

// Services is the service graph shared by the server and the CLI.
type Services struct {
	Catalog  *catalog.Repo
	Resolver *access.Resolver
	Search   *search.Service
	Browse   *browse.Service
}

// NewServices builds the repositories and services on top of q.
func NewServices(logger *slog.Logger, q postgres.Querier, cfg *config.Config) *Services {
	catalogRepo := catalog.New(q)
	resolver := access.NewResolver(logger, membership.New(q), cfg.Search.AnonymousIdentity)
	engine := search.NewEngine(logger, catalogRepo)

	return &Services{
		Catalog:  catalogRepo,
		Resolver: resolver,
		Search:   search.NewService(logger, resolver, engine, cfg.Search.ResultLimit),
		Browse:   browse.NewService(logger, catalogRepo, resolver, cfg.Search.ResultLimit),
	}
}
