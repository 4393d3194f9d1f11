package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/exhibit-backend/internal/config"
	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"github.com/heartmarshall/exhibit-backend/internal/transport/dataloader"
	"github.com/heartmarshall/exhibit-backend/internal/transport/middleware"
)

type identityValidator interface {
	ValidateIdentity(token string) (string, error)
}

type keywordRepo interface {
	KeywordsByItems(ctx context.Context, keys []domain.ItemKey) ([]domain.ItemKeyword, error)
}

// RouterDeps holds everything the HTTP router serves.
type RouterDeps struct {
	Health  *HealthHandler
	Search  *SearchHandler
	Browse  *BrowseHandler
	Limiter *middleware.RateLimiter
	// Keywords backs the per-request keyword dataloader.
	Keywords keywordRepo
	// KeywordBatch is the dataloader batch capacity; set it to the result
	// limit so one page of results costs one keyword query.
	KeywordBatch int
	// Tokens validates bearer tokens. Nil rejects every token.
	Tokens identityValidator
	CORS   config.CORSConfig
	// SearchRateLimit is the per-caller requests per minute on /api/search.
	SearchRateLimit int
	Logger          *slog.Logger
}

// NewRouter builds the HTTP handler. Probes bypass the API middleware so
// they never depend on identity or rate limits.
func NewRouter(deps RouterDeps) http.Handler {
	api := http.NewServeMux()
	api.Handle("GET /api/search", deps.Limiter.Limit(deps.SearchRateLimit)(http.HandlerFunc(deps.Search.Search)))
	api.HandleFunc("GET /api/rolls", deps.Browse.ListRolls)
	api.HandleFunc("GET /api/libraries/{library}/rolls/{roll}", deps.Browse.GetRoll)
	api.HandleFunc("GET /api/libraries/{library}/items/{item}", deps.Browse.GetItem)
	api.HandleFunc("GET /api/keywords", deps.Browse.ListKeywords)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.Handle("/api/", middleware.Chain(
		middleware.CORS(deps.CORS),
		middleware.Logger(deps.Logger),
		middleware.Identity(deps.Tokens),
		dataloader.Middleware(deps.Keywords, deps.KeywordBatch),
	)(api))

	return middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
	)(mux)
}
