// Package browse serves roll listings, roll contents, item detail and the
// keyword vocabulary, each filtered by what the caller may see.
package browse

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

type catalogRepo interface {
	ListRolls(ctx context.Context) ([]domain.Roll, error)
	GetRoll(ctx context.Context, lib domain.LibraryID, id domain.RollID) (*domain.Roll, error)
	ListRollItems(ctx context.Context, lib domain.LibraryID, id domain.RollID, limit int) ([]domain.Item, error)
	GetItem(ctx context.Context, key domain.ItemKey) (*domain.Item, error)
	KeywordsByItems(ctx context.Context, keys []domain.ItemKey) ([]domain.ItemKeyword, error)
	ListKeywords(ctx context.Context) ([]string, error)
}

type callerResolver interface {
	Resolve(ctx context.Context, identity string) (domain.Caller, error)
}

// RollContents is a visible roll and its items in capture order.
type RollContents struct {
	Roll  domain.Roll
	Items []domain.Item
	// Truncated is set when the roll holds more items than the result limit.
	Truncated bool
}

// ItemDetail is a single item with all of its keyword labels.
type ItemDetail struct {
	Item     domain.Item
	Keywords []string
}

// Service provides catalog browsing.
type Service struct {
	catalog catalogRepo
	callers callerResolver
	limit   int
	log     *slog.Logger
}

// NewService creates a browse Service. limit caps the items returned for one
// roll.
func NewService(log *slog.Logger, catalog catalogRepo, callers callerResolver, limit int) *Service {
	return &Service{
		catalog: catalog,
		callers: callers,
		limit:   limit,
		log:     log.With("service", "browse"),
	}
}
