// Package search implements keyword search over the catalog: matching up to
// three keywords under ANY or ALL restriction and returning the matches the
// caller is allowed to see.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"github.com/heartmarshall/exhibit-backend/internal/service/access"
)

type callerResolver interface {
	Resolve(ctx context.Context, identity string) (domain.Caller, error)
}

type matcher interface {
	Search(ctx context.Context, keywords []string, mode domain.RestrictionMode) (*ScratchSet, error)
}

// SearchResult is the outcome of one search.
type SearchResult struct {
	// Keywords are the normalized keywords actually searched for.
	Keywords []string
	Mode     domain.RestrictionMode
	Matches  []domain.Match
}

// Service provides keyword search.
type Service struct {
	callers callerResolver
	engine  matcher
	limit   int
	log     *slog.Logger
}

// NewService creates a search Service. A limit <= 0 selects
// DefaultResultLimit.
func NewService(log *slog.Logger, callers callerResolver, engine matcher, limit int) *Service {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &Service{
		callers: callers,
		engine:  engine,
		limit:   limit,
		log:     log.With("service", "search"),
	}
}

// Search validates the input, resolves the caller, matches the keywords and
// returns at most the configured number of visible matches. Invalid input is
// rejected before any catalog lookup.
func (s *Service) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	mode, _ := domain.ParseRestrictionMode(input.Mode)
	keywords := input.normalizedKeywords()

	caller, err := s.callers.Resolve(ctx, input.Identity)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	set, err := s.engine.Search(ctx, keywords, mode)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	matches := Assemble(set, caller, s.limit)

	s.log.InfoContext(ctx, "search completed",
		slog.String("identity", caller.Identity()),
		slog.Any("keywords", keywords),
		slog.String("mode", mode.String()),
		slog.Int("matched", set.Len()),
		slog.Int("returned", len(matches)),
	)

	return &SearchResult{
		Keywords: keywords,
		Mode:     mode,
		Matches:  matches,
	}, nil
}

// IsVisible reports whether identity may see item.
func (s *Service) IsVisible(ctx context.Context, item domain.Item, identity string) (bool, error) {
	caller, err := s.callers.Resolve(ctx, identity)
	if err != nil {
		return false, fmt.Errorf("is visible: %w", err)
	}
	return access.IsVisible(item, caller), nil
}
