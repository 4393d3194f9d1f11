package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

type keywordIndex interface {
	LookupKeyword(ctx context.Context, label string) ([]domain.KeywordHit, error)
	LookupAll(ctx context.Context) ([]domain.Item, error)
}

// errEmptyLookup cancels the remaining lookups of an ALL search once one
// keyword matched nothing.
var errEmptyLookup = errors.New("keyword matched nothing")

// Engine turns keywords into a ScratchSet of matches. It applies no
// visibility rules.
type Engine struct {
	index keywordIndex
	log   *slog.Logger
}

// NewEngine creates an Engine over a keyword index.
func NewEngine(log *slog.Logger, index keywordIndex) *Engine {
	return &Engine{
		index: index,
		log:   log.With("service", "search_engine"),
	}
}

// Search matches keywords under mode. Keywords are deduplicated
// case-insensitively and blanks dropped; when none remain every catalog
// item matches. ANY unions the per-keyword matches in keyword order. ALL
// intersects them, keeping the first keyword's order, so the result does
// not depend on keyword order. Any lookup error aborts the search. An
// unknown mode is rejected before any lookup.
func (e *Engine) Search(ctx context.Context, keywords []string, mode domain.RestrictionMode) (*ScratchSet, error) {
	if !mode.IsValid() {
		return nil, domain.NewValidationError("restriction", "must be ANY or ALL")
	}

	keywords = dedupeKeywords(keywords)
	if len(keywords) == 0 {
		return e.matchAll(ctx)
	}

	sets, err := e.lookupAll(ctx, keywords, mode)
	if errors.Is(err, errEmptyLookup) {
		return NewScratchSet(0), nil
	}
	if err != nil {
		return nil, err
	}

	var result *ScratchSet
	switch mode {
	case domain.RestrictionAll:
		result = sets[0]
		for _, next := range sets[1:] {
			if result.Len() == 0 {
				break
			}
			result.IntersectWith(next)
		}
	case domain.RestrictionAny:
		result = NewScratchSet(sets[0].Len())
		for _, next := range sets {
			result.UnionWith(next)
		}
	}

	e.log.DebugContext(ctx, "keywords matched",
		slog.Any("keywords", keywords),
		slog.String("mode", mode.String()),
		slog.Int("matches", result.Len()),
	)

	return result, nil
}

// lookupAll issues one lookup per keyword concurrently and returns the sets
// in keyword order.
func (e *Engine) lookupAll(ctx context.Context, keywords []string, mode domain.RestrictionMode) ([]*ScratchSet, error) {
	sets := make([]*ScratchSet, len(keywords))

	g, gctx := errgroup.WithContext(ctx)
	for i, kw := range keywords {
		g.Go(func() error {
			hits, err := e.index.LookupKeyword(gctx, kw)
			if err != nil {
				return fmt.Errorf("lookup keyword %q: %w", kw, err)
			}
			if len(hits) == 0 && mode == domain.RestrictionAll {
				return errEmptyLookup
			}

			set := NewScratchSet(len(hits))
			for _, h := range hits {
				set.Insert(h.Item, h.Label)
			}
			sets[i] = set
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

func (e *Engine) matchAll(ctx context.Context) (*ScratchSet, error) {
	items, err := e.index.LookupAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup all items: %w", err)
	}

	set := NewScratchSet(len(items))
	for _, item := range items {
		set.Insert(item, "")
	}
	return set, nil
}

// dedupeKeywords collapses whitespace in each keyword and drops blanks and
// case-insensitive repeats, keeping the first spelling of each.
func dedupeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		collapsed := strings.Join(strings.Fields(kw), " ")
		norm := domain.NormalizeKeyword(collapsed)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, collapsed)
	}
	return out
}
