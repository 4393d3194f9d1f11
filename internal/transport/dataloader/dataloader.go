// Package dataloader provides per-request DataLoaders that batch the
// keyword lists of rendered items into a single SQL call. Loaders call the
// catalog repository directly; visibility is decided before an item is
// rendered, so loaders never see hidden items.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// DefaultBatchCapacity matches the default search result limit, so a full
// result page loads its keywords in one query.
const DefaultBatchCapacity = 1000

var batchWait = 2 * time.Millisecond

type keywordRepo interface {
	KeywordsByItems(ctx context.Context, keys []domain.ItemKey) ([]domain.ItemKeyword, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	KeywordsByItem *dataloader.Loader[domain.ItemKey, []string]
}

// NewLoaders creates a new set of DataLoaders backed by the given repository.
// Must be called per-request (loaders cache results within a single request).
// batchCapacity bounds the keys per query; zero or less selects
// DefaultBatchCapacity.
func NewLoaders(repo keywordRepo, batchCapacity int) *Loaders {
	if batchCapacity <= 0 {
		batchCapacity = DefaultBatchCapacity
	}
	return &Loaders{
		KeywordsByItem: dataloader.NewBatchedLoader(
			newKeywordsBatchFn(repo),
			dataloader.WithWait[domain.ItemKey, []string](batchWait),
			dataloader.WithBatchCapacity[domain.ItemKey, []string](batchCapacity),
		),
	}
}

func newKeywordsBatchFn(repo keywordRepo) dataloader.BatchFunc[domain.ItemKey, []string] {
	return func(ctx context.Context, keys []domain.ItemKey) []*dataloader.Result[[]string] {
		rows, err := repo.KeywordsByItems(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[[]string], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[[]string]{Error: err}
			}
			return results
		}

		grouped := make(map[domain.ItemKey][]string, len(keys))
		for _, row := range rows {
			grouped[row.Key] = append(grouped[row.Key], row.Label)
		}

		results := make([]*dataloader.Result[[]string], len(keys))
		for i, key := range keys {
			labels := grouped[key]
			if labels == nil {
				labels = []string{}
			}
			results[i] = &dataloader.Result[[]string]{Data: labels}
		}
		return results
	}
}

// LoadKeywords returns the keyword lists for keys, in key order, through a
// single batch.
func (l *Loaders) LoadKeywords(ctx context.Context, keys []domain.ItemKey) ([][]string, error) {
	if len(keys) == 0 {
		return [][]string{}, nil
	}
	lists, errs := l.KeywordsByItem.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return lists, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context; is the middleware configured?")
	}
	return l
}
