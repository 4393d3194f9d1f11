package browse

import (
	"context"
	"fmt"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// GetItem returns one item with its keywords. Missing and hidden items are
// both reported as domain.ErrNotFound.
func (s *Service) GetItem(ctx context.Context, key domain.ItemKey, identity string) (*ItemDetail, error) {
	caller, err := s.callers.Resolve(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	item, err := s.catalog.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !caller.CanSee(item.Permission) {
		return nil, fmt.Errorf("get item: item %s: %w", key, domain.ErrNotFound)
	}

	kws, err := s.catalog.KeywordsByItems(ctx, []domain.ItemKey{key})
	if err != nil {
		return nil, fmt.Errorf("get item keywords: %w", err)
	}

	labels := make([]string, 0, len(kws))
	for _, kw := range kws {
		labels = append(labels, kw.Label)
	}

	return &ItemDetail{Item: *item, Keywords: labels}, nil
}
