package browse

import (
	"context"
	"fmt"
)

// ListKeywords returns the keyword vocabulary in ascending order.
func (s *Service) ListKeywords(ctx context.Context) ([]string, error) {
	labels, err := s.catalog.ListKeywords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	return labels, nil
}
