package browse

import (
	"context"
	"fmt"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// ListRolls returns the rolls visible to identity, newest first.
func (s *Service) ListRolls(ctx context.Context, identity string) ([]domain.Roll, error) {
	caller, err := s.callers.Resolve(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("list rolls: %w", err)
	}

	rolls, err := s.catalog.ListRolls(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rolls: %w", err)
	}

	visible := make([]domain.Roll, 0, len(rolls))
	for _, r := range rolls {
		if caller.CanSee(r.Permission) {
			visible = append(visible, r)
		}
	}
	return visible, nil
}
