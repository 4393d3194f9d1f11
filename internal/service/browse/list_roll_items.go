package browse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// ListRollItems returns a roll and its items. A roll the caller may not see
// is reported as domain.ErrNotFound.
func (s *Service) ListRollItems(ctx context.Context, lib domain.LibraryID, id domain.RollID, identity string) (*RollContents, error) {
	caller, err := s.callers.Resolve(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("list roll items: %w", err)
	}

	roll, err := s.catalog.GetRoll(ctx, lib, id)
	if err != nil {
		return nil, fmt.Errorf("list roll items: %w", err)
	}
	if !caller.CanSee(roll.Permission) {
		s.log.DebugContext(ctx, "roll hidden from caller",
			slog.Int64("library_id", int64(lib)),
			slog.Int64("roll_id", int64(id)),
			slog.String("identity", caller.Identity()),
		)
		return nil, fmt.Errorf("list roll items: roll %d/%d: %w", lib, id, domain.ErrNotFound)
	}

	// One row past the limit tells whether the roll was truncated.
	fetch := 0
	if s.limit > 0 {
		fetch = s.limit + 1
	}
	items, err := s.catalog.ListRollItems(ctx, lib, id, fetch)
	if err != nil {
		return nil, fmt.Errorf("list roll items: %w", err)
	}

	contents := &RollContents{Roll: *roll, Items: items}
	if s.limit > 0 && len(items) > s.limit {
		contents.Items = items[:s.limit]
		contents.Truncated = true
	}
	return contents, nil
}
