package search

import (
	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"github.com/heartmarshall/exhibit-backend/internal/service/access"
)

// DefaultResultLimit bounds a result page when no limit is configured.
const DefaultResultLimit = 1000

// Assemble returns the first limit entries of matches visible to caller,
// in set order. matches is left untouched. A limit <= 0 selects
// DefaultResultLimit.
func Assemble(matches *ScratchSet, caller domain.Caller, limit int) []domain.Match {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	out := make([]domain.Match, 0, min(limit, matches.Len()))
	for m := range matches.All() {
		if !access.IsVisible(m.Item, caller) {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out
}
