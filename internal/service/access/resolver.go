// Package access resolves who is asking and what they may see.
package access

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

type membershipRepo interface {
	GroupIDsByUsername(ctx context.Context, username string) ([]domain.GroupID, error)
}

// Resolver turns a request identity into a domain.Caller.
type Resolver struct {
	memberships membershipRepo
	anonymous   string
	log         *slog.Logger
}

// NewResolver creates a Resolver. anonymousIdentity is the sentinel
// identity of callers who are not logged in.
func NewResolver(log *slog.Logger, memberships membershipRepo, anonymousIdentity string) *Resolver {
	return &Resolver{
		memberships: memberships,
		anonymous:   anonymousIdentity,
		log:         log.With("service", "access"),
	}
}

// AnonymousIdentity returns the sentinel used for callers without a login.
func (r *Resolver) AnonymousIdentity() string {
	return r.anonymous
}

// Resolve builds the Caller for an identity. The anonymous sentinel and the
// empty identity resolve without touching the store and can only see public
// items. Any other identity gets the union of its group memberships, which
// is empty for unknown users.
func (r *Resolver) Resolve(ctx context.Context, identity string) (domain.Caller, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" || identity == r.anonymous {
		return domain.AnonymousCaller(r.anonymous), nil
	}

	groups, err := r.memberships.GroupIDsByUsername(ctx, identity)
	if err != nil {
		return domain.Caller{}, fmt.Errorf("resolve groups of %q: %w", identity, err)
	}

	r.log.DebugContext(ctx, "caller resolved",
		slog.String("identity", identity),
		slog.Int("groups", len(groups)),
	)

	return domain.NewCaller(identity, groups), nil
}

// IsVisible reports whether caller may see item: the item's roll is public
// or its group is one of the caller's groups.
func IsVisible(item domain.Item, caller domain.Caller) bool {
	return caller.CanSee(item.Permission)
}
