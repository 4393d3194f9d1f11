package domain

import "slices"

// Caller is the resolved identity of a request: who is asking and which
// groups they belong to. It is built once per request and never modified.
type Caller struct {
	identity  string
	anonymous bool
	groups    map[GroupID]struct{}
}

// NewCaller creates a Caller for an identity with the given memberships.
func NewCaller(identity string, groups []GroupID) Caller {
	set := make(map[GroupID]struct{}, len(groups))
	for _, g := range groups {
		if g == NoGroup {
			continue
		}
		set[g] = struct{}{}
	}
	return Caller{identity: identity, groups: set}
}

// AnonymousCaller creates a Caller without memberships that can only see
// public items.
func AnonymousCaller(identity string) Caller {
	return Caller{identity: identity, anonymous: true}
}

// Identity returns the username, or the anonymous sentinel.
func (c Caller) Identity() string { return c.identity }

// IsAnonymous reports whether the caller is not logged in.
func (c Caller) IsAnonymous() bool { return c.anonymous }

// InGroup reports whether the caller is a member of group g.
func (c Caller) InGroup(g GroupID) bool {
	if g == NoGroup {
		return false
	}
	_, ok := c.groups[g]
	return ok
}

// GroupIDs returns the caller's memberships in ascending order.
func (c Caller) GroupIDs() []GroupID {
	ids := make([]GroupID, 0, len(c.groups))
	for g := range c.groups {
		ids = append(ids, g)
	}
	slices.Sort(ids)
	return ids
}

// CanSee reports whether a permission grants the caller access:
// the scope is public, or the caller belongs to its group.
func (c Caller) CanSee(p Permission) bool {
	return p.Public || c.InGroup(p.GroupID)
}
