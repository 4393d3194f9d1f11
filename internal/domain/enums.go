package domain

import "strings"

// RestrictionMode selects how multiple keywords are combined in a search.
type RestrictionMode string

const (
	// RestrictionAny matches items tagged with at least one keyword (union).
	RestrictionAny RestrictionMode = "ANY"
	// RestrictionAll matches items tagged with every keyword (intersection).
	RestrictionAll RestrictionMode = "ALL"
)

func (m RestrictionMode) String() string { return string(m) }

func (m RestrictionMode) IsValid() bool {
	switch m {
	case RestrictionAny, RestrictionAll:
		return true
	}
	return false
}

// ParseRestrictionMode converts user input into a RestrictionMode.
// Matching is case-insensitive; an empty string selects RestrictionAny.
// The second return value is false for unrecognized input.
func ParseRestrictionMode(s string) (RestrictionMode, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RestrictionAny, true
	}
	m := RestrictionMode(strings.ToUpper(s))
	if !m.IsValid() {
		return "", false
	}
	return m, true
}

// MediaKind is the type of a catalog item as recorded at import.
type MediaKind string

const (
	MediaKindImage MediaKind = "Image"
	MediaKindMovie MediaKind = "Movie"
)

func (k MediaKind) String() string { return string(k) }

// IsImage reports whether the item is a still image. Everything else is
// presented as a video.
func (k MediaKind) IsImage() bool { return k == MediaKindImage }
