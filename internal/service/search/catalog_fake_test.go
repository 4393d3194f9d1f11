package search

import (
	"context"
	"slices"
	"strings"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// fakeCatalog is an in-memory keywordIndex returning rows in (library, item)
// order, like the PostgreSQL catalog.
type fakeCatalog struct {
	items    []domain.Item
	keywords map[domain.ItemKey][]string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{keywords: map[domain.ItemKey][]string{}}
}

func (c *fakeCatalog) add(lib, id int64, perm domain.Permission, keywords ...string) domain.Item {
	item := domain.Item{LibraryID: domain.LibraryID(lib), ID: domain.ItemID(id), Permission: perm}
	c.items = append(c.items, item)
	slices.SortFunc(c.items, compareItems)
	c.keywords[item.Key()] = keywords
	return item
}

func compareItems(a, b domain.Item) int {
	if a.LibraryID != b.LibraryID {
		return int(a.LibraryID - b.LibraryID)
	}
	return int(a.ID - b.ID)
}

func (c *fakeCatalog) LookupKeyword(_ context.Context, label string) ([]domain.KeywordHit, error) {
	hits := []domain.KeywordHit{}
	for _, item := range c.items {
		for _, kw := range c.keywords[item.Key()] {
			if strings.EqualFold(kw, label) {
				hits = append(hits, domain.KeywordHit{Item: item, Label: kw})
				break
			}
		}
	}
	return hits, nil
}

func (c *fakeCatalog) LookupAll(context.Context) ([]domain.Item, error) {
	return slices.Clone(c.items), nil
}

// fakeMemberships implements the access resolver's membership store.
type fakeMemberships map[string][]domain.GroupID

func (m fakeMemberships) GroupIDsByUsername(_ context.Context, username string) ([]domain.GroupID, error) {
	return m[username], nil
}
