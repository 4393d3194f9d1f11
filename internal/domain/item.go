package domain

import (
	"fmt"
	"time"
)

// LibraryID identifies an imported photo library.
type LibraryID int64

// ItemID identifies an item within its library.
type ItemID int64

// RollID identifies a roll within its library.
type RollID int64

// ItemKey is the unique identity of a catalog item across libraries.
type ItemKey struct {
	Library LibraryID
	Item    ItemID
}

func (k ItemKey) String() string {
	return fmt.Sprintf("%d/%d", k.Library, k.Item)
}

// Item is one photo or video in the catalog, joined with its roll's
// permission. Items are created by catalog ingestion and never modified by
// the search engine.
type Item struct {
	LibraryID  LibraryID
	ID         ItemID
	RollID     RollID
	RollName   string
	GUID       string
	Caption    string
	Comment    string
	Rating     int
	MediaKind  MediaKind
	CapturedAt time.Time
	ThumbPath  string
	FullPath   string

	// Permission is inherited from the item's roll.
	Permission Permission
}

// Key returns the (library, item) identity of the item.
func (i Item) Key() ItemKey {
	return ItemKey{Library: i.LibraryID, Item: i.ID}
}

// Match is an item selected by a search together with the keyword labels
// it was matched through, in match order.
type Match struct {
	Item     Item
	Keywords []string
}

// MatchedVia returns the most recently matched keyword label, or "" when
// the item was selected without a keyword.
func (m Match) MatchedVia() string {
	if len(m.Keywords) == 0 {
		return ""
	}
	return m.Keywords[len(m.Keywords)-1]
}
