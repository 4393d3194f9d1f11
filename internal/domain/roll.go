package domain

import "time"

// GroupID identifies an access-control group.
type GroupID int64

// NoGroup marks a permission that grants access to no group.
const NoGroup GroupID = 0

// Permission is the visibility scope of a roll and of every item in it.
type Permission struct {
	Public  bool
	GroupID GroupID
}

// Roll is a named collection of items imported together.
type Roll struct {
	LibraryID  LibraryID
	ID         RollID
	Name       string
	Date       time.Time
	PhotoCount int
	KeyPhotoID ItemID
	Permission Permission

	// KeyPhoto is the roll's cover item. Nil when the key photo is missing
	// from the catalog.
	KeyPhoto *Item
}

// Group is an access-control bucket users can belong to.
type Group struct {
	ID          GroupID
	Name        string
	Description string
}
