package domain

// KeywordID identifies a keyword within its library.
type KeywordID int64

// Keyword is a named tag. Keyword IDs are unique per library; the same
// label may exist in several libraries.
type Keyword struct {
	LibraryID LibraryID
	ID        KeywordID
	Label     string
}

// KeywordHit is one row of a keyword lookup: an item tagged with the
// looked-up keyword.
type KeywordHit struct {
	Item      Item
	KeywordID KeywordID
	Label     string
}

// ItemKeyword links an item to one of its keyword labels.
type ItemKeyword struct {
	Key   ItemKey
	Label string
}
