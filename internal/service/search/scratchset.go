package search

import (
	"iter"
	"slices"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// ScratchSet is the request-scoped collection of matched items, keyed by
// (library, item) and kept in insertion order. It is not safe for
// concurrent use.
type ScratchSet struct {
	index   map[domain.ItemKey]*scratchEntry
	entries []*scratchEntry
	nextSeq int
}

type scratchEntry struct {
	item   domain.Item
	labels []string
	seq    int
}

// addLabel records label as the entry's most recent match. A label already
// on the entry moves to the end instead of repeating.
func (e *scratchEntry) addLabel(label string) {
	if label == "" {
		return
	}
	if i := slices.Index(e.labels, label); i >= 0 {
		e.labels = slices.Delete(e.labels, i, i+1)
	}
	e.labels = append(e.labels, label)
}

// NewScratchSet returns an empty set with room for sizeHint entries.
func NewScratchSet(sizeHint int) *ScratchSet {
	return &ScratchSet{
		index:   make(map[domain.ItemKey]*scratchEntry, sizeHint),
		entries: make([]*scratchEntry, 0, sizeHint),
	}
}

// Insert adds item under label. An item already in the set is not
// duplicated; the label becomes the last of its label list instead. An empty
// label records the item without a label.
func (s *ScratchSet) Insert(item domain.Item, label string) {
	key := item.Key()
	if e, ok := s.index[key]; ok {
		e.addLabel(label)
		return
	}

	e := &scratchEntry{item: item, seq: s.nextSeq}
	s.nextSeq++
	e.addLabel(label)
	s.index[key] = e
	s.entries = append(s.entries, e)
}

// UnionWith inserts every entry of other, in other's order.
func (s *ScratchSet) UnionWith(other *ScratchSet) {
	for _, oe := range other.entries {
		if len(oe.labels) == 0 {
			s.Insert(oe.item, "")
			continue
		}
		for _, label := range oe.labels {
			s.Insert(oe.item, label)
		}
	}
}

// IntersectWith keeps only the entries whose key is also in other, appending
// other's labels to the survivors. Survivors keep their order in s. The
// smaller of the two sets is scanned and the larger one probed.
func (s *ScratchSet) IntersectWith(other *ScratchSet) {
	kept := make([]*scratchEntry, 0, min(len(s.entries), len(other.entries)))

	if len(s.entries) <= len(other.entries) {
		for _, e := range s.entries {
			if oe, ok := other.index[e.item.Key()]; ok {
				kept = append(kept, e.merge(oe))
			}
		}
	} else {
		for _, oe := range other.entries {
			if e, ok := s.index[oe.item.Key()]; ok {
				kept = append(kept, e.merge(oe))
			}
		}
		slices.SortFunc(kept, func(a, b *scratchEntry) int { return a.seq - b.seq })
	}

	index := make(map[domain.ItemKey]*scratchEntry, len(kept))
	for _, e := range kept {
		index[e.item.Key()] = e
	}
	s.index = index
	s.entries = kept
}

func (e *scratchEntry) merge(other *scratchEntry) *scratchEntry {
	for _, label := range other.labels {
		e.addLabel(label)
	}
	return e
}

// Len returns the number of distinct items in the set.
func (s *ScratchSet) Len() int {
	return len(s.entries)
}

// Contains reports whether the item with key is in the set.
func (s *ScratchSet) Contains(key domain.ItemKey) bool {
	_, ok := s.index[key]
	return ok
}

// All iterates the set in insertion order. Each yielded Match owns its
// label slice. The sequence can be ranged over any number of times.
func (s *ScratchSet) All() iter.Seq[domain.Match] {
	return func(yield func(domain.Match) bool) {
		for _, e := range s.entries {
			if !yield(domain.Match{Item: e.item, Keywords: slices.Clone(e.labels)}) {
				return
			}
		}
	}
}
