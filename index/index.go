package index

import (
	"sort"

	"github.com/tsawler/marknav/model"
)

// Index holds one revision's elements partitioned for directional and
// containment queries. It is safe for concurrent readers once built.
type Index struct {
	revision string
	byID     []model.Element
	byCat    map[model.Category][]model.Element
	headings [7][]model.Element
	blocks   []model.Element
}

// Build indexes the element set produced for one document revision.
// The input slice is not retained or modified.
func Build(revision string, els []model.Element) *Index {
	x := &Index{
		revision: revision,
		byID:     make([]model.Element, len(els)),
		byCat:    make(map[model.Category][]model.Element, 16),
	}
	for _, el := range els {
		if id := int(el.ID); id >= 0 && id < len(x.byID) {
			x.byID[id] = el
		}
		x.byCat[el.Category] = append(x.byCat[el.Category], el)
		if el.Category == model.CategoryHeading && el.Level >= 1 && el.Level <= 6 {
			x.headings[el.Level] = append(x.headings[el.Level], el)
		}
		if el.Category.IsBlock() {
			x.blocks = append(x.blocks, el)
		}
	}
	for _, part := range x.byCat {
		sortByStart(part)
	}
	for lv := range x.headings {
		sortByStart(x.headings[lv])
	}
	sortByStart(x.blocks)
	return x
}

// sortByStart orders elements by ascending start; equal starts put the
// wider span first, so a later position in the slice always means a
// deeper element.
func sortByStart(els []model.Element) {
	sort.SliceStable(els, func(i, j int) bool {
		if els[i].Span.Start != els[j].Span.Start {
			return els[i].Span.Start < els[j].Span.Start
		}
		return els[i].Span.End > els[j].Span.End
	})
}

// Revision returns the revision token the index was built for.
func (x *Index) Revision() string {
	return x.revision
}

// ByID resolves an element identifier from the indexed set.
func (x *Index) ByID(id model.ElementID) (model.Element, bool) {
	if int(id) < 0 || int(id) >= len(x.byID) {
		return model.Element{}, false
	}
	return x.byID[id], true
}

// Category returns the category's elements ordered by span start. The
// slice is a copy the caller may keep.
func (x *Index) Category(cat model.Category) []model.Element {
	part := x.byCat[cat]
	if len(part) == 0 {
		return nil
	}
	return append([]model.Element(nil), part...)
}

// Query finds the nearest element of the category from the given rune
// offset: the first one starting strictly after it for [model.Next],
// the last one starting strictly before it for [model.Previous]. The
// second return is false when no element lies in that direction or the
// direction is not a linear one.
func (x *Index) Query(cat model.Category, from int, dir model.Direction) (model.Element, bool) {
	return search(x.byCat[cat], from, dir)
}

// QueryHeading is Query over headings of one level. Level 0 matches
// every heading; levels outside 1 through 6 match nothing.
func (x *Index) QueryHeading(level, from int, dir model.Direction) (model.Element, bool) {
	if level == 0 {
		return search(x.byCat[model.CategoryHeading], from, dir)
	}
	if level < 1 || level > 6 {
		return model.Element{}, false
	}
	return search(x.headings[level], from, dir)
}

func search(part []model.Element, from int, dir model.Direction) (model.Element, bool) {
	switch dir {
	case model.Next:
		i := sort.Search(len(part), func(i int) bool { return part[i].Span.Start > from })
		if i == len(part) {
			return model.Element{}, false
		}
		return part[i], true
	case model.Previous:
		i := sort.Search(len(part), func(i int) bool { return part[i].Span.Start >= from })
		if i == 0 {
			return model.Element{}, false
		}
		return part[i-1], true
	}
	return model.Element{}, false
}

// EnclosingBlock returns the innermost block element whose span
// contains the offset. Candidates start at or before the offset; the
// walk back from the latest such start stops at the first span that
// contains the offset, which by the sort order is the deepest one.
func (x *Index) EnclosingBlock(offset int) (model.Element, bool) {
	i := sort.Search(len(x.blocks), func(i int) bool { return x.blocks[i].Span.Start > offset })
	for j := i - 1; j >= 0; j-- {
		if x.blocks[j].Span.Contains(offset) {
			return x.blocks[j], true
		}
	}
	return model.Element{}, false
}
