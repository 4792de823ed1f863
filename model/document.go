package model

import "sort"

// Document is the working form of a text snapshot: the text, the caller's
// opaque revision token, and precomputed line and UTF-16 offset tables.
//
// Lines are split on \r\n, \n, or \r, and each line includes its terminator.
// A document ending in a terminator has a final empty line, so a cursor at
// end-of-text always falls on a valid line.
type Document struct {
	text     string
	revision string
	runes    []rune

	lineStarts  []int // rune offset of each line start
	utf16Starts []int // UTF-16 offset of each line start
	utf16Total  int
}

// NewDocument builds a Document for the given text and revision token.
func NewDocument(text, revision string) *Document {
	runes := []rune(text)
	d := &Document{
		text:        text,
		revision:    revision,
		runes:       runes,
		lineStarts:  []int{0},
		utf16Starts: []int{0},
	}

	u := 0
	i := 0
	for i < len(runes) {
		r := runes[i]
		u += utf16Width(r)
		i++
		switch r {
		case '\n':
			d.lineStarts = append(d.lineStarts, i)
			d.utf16Starts = append(d.utf16Starts, u)
		case '\r':
			if i < len(runes) && runes[i] == '\n' {
				u++
				i++
			}
			d.lineStarts = append(d.lineStarts, i)
			d.utf16Starts = append(d.utf16Starts, u)
		}
	}
	d.utf16Total = u
	return d
}

// Text returns the full document text.
func (d *Document) Text() string { return d.text }

// Revision returns the opaque revision token supplied with the snapshot.
func (d *Document) Revision() string { return d.revision }

// Runes returns the document text as runes. The slice is shared; callers
// must not modify it.
func (d *Document) Runes() []rune { return d.runes }

// RuneLen returns the document length in runes.
func (d *Document) RuneLen() int { return len(d.runes) }

// UTF16Len returns the document length in UTF-16 code units.
func (d *Document) UTF16Len() int { return d.utf16Total }

// LineCount returns the number of lines, counting the empty line after a
// trailing terminator.
func (d *Document) LineCount() int { return len(d.lineStarts) }

// LineSpan returns the full span of line i, terminator included.
func (d *Document) LineSpan(i int) Span {
	if i < 0 || i >= len(d.lineStarts) {
		return Span{}
	}
	end := len(d.runes)
	if i+1 < len(d.lineStarts) {
		end = d.lineStarts[i+1]
	}
	return Span{Start: d.lineStarts[i], End: end}
}

// LineContentSpan returns the span of line i with the terminator stripped.
func (d *Document) LineContentSpan(i int) Span {
	s := d.LineSpan(i)
	if s.End > s.Start && d.runes[s.End-1] == '\n' {
		s.End--
	}
	if s.End > s.Start && d.runes[s.End-1] == '\r' {
		s.End--
	}
	return s
}

// LineText returns the text of line i without its terminator.
func (d *Document) LineText(i int) string {
	return d.Slice(d.LineContentSpan(i))
}

// LineIndex returns the index of the line containing the rune offset.
// Offsets at or past end-of-text map to the final line.
func (d *Document) LineIndex(offset int) int {
	i := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1
	if i < 0 {
		return 0
	}
	return i
}

// Slice returns the text covered by the span. Out-of-range bounds are
// clamped rather than panicking.
func (d *Document) Slice(s Span) string {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > len(d.runes) {
		s.End = len(d.runes)
	}
	if s.Start >= s.End {
		return ""
	}
	return string(d.runes[s.Start:s.End])
}

// UTF16Offset converts a rune offset into a UTF-16 code-unit offset.
// Out-of-range offsets are clamped to the document bounds.
func (d *Document) UTF16Offset(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(d.runes) {
		return d.utf16Total
	}
	line := d.LineIndex(offset)
	u := d.utf16Starts[line]
	for i := d.lineStarts[line]; i < offset; i++ {
		u += utf16Width(d.runes[i])
	}
	return u
}

// RuneOffsetFromUTF16 converts a UTF-16 code-unit offset into a rune offset.
// An offset falling inside a surrogate pair rounds up to the following rune.
func (d *Document) RuneOffsetFromUTF16(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= d.utf16Total {
		return len(d.runes)
	}
	line := sort.Search(len(d.utf16Starts), func(i int) bool {
		return d.utf16Starts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	u := d.utf16Starts[line]
	i := d.lineStarts[line]
	for i < len(d.runes) && u < offset {
		u += utf16Width(d.runes[i])
		i++
	}
	return i
}

func utf16Width(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
