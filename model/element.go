package model

import "fmt"

// Span is a half-open range of rune offsets into the document text.
// A valid span has Start < End and End no greater than the document length.
type Span struct {
	Start int
	End   int
}

// Contains reports whether the rune offset falls inside the span.
// The end offset is excluded, so a cursor sitting just past a span
// is not inside it.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Len returns the span length in runes.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// ElementID is a weak reference to an element within the set that produced
// it. IDs are assigned in extraction order and are stable for a given text;
// they carry no meaning across different revisions.
type ElementID int

// NoParent marks an element with no enclosing block.
const NoParent ElementID = -1

// Meta carries category-specific element payload. Only the fields relevant
// to the element's category are set; the rest keep their zero values.
type Meta struct {
	// Checked is the checkbox state ([x] or [X] versus [ ]).
	Checked bool
	// Definition distinguishes a footnote definition ([^id]:) from a
	// reference ([^id]).
	Definition bool
	// Columns is the table's header column count.
	Columns int
	// DataRows is the table's row count below the header separator.
	DataRows int
	// Ordered reports a numbered list (1. 2. ...) versus a bulleted one.
	Ordered bool
	// Fence is the code fence info string (the text after the opening
	// backticks, e.g. "go").
	Fence string
	// Dest is the destination span of a link or image (the text between
	// the parentheses).
	Dest Span
	// Display reports $$-delimited math versus inline $-delimited math.
	Display bool
	// Depth is the deepest blockquote marker nesting seen in the block.
	Depth int
}

// Element is a categorized, span-located unit of Markdown structure.
//
// Level is set only for headings (1-6). Parent identifies the innermost
// enclosing block element, or NoParent. Elements are immutable values once
// produced.
type Element struct {
	ID       ElementID
	Category Category
	Span     Span
	Level    int
	Parent   ElementID
	Meta     Meta
}
