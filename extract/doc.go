// Package extract turns classified lines into the flat element list
// that indexing and navigation are built on.
//
// Extraction runs in three passes. The block pass groups contiguous
// classified lines into block elements: a heading or horizontal rule
// is its own line, a code block runs from fence to fence (or to the
// end of the document when unclosed), a table runs from its header row
// through its last contiguous pipe row once a separator row confirms
// it, a blockquote covers a contiguous run of quote lines, and a list
// covers its marker lines plus indented continuations. The inline pass
// scans the text of every line that can carry formatting and emits
// links, images, emphasis, inline code, strikethrough, footnotes and
// math. The final pass sorts everything by position and resolves each
// element's parent.
//
// # Fail-soft parsing
//
// Markdown that almost forms a construct simply yields no element: a
// pipe row with no separator row under it stays plain text, an
// unmatched emphasis delimiter stays a literal character, an empty
// link target is ignored. Extraction never fails on unconventional
// input.
//
// # Inline scanning rules
//
// Inline constructs are matched per line, longest delimiter first, so
// a run of ** is tried as bold before single * is tried as emphasis.
// Delimiters inside inline code spans or fenced code blocks are never
// interpreted. Bold, emphasis and strikethrough bodies and link labels
// are rescanned for nested elements; link destinations are not.
//
// # Determinism
//
// [Extract] is a pure function of the document text and its
// configuration. Element IDs are positions in the returned slice,
// assigned after the position sort, so identical text always yields
// an identical element list.
package extract
