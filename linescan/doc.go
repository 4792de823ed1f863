// Package linescan classifies the lines of a Markdown document.
//
// Classification is the first pass of structural indexing. It walks the
// line table of a [model.Document] once and assigns every line a [Kind]
// using local, line-level rules, so the pass stays linear in document
// size. The only state carried between lines is the open code fence:
// lines between an opening and a closing fence are reported as
// [KindCode] no matter what they contain.
//
// # Line kinds
//
// A line is examined in a fixed order. Blank lines and fence delimiters
// are recognized first, then headings, blockquotes, table rows,
// horizontal rules and list items. Anything left over is [KindPlain].
// Prose paragraphs, which have no structural marker of their own, all
// land there.
//
// A list item line carries two independent marker facts: whether the
// line has a list marker followed by whitespace, and whether the text
// after the marker begins with a checkbox. "- [x] done" carries both,
// "-[x] done" only the checkbox.
//
// # Offsets
//
// Every [Line] records two spans in document rune offsets: the full
// line including its terminator, and the content without it. Marker
// positions inside a line (indentation width, fence run length) are
// reported as rune counts so callers can derive sub-line spans without
// re-scanning.
package linescan
