package linescan

import (
	"github.com/tsawler/marknav/model"
)

// Kind identifies the structural role of a single line.
type Kind int

const (
	KindBlank Kind = iota
	KindPlain
	KindHeading
	KindListItem
	KindBlockquote
	KindTableRow
	KindSeparator
	KindFence
	KindCode
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "Blank"
	case KindPlain:
		return "Plain"
	case KindHeading:
		return "Heading"
	case KindListItem:
		return "ListItem"
	case KindBlockquote:
		return "Blockquote"
	case KindTableRow:
		return "TableRow"
	case KindSeparator:
		return "Separator"
	case KindFence:
		return "Fence"
	case KindCode:
		return "Code"
	default:
		return "Unknown"
	}
}

// Config controls classification.
type Config struct {
	// TildeFences treats runs of three or more tildes as code fence
	// delimiters in addition to backticks.
	TildeFences bool
}

// Line is one classified line of a document. Span covers the full line
// including its terminator; Content stops before the terminator. Both
// are rune offsets into the document.
type Line struct {
	Index   int
	Span    model.Span
	Content model.Span
	Kind    Kind

	Level  int // heading level, 1 through 6
	Indent int // leading whitespace runes

	ListItem bool // line has a list marker followed by whitespace
	Ordered  bool // marker is a "1." style marker
	Checkbox bool // marker is followed by [ ], [x] or [X]
	Checked  bool

	Depth int // blockquote nesting depth

	FenceChar byte // '`' or '~'
	FenceLen  int  // length of the fence run
}

// Scan classifies every line of doc. Lines between an opening and a
// closing fence come back as [KindCode], the delimiters themselves as
// [KindFence]. An unclosed fence extends to the end of the document.
func Scan(doc *model.Document, cfg Config) []Line {
	lines := make([]Line, 0, doc.LineCount())
	var open byte // delimiter of the open fence, 0 outside fences
	for i := 0; i < doc.LineCount(); i++ {
		ln := Line{
			Index:   i,
			Span:    doc.LineSpan(i),
			Content: doc.LineContentSpan(i),
		}
		text := doc.Slice(ln.Content)
		if open != 0 {
			rest, indent := trimIndent(text)
			if ch, n, ok := fenceRun(rest, cfg); ok && ch == open {
				ln.Kind = KindFence
				ln.Indent = indent
				ln.FenceChar, ln.FenceLen = ch, n
				open = 0
			} else {
				ln.Kind = KindCode
			}
			lines = append(lines, ln)
			continue
		}
		classify(&ln, text, cfg)
		if ln.Kind == KindFence {
			open = ln.FenceChar
		}
		lines = append(lines, ln)
	}
	return lines
}

func classify(ln *Line, text string, cfg Config) {
	rest, indent := trimIndent(text)
	ln.Indent = indent
	if rest == "" {
		ln.Kind = KindBlank
		return
	}
	if ch, n, ok := fenceRun(rest, cfg); ok {
		ln.Kind = KindFence
		ln.FenceChar, ln.FenceLen = ch, n
		return
	}
	if lvl, ok := headingLevel(rest); ok {
		ln.Kind = KindHeading
		ln.Level = lvl
		return
	}
	if depth, ok := quoteDepth(rest); ok {
		ln.Kind = KindBlockquote
		ln.Depth = depth
		return
	}
	if rest[0] == '|' {
		ln.Kind = KindTableRow
		return
	}
	if isRule(rest) {
		ln.Kind = KindSeparator
		return
	}
	if n, ordered, ok := listMarker(rest); ok {
		item := n == len(rest) || rest[n] == ' ' || rest[n] == '\t'
		checked, box := checkboxSuffix(rest[n:])
		if item || box {
			ln.Kind = KindListItem
			ln.ListItem = item
			ln.Ordered = ordered
			ln.Checkbox = box
			ln.Checked = checked
			return
		}
	}
	ln.Kind = KindPlain
}

// trimIndent strips leading spaces and tabs. Both are single-rune, so
// the returned count works as a rune offset into the line.
func trimIndent(s string) (string, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:], i
}

func fenceRun(s string, cfg Config) (byte, int, bool) {
	if s == "" {
		return 0, 0, false
	}
	c := s[0]
	if c != '`' && !(cfg.TildeFences && c == '~') {
		return 0, 0, false
	}
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	if n < 3 {
		return 0, 0, false
	}
	return c, n, true
}

// headingLevel reports the level of an ATX heading. Seven or more
// hashes, or a hash run without trailing whitespace, is not a heading.
func headingLevel(s string) (int, bool) {
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n < 1 || n > 6 {
		return 0, false
	}
	if n < len(s) && s[n] != ' ' && s[n] != '\t' {
		return 0, false
	}
	return n, true
}

// quoteDepth counts blockquote markers, allowing whitespace between
// them. The final marker must be followed by whitespace or end the
// line, so ">word" stays plain text.
func quoteDepth(s string) (int, bool) {
	depth := 0
	i := 0
	for i < len(s) && s[i] == '>' {
		depth++
		i++
		j := i
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		if j < len(s) && s[j] == '>' {
			i = j
			continue
		}
		if j == i && i < len(s) {
			return 0, false
		}
		return depth, true
	}
	return 0, false
}

// isRule reports whether the line is a horizontal rule: three or more
// of the same delimiter with optional whitespace between the first
// three, then nothing but rule characters and whitespace.
func isRule(s string) bool {
	c := s[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	i := 1
	for k := 0; k < 2; k++ {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) || s[i] != c {
			return false
		}
		i++
	}
	for ; i < len(s); i++ {
		switch s[i] {
		case '-', '*', '_', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// listMarker reports the length of a leading list marker, if any. The
// caller decides whether what follows makes the line a list item, a
// checkbox, or neither.
func listMarker(s string) (int, bool, bool) {
	if s == "" {
		return 0, false, false
	}
	switch s[0] {
	case '*', '-', '+':
		return 1, false, true
	}
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n > 0 && n < len(s) && s[n] == '.' {
		return n + 1, true, true
	}
	return 0, false, false
}

// checkboxSuffix matches an optional run of whitespace followed by
// [ ], [x] or [X] at the start of s.
func checkboxSuffix(s string) (checked, ok bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i+2 >= len(s) || s[i] != '[' || s[i+2] != ']' {
		return false, false
	}
	switch s[i+1] {
	case ' ':
		return false, true
	case 'x', 'X':
		return true, true
	}
	return false, false
}
