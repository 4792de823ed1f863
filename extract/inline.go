package extract

import (
	"strings"
	"unicode"

	"github.com/tsawler/marknav/linescan"
	"github.com/tsawler/marknav/model"
)

// scanner finds inline elements one line at a time. Lookarounds for a
// delimiter (the rune just before or after it) consult the real line
// text even when scanning a nested range, so nesting inside bold or a
// link label behaves the same as at top level.
type scanner struct {
	runes []rune
	out   []model.Element

	lineStart int
	lineEnd   int

	masked map[model.Category]int
}

func extractInline(doc *model.Document, lines []linescan.Line) []model.Element {
	s := &scanner{runes: doc.Runes(), masked: make(map[model.Category]int)}
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		switch ln.Kind {
		case linescan.KindBlank, linescan.KindFence, linescan.KindCode, linescan.KindSeparator:
			continue
		}
		if last, ok := s.displayMath(doc, lines, i); ok {
			i = last
			continue
		}
		s.lineStart, s.lineEnd = ln.Content.Start, ln.Content.End
		s.scan(ln.Content.Start, ln.Content.End)
	}
	return s.out
}

// displayMath claims whole lines for $$ math. A line that opens and
// closes in place emits immediately; a bare opener starts a forward
// scan across plain and blank lines for a closing $$, and gives up,
// emitting nothing, when a structural line or the document end
// intervenes. Math bodies are never rescanned for other inline syntax.
func (s *scanner) displayMath(doc *model.Document, lines []linescan.Line, i int) (int, bool) {
	t := strings.TrimSpace(doc.Slice(lines[i].Content))
	if !strings.HasPrefix(t, "$$") {
		return i, false
	}
	if len(t) >= 5 && strings.HasSuffix(t, "$$") {
		if strings.TrimSpace(t[2:len(t)-2]) == "" {
			return i, false
		}
		s.out = append(s.out, model.Element{
			Category: model.CategoryMath,
			Span:     lines[i].Content,
			Meta:     model.Meta{Display: true},
		})
		return i, true
	}
	for j := i + 1; j < len(lines); j++ {
		switch lines[j].Kind {
		case linescan.KindPlain, linescan.KindBlank:
		default:
			return i, false
		}
		if strings.HasSuffix(strings.TrimSpace(doc.Slice(lines[j].Content)), "$$") {
			s.out = append(s.out, model.Element{
				Category: model.CategoryMath,
				Span:     model.Span{Start: lines[i].Content.Start, End: lines[j].Content.End},
				Meta:     model.Meta{Display: true},
			})
			return j, true
		}
	}
	return i, false
}

// scan walks [lo,hi) left to right. Each matched construct is emitted,
// its body rescanned where nesting applies, and the cursor jumps past
// it; failed delimiters stay literal text.
func (s *scanner) scan(lo, hi int) {
	i := lo
	for i < hi {
		switch s.runes[i] {
		case '!':
			if el, label, end, ok := s.image(i, hi); ok {
				s.out = append(s.out, el)
				s.scan(label.Start, label.End)
				i = end
				continue
			}
		case '[':
			if el, end, ok := s.footnote(i, hi); ok {
				s.out = append(s.out, el)
				i = end
				continue
			}
			if el, label, end, ok := s.link(i, hi); ok {
				s.out = append(s.out, el)
				s.scan(label.Start, label.End)
				i = end
				continue
			}
		case '`':
			if el, end, ok := s.code(i, hi); ok {
				s.out = append(s.out, el)
				i = end
				continue
			}
			for i < hi && s.runes[i] == '`' {
				i++
			}
			continue
		case '$':
			if el, end, ok := s.math(i, hi); ok {
				s.out = append(s.out, el)
				i = end
				continue
			}
			if i+1 < hi && s.runes[i+1] == '$' {
				i += 2
				continue
			}
		case '~':
			if el, body, end, ok := s.strike(i, hi); ok {
				s.out = append(s.out, el)
				s.scan(body.Start, body.End)
				i = end
				continue
			}
		case '*', '_':
			if el, body, end, ok := s.pair(i, hi); ok {
				s.out = append(s.out, el)
				s.rescan(body, el.Category)
				i = end
				continue
			}
		}
		i++
	}
}

// rescan walks a matched pair's body with the pair's own category
// masked. Without the mask, mixed-delimiter nesting like **a __b__ c**
// would emit a second Bold inside the first, and per-category spans
// must never overlap. Masks stack, so an emphasis two pairs up still
// suppresses emphasis here.
func (s *scanner) rescan(body model.Span, cat model.Category) {
	s.masked[cat]++
	s.scan(body.Start, body.End)
	s.masked[cat]--
}

// bracketPair parses [label](url) starting at the bracket. The label
// runs to the first "](", the url to the first ")" after it; both must
// be non-empty.
func (s *scanner) bracketPair(b, hi int) (label, url model.Span, end int, ok bool) {
	k := b + 2
	for ; k < hi; k++ {
		if s.runes[k] == ']' && k+1 < hi && s.runes[k+1] == '(' {
			break
		}
	}
	if k >= hi {
		return model.Span{}, model.Span{}, 0, false
	}
	for m := k + 3; m < hi; m++ {
		if s.runes[m] == ')' {
			return model.Span{Start: b + 1, End: k},
				model.Span{Start: k + 2, End: m},
				m + 1, true
		}
	}
	return model.Span{}, model.Span{}, 0, false
}

func (s *scanner) image(i, hi int) (model.Element, model.Span, int, bool) {
	if i+1 >= hi || s.runes[i+1] != '[' {
		return model.Element{}, model.Span{}, 0, false
	}
	label, url, end, ok := s.bracketPair(i+1, hi)
	if !ok {
		return model.Element{}, model.Span{}, 0, false
	}
	return model.Element{
		Category: model.CategoryImage,
		Span:     model.Span{Start: i, End: end},
		Meta:     model.Meta{Dest: url},
	}, label, end, true
}

// link rejects a bracket preceded by a bang; that position is image
// syntax whether or not the image parse succeeded.
func (s *scanner) link(i, hi int) (model.Element, model.Span, int, bool) {
	if i > s.lineStart && s.runes[i-1] == '!' {
		return model.Element{}, model.Span{}, 0, false
	}
	label, url, end, ok := s.bracketPair(i, hi)
	if !ok {
		return model.Element{}, model.Span{}, 0, false
	}
	return model.Element{
		Category: model.CategoryLink,
		Span:     model.Span{Start: i, End: end},
		Meta:     model.Meta{Dest: url},
	}, label, end, true
}

// footnote parses [^id] with an optional trailing colon marking a
// definition. It wins over link syntax at the same bracket.
func (s *scanner) footnote(i, hi int) (model.Element, int, bool) {
	if i+1 >= hi || s.runes[i+1] != '^' {
		return model.Element{}, 0, false
	}
	for k := i + 3; k < hi; k++ {
		if s.runes[k] != ']' {
			continue
		}
		end := k + 1
		def := false
		if end < hi && s.runes[end] == ':' {
			def = true
			end++
		}
		return model.Element{
			Category: model.CategoryFootnote,
			Span:     model.Span{Start: i, End: end},
			Meta:     model.Meta{Definition: def},
		}, end, true
	}
	return model.Element{}, 0, false
}

// code matches a backtick run closed by a run of exactly the same
// length. The body is opaque: no other construct is parsed inside it.
func (s *scanner) code(i, hi int) (model.Element, int, bool) {
	n := runLen(s.runes, i, hi, '`')
	k := i + n
	for k < hi {
		if s.runes[k] != '`' {
			k++
			continue
		}
		m := runLen(s.runes, k, hi, '`')
		if m == n {
			return model.Element{
				Category: model.CategoryInlineCode,
				Span:     model.Span{Start: i, End: k + m},
			}, k + m, true
		}
		k += m
	}
	return model.Element{}, 0, false
}

// math matches $$..$$ or $..$ within the line. Single-dollar math may
// not touch whitespace on the inside of either delimiter, which keeps
// prose about prices from reading as formulas.
func (s *scanner) math(i, hi int) (model.Element, int, bool) {
	if i+1 < hi && s.runes[i+1] == '$' {
		for k := i + 2; k+1 < hi; k++ {
			if s.runes[k] != '$' || s.runes[k+1] != '$' {
				continue
			}
			if strings.TrimSpace(string(s.runes[i+2:k])) == "" {
				return model.Element{}, 0, false
			}
			return model.Element{
				Category: model.CategoryMath,
				Span:     model.Span{Start: i, End: k + 2},
				Meta:     model.Meta{Display: true},
			}, k + 2, true
		}
		return model.Element{}, 0, false
	}
	for k := i + 1; k < hi; k++ {
		if s.runes[k] != '$' {
			continue
		}
		if isSpaceRune(s.runes[i+1]) || isSpaceRune(s.runes[k-1]) {
			return model.Element{}, 0, false
		}
		return model.Element{
			Category: model.CategoryMath,
			Span:     model.Span{Start: i, End: k + 1},
		}, k + 1, true
	}
	return model.Element{}, 0, false
}

func (s *scanner) strike(i, hi int) (model.Element, model.Span, int, bool) {
	if i+2 >= hi || s.runes[i+1] != '~' || isSpaceRune(s.runes[i+2]) {
		return model.Element{}, model.Span{}, 0, false
	}
	for k := i + 3; k+1 < hi; k++ {
		if s.runes[k] == '~' && s.runes[k+1] == '~' && !isSpaceRune(s.runes[k-1]) {
			return model.Element{
				Category: model.CategoryStrikethrough,
				Span:     model.Span{Start: i, End: k + 2},
			}, model.Span{Start: i + 2, End: k}, k + 2, true
		}
	}
	return model.Element{}, model.Span{}, 0, false
}

// pair tries the doubled delimiter as bold before falling back to
// single-delimiter emphasis at the same position. A category masked by
// an enclosing pair is not tried at all, so __..__ inside a Bold body
// and _.._ inside an Emphasis body stay literal text.
func (s *scanner) pair(i, hi int) (model.Element, model.Span, int, bool) {
	d := s.runes[i]
	if s.masked[model.CategoryBold] == 0 && i+1 < hi && s.runes[i+1] == d {
		if el, body, end, ok := s.bold(i, hi, d); ok {
			return el, body, end, true
		}
	}
	if s.masked[model.CategoryEmphasis] > 0 {
		return model.Element{}, model.Span{}, 0, false
	}
	return s.emphasis(i, hi, d)
}

// bold matches **..** or __..__. The body may not begin or end with
// whitespace but may begin with the delimiter rune itself, so ***x***
// reads as bold around *x.
func (s *scanner) bold(i, hi int, d rune) (model.Element, model.Span, int, bool) {
	if i+2 >= hi || isSpaceRune(s.runes[i+2]) {
		return model.Element{}, model.Span{}, 0, false
	}
	for k := i + 3; k+1 < hi; k++ {
		if s.runes[k] == d && s.runes[k+1] == d && !isSpaceRune(s.runes[k-1]) {
			return model.Element{
				Category: model.CategoryBold,
				Span:     model.Span{Start: i, End: k + 2},
			}, model.Span{Start: i + 2, End: k}, k + 2, true
		}
	}
	return model.Element{}, model.Span{}, 0, false
}

// emphasis matches *..* or _.._ with the classic lookaround rules: the
// opener may not follow or precede its own delimiter or sit against
// whitespace, and the closer mirrors them. Intraword matches are
// allowed, so snake_case_names yield an emphasis between underscores.
func (s *scanner) emphasis(i, hi int, d rune) (model.Element, model.Span, int, bool) {
	if i > s.lineStart && s.runes[i-1] == d {
		return model.Element{}, model.Span{}, 0, false
	}
	if i+1 >= hi || isSpaceRune(s.runes[i+1]) || s.runes[i+1] == d {
		return model.Element{}, model.Span{}, 0, false
	}
	for k := i + 2; k < hi; k++ {
		if s.runes[k] != d {
			continue
		}
		if prev := s.runes[k-1]; isSpaceRune(prev) || prev == d {
			continue
		}
		if k+1 < s.lineEnd && s.runes[k+1] == d {
			continue
		}
		return model.Element{
			Category: model.CategoryEmphasis,
			Span:     model.Span{Start: i, End: k + 1},
		}, model.Span{Start: i + 1, End: k}, k + 1, true
	}
	return model.Element{}, model.Span{}, 0, false
}

func runLen(rs []rune, i, hi int, c rune) int {
	n := 0
	for i+n < hi && rs[i+n] == c {
		n++
	}
	return n
}

func isSpaceRune(r rune) bool { return unicode.IsSpace(r) }
