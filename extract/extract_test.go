package extract

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/marknav/model"
)

func extractText(t *testing.T, text string) (*model.Document, []model.Element) {
	t.Helper()
	doc := model.NewDocument(text, "test")
	return doc, Extract(doc, Config{})
}

func byCategory(els []model.Element, cat model.Category) []model.Element {
	var out []model.Element
	for _, el := range els {
		if el.Category == cat {
			out = append(out, el)
		}
	}
	return out
}

func TestExtractHeadingAndInline(t *testing.T) {
	doc, els := extractText(t, "# Title\n\nSome *italic* and **bold** text.\n")

	if len(els) != 3 {
		t.Fatalf("element count = %d, want 3: %v", len(els), els)
	}

	h := els[0]
	if h.Category != model.CategoryHeading || h.Level != 1 {
		t.Errorf("first element = %v level %d, want Heading level 1", h.Category, h.Level)
	}
	if got, want := h.Span, (model.Span{Start: 0, End: 7}); got != want {
		t.Errorf("heading Span = %v, want %v", got, want)
	}

	em := byCategory(els, model.CategoryEmphasis)
	if len(em) != 1 || doc.Slice(em[0].Span) != "*italic*" {
		t.Errorf("emphasis = %v, want one over %q", em, "*italic*")
	}
	bold := byCategory(els, model.CategoryBold)
	if len(bold) != 1 || doc.Slice(bold[0].Span) != "**bold**" {
		t.Errorf("bold = %v, want one over %q", bold, "**bold**")
	}
}

func TestExtractUnclosedFence(t *testing.T) {
	doc, els := extractText(t, "```\ncode\nmore code")

	if len(els) != 1 {
		t.Fatalf("element count = %d, want 1: %v", len(els), els)
	}
	cb := els[0]
	if cb.Category != model.CategoryCodeBlock {
		t.Fatalf("category = %v, want CodeBlock", cb.Category)
	}
	if got, want := cb.Span, (model.Span{Start: 0, End: doc.RuneLen()}); got != want {
		t.Errorf("Span = %v, want %v", got, want)
	}
}

func TestExtractClosedFence(t *testing.T) {
	doc, els := extractText(t, "```go\nx := 1\n```\nafter")

	cbs := byCategory(els, model.CategoryCodeBlock)
	if len(cbs) != 1 {
		t.Fatalf("code block count = %d, want 1", len(cbs))
	}
	if got, want := doc.Slice(cbs[0].Span), "```go\nx := 1\n```"; got != want {
		t.Errorf("Span covers %q, want %q", got, want)
	}
	if cbs[0].Meta.Fence != "go" {
		t.Errorf("Meta.Fence = %q, want %q", cbs[0].Meta.Fence, "go")
	}
}

func TestExtractFenceHidesStructure(t *testing.T) {
	_, els := extractText(t, "```\n# not a heading\n- not a list\n```")

	if got := len(byCategory(els, model.CategoryHeading)); got != 0 {
		t.Errorf("headings inside fence = %d, want 0", got)
	}
	if got := len(byCategory(els, model.CategoryList)); got != 0 {
		t.Errorf("lists inside fence = %d, want 0", got)
	}
}

func TestExtractNestedListParent(t *testing.T) {
	doc, els := extractText(t, "- outer\n  - inner **bold** item\n")

	lists := byCategory(els, model.CategoryList)
	if len(lists) != 1 {
		t.Fatalf("list count = %d, want 1", len(lists))
	}
	items := byCategory(els, model.CategoryListItem)
	if len(items) != 2 {
		t.Fatalf("item count = %d, want 2", len(items))
	}
	bolds := byCategory(els, model.CategoryBold)
	if len(bolds) != 1 {
		t.Fatalf("bold count = %d, want 1", len(bolds))
	}

	// The bold's parent is the item containing it, not the outer list.
	inner := items[1]
	if doc.Slice(inner.Span) != "  - inner **bold** item" {
		t.Fatalf("unexpected inner item span %q", doc.Slice(inner.Span))
	}
	if bolds[0].Parent != inner.ID {
		t.Errorf("bold Parent = %d, want inner item %d", bolds[0].Parent, inner.ID)
	}
	if inner.Parent != lists[0].ID {
		t.Errorf("inner item Parent = %d, want list %d", inner.Parent, lists[0].ID)
	}
}

func TestExtractTable(t *testing.T) {
	doc, els := extractText(t, "| A | B |\n|---|---|\n| 1 | 2 |\nplain")

	tbls := byCategory(els, model.CategoryTable)
	if len(tbls) != 1 {
		t.Fatalf("table count = %d, want 1", len(tbls))
	}
	tb := tbls[0]
	if got, want := doc.Slice(tb.Span), "| A | B |\n|---|---|\n| 1 | 2 |"; got != want {
		t.Errorf("Span covers %q, want %q", got, want)
	}
	if tb.Meta.Columns != 2 || tb.Meta.DataRows != 1 {
		t.Errorf("Meta = %d cols %d rows, want 2 cols 1 row", tb.Meta.Columns, tb.Meta.DataRows)
	}
}

func TestExtractOrphanPipeRow(t *testing.T) {
	// A pipe row without a separator row beneath stays prose.
	_, els := extractText(t, "| just | prose |\nno separator here")

	if got := len(byCategory(els, model.CategoryTable)); got != 0 {
		t.Errorf("table count = %d, want 0", got)
	}
}

func TestExtractCheckboxes(t *testing.T) {
	_, els := extractText(t, "- [x] done\n- [ ] todo\n")

	boxes := byCategory(els, model.CategoryCheckbox)
	if len(boxes) != 2 {
		t.Fatalf("checkbox count = %d, want 2", len(boxes))
	}
	if !boxes[0].Meta.Checked || boxes[1].Meta.Checked {
		t.Errorf("Checked flags = %v,%v, want true,false", boxes[0].Meta.Checked, boxes[1].Meta.Checked)
	}
	if got := len(byCategory(els, model.CategoryListItem)); got != 2 {
		t.Errorf("item count = %d, want 2", got)
	}
	lists := byCategory(els, model.CategoryList)
	if len(lists) != 1 {
		t.Fatalf("list count = %d, want 1", len(lists))
	}
	for i, box := range boxes {
		if box.Parent != lists[0].ID {
			t.Errorf("checkbox %d Parent = %d, want list %d", i, box.Parent, lists[0].ID)
		}
	}
}

// TestExtractSingleCheckboxList covers the degenerate list whose only
// line is a checkbox item: List, Checkbox and ListItem share one span,
// and the List still reads as the outermost of the three.
func TestExtractSingleCheckboxList(t *testing.T) {
	_, els := extractText(t, "- [x] task\n")

	lists := byCategory(els, model.CategoryList)
	boxes := byCategory(els, model.CategoryCheckbox)
	items := byCategory(els, model.CategoryListItem)
	if len(lists) != 1 || len(boxes) != 1 || len(items) != 1 {
		t.Fatalf("counts = %d lists, %d boxes, %d items, want 1 each",
			len(lists), len(boxes), len(items))
	}
	if lists[0].Parent != model.NoParent {
		t.Errorf("list Parent = %d, want NoParent", lists[0].Parent)
	}
	if boxes[0].Parent != lists[0].ID {
		t.Errorf("checkbox Parent = %d, want list %d", boxes[0].Parent, lists[0].ID)
	}
	if items[0].Parent != boxes[0].ID {
		t.Errorf("item Parent = %d, want checkbox %d", items[0].Parent, boxes[0].ID)
	}
}

func TestExtractBlockquote(t *testing.T) {
	doc, els := extractText(t, "> a\n> > b\nplain")

	quotes := byCategory(els, model.CategoryBlockquote)
	if len(quotes) != 1 {
		t.Fatalf("blockquote count = %d, want 1", len(quotes))
	}
	if got, want := doc.Slice(quotes[0].Span), "> a\n> > b"; got != want {
		t.Errorf("Span covers %q, want %q", got, want)
	}
	if quotes[0].Meta.Depth != 2 {
		t.Errorf("Meta.Depth = %d, want 2", quotes[0].Meta.Depth)
	}
}

func TestExtractSeparator(t *testing.T) {
	doc, els := extractText(t, "above\n\n---\n\nbelow")

	seps := byCategory(els, model.CategorySeparator)
	if len(seps) != 1 {
		t.Fatalf("separator count = %d, want 1", len(seps))
	}
	if got := doc.Slice(seps[0].Span); got != "---" {
		t.Errorf("Span covers %q, want ---", got)
	}
}

func TestExtractLinksImagesFootnotes(t *testing.T) {
	text := "See [docs](https://docs.example) and ![alt](img.png).\n\n[^1]: the definition, per [^1] above.\n"
	doc, els := extractText(t, text)

	links := byCategory(els, model.CategoryLink)
	if len(links) != 1 {
		t.Fatalf("link count = %d, want 1", len(links))
	}
	if got := doc.Slice(links[0].Span); got != "[docs](https://docs.example)" {
		t.Errorf("link Span covers %q", got)
	}
	if got := doc.Slice(links[0].Meta.Dest); got != "https://docs.example" {
		t.Errorf("link Dest covers %q", got)
	}

	images := byCategory(els, model.CategoryImage)
	if len(images) != 1 {
		t.Fatalf("image count = %d, want 1", len(images))
	}
	if got := doc.Slice(images[0].Meta.Dest); got != "img.png" {
		t.Errorf("image Dest covers %q", got)
	}

	feet := byCategory(els, model.CategoryFootnote)
	if len(feet) != 2 {
		t.Fatalf("footnote count = %d, want 2", len(feet))
	}
	if !feet[0].Meta.Definition {
		t.Error("first footnote should be a definition")
	}
	if got := doc.Slice(feet[0].Span); got != "[^1]:" {
		t.Errorf("definition Span covers %q, want [^1]:", got)
	}
	if feet[1].Meta.Definition {
		t.Error("reference footnote misread as definition")
	}
}

func TestExtractImageBangBlocksLink(t *testing.T) {
	// The bracket of image syntax never doubles as a link.
	_, els := extractText(t, "![alt](img.png)")

	if got := len(byCategory(els, model.CategoryLink)); got != 0 {
		t.Errorf("link count = %d, want 0", got)
	}
	if got := len(byCategory(els, model.CategoryImage)); got != 1 {
		t.Errorf("image count = %d, want 1", got)
	}
}

func TestExtractInlineCode(t *testing.T) {
	doc, els := extractText(t, "Use `go build` and ``a `b` c`` here with *no* code emphasis.")

	codes := byCategory(els, model.CategoryInlineCode)
	if len(codes) != 2 {
		t.Fatalf("inline code count = %d, want 2: %v", len(codes), codes)
	}
	if got := doc.Slice(codes[0].Span); got != "`go build`" {
		t.Errorf("first code covers %q", got)
	}
	if got := doc.Slice(codes[1].Span); got != "``a `b` c``" {
		t.Errorf("second code covers %q", got)
	}

	// The single-backtick run inside the double run stays opaque, so
	// only the emphasis outside any code span is found.
	em := byCategory(els, model.CategoryEmphasis)
	if len(em) != 1 || doc.Slice(em[0].Span) != "*no*" {
		t.Errorf("emphasis = %v, want one over %q", em, "*no*")
	}
}

func TestExtractUnmatchedDelimiters(t *testing.T) {
	_, els := extractText(t, "a ** b * c ~~ d ` e $ f [g h\n")

	if len(els) != 0 {
		t.Errorf("element count = %d, want 0: %v", len(els), els)
	}
}

func TestExtractStrikethrough(t *testing.T) {
	doc, els := extractText(t, "old ~~gone *fast*~~ now")

	st := byCategory(els, model.CategoryStrikethrough)
	if len(st) != 1 || doc.Slice(st[0].Span) != "~~gone *fast*~~" {
		t.Fatalf("strikethrough = %v", st)
	}
	em := byCategory(els, model.CategoryEmphasis)
	if len(em) != 1 || doc.Slice(em[0].Span) != "*fast*" {
		t.Errorf("nested emphasis = %v, want one over %q", em, "*fast*")
	}
}

// TestExtractMixedDelimiterNesting pins the masking rule: a pair's
// body may nest the other category, but never its own via the other
// delimiter, so per-category spans stay disjoint.
func TestExtractMixedDelimiterNesting(t *testing.T) {
	tests := []struct {
		name string
		text string
		bold []string
		em   []string
	}{
		{"underscore pair inside bold", "x **a __b__ c** y", []string{"**a __b__ c**"}, nil},
		{"underscore inside emphasis", "x *a _b_ c* y", nil, []string{"*a _b_ c*"}},
		{"emphasis inside bold", "x **a *b* c** y", []string{"**a *b* c**"}, []string{"*b*"}},
		{"bold inside emphasis", "x *a __b__ c* y", []string{"__b__"}, []string{"*a __b__ c*"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, els := extractText(t, tc.text)
			for cat, want := range map[model.Category][]string{
				model.CategoryBold:     tc.bold,
				model.CategoryEmphasis: tc.em,
			} {
				part := byCategory(els, cat)
				if len(part) != len(want) {
					t.Fatalf("%v count = %d, want %d: %v", cat, len(part), len(want), part)
				}
				for i, el := range part {
					if got := doc.Slice(el.Span); got != want[i] {
						t.Errorf("%v %d covers %q, want %q", cat, i, got, want[i])
					}
				}
			}
		})
	}
}

func TestExtractIntrawordUnderscore(t *testing.T) {
	doc, els := extractText(t, "snake_case_name here")

	em := byCategory(els, model.CategoryEmphasis)
	if len(em) != 1 || doc.Slice(em[0].Span) != "_case_" {
		t.Errorf("emphasis = %v, want one over %q", em, "_case_")
	}
}

func TestExtractInlineMath(t *testing.T) {
	doc, els := extractText(t, "Euler: $e^{i\\pi}+1=0$ but $5 or $6 is money.\n")

	math := byCategory(els, model.CategoryMath)
	if len(math) != 1 {
		t.Fatalf("math count = %d, want 1: %v", len(math), math)
	}
	if got := doc.Slice(math[0].Span); got != "$e^{i\\pi}+1=0$" {
		t.Errorf("math covers %q", got)
	}
	if math[0].Meta.Display {
		t.Error("inline math misread as display math")
	}
}

func TestExtractDisplayMath(t *testing.T) {
	text := "before\n$$\nE = mc^2\n$$\nafter"
	doc, els := extractText(t, text)

	math := byCategory(els, model.CategoryMath)
	if len(math) != 1 {
		t.Fatalf("math count = %d, want 1: %v", len(math), math)
	}
	if got := doc.Slice(math[0].Span); got != "$$\nE = mc^2\n$$" {
		t.Errorf("math covers %q", got)
	}
	if !math[0].Meta.Display {
		t.Error("display math not flagged")
	}
}

func TestExtractDisplayMathSingleLine(t *testing.T) {
	doc, els := extractText(t, "$$x^2 + y^2 = z^2$$\n")

	math := byCategory(els, model.CategoryMath)
	if len(math) != 1 || !math[0].Meta.Display {
		t.Fatalf("math = %v, want one display element", math)
	}
	if got := doc.Slice(math[0].Span); got != "$$x^2 + y^2 = z^2$$" {
		t.Errorf("math covers %q", got)
	}
}

func TestExtractUnclosedDisplayMath(t *testing.T) {
	_, els := extractText(t, "$$\nnever closed")

	if got := len(byCategory(els, model.CategoryMath)); got != 0 {
		t.Errorf("math count = %d, want 0", got)
	}
}

const compound = `# Guide

Intro with [a link](https://example.com) and *emphasis*.

## Usage

- first item with ` + "`code`" + `
- [x] second, done
  continued line

> quoted wisdom
> over two lines

| Name | Value |
|------|-------|
| x    | 1     |

` + "```sh\nmake test\n```" + `

Mixed **outer __pair__ close** and *outer _pair_ close* nesting.

Final **bold** word and $a+b$ math.
`

func TestExtractDeterminism(t *testing.T) {
	doc := model.NewDocument(compound, "test")

	first := Extract(doc, Config{})
	second := Extract(doc, Config{})

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated extraction differs (-first +second):\n%s", diff)
	}
}

func TestExtractOrderingInvariants(t *testing.T) {
	_, els := extractText(t, compound)

	if len(els) == 0 {
		t.Fatal("no elements extracted")
	}
	for i, el := range els {
		if int(el.ID) != i {
			t.Fatalf("ID %d at position %d", el.ID, i)
		}
		if el.Span.End < el.Span.Start {
			t.Errorf("element %d has inverted span %v", i, el.Span)
		}
	}

	// Per category: strictly increasing starts, no overlap.
	for _, cat := range model.Categories() {
		part := byCategory(els, cat)
		for i := 1; i < len(part); i++ {
			if part[i].Span.Start <= part[i-1].Span.Start {
				t.Errorf("%v: starts not strictly increasing: %v then %v", cat, part[i-1].Span, part[i].Span)
			}
			if part[i].Span.Start < part[i-1].Span.End {
				t.Errorf("%v: spans overlap: %v then %v", cat, part[i-1].Span, part[i].Span)
			}
		}
	}
}

func TestExtractParentsAreBlocks(t *testing.T) {
	_, els := extractText(t, compound)

	for _, el := range els {
		if el.Parent == model.NoParent {
			continue
		}
		p := els[el.Parent]
		if !p.Category.IsBlock() {
			t.Errorf("element %d has non-block parent %v", el.ID, p.Category)
		}
		if p.Span.Start > el.Span.Start || el.Span.End > p.Span.End {
			t.Errorf("element %d span %v outside parent span %v", el.ID, el.Span, p.Span)
		}
	}
}

func TestExtractBlocksOnly(t *testing.T) {
	doc := model.NewDocument(compound, "test")
	els := Extract(doc, Config{BlocksOnly: true})

	for _, el := range els {
		if !el.Category.IsBlock() {
			t.Errorf("inline element %v extracted in blocks-only mode", el.Category)
		}
	}
	if got := len(byCategory(els, model.CategoryHeading)); got != 2 {
		t.Errorf("heading count = %d, want 2", got)
	}
}

func TestExtractEmptyAndPlain(t *testing.T) {
	for _, text := range []string{"", "just prose\nand more prose"} {
		if _, els := extractText(t, text); len(els) != 0 {
			t.Errorf("Extract(%q) = %d elements, want 0", text, len(els))
		}
	}
}

func TestExtractTildeFences(t *testing.T) {
	doc := model.NewDocument("~~~\nhidden # heading\n~~~", "test")

	els := Extract(doc, Config{})
	if got := len(byCategory(els, model.CategoryCodeBlock)); got != 0 {
		t.Errorf("tilde fences off: code block count = %d, want 0", got)
	}

	els = Extract(doc, Config{TildeFences: true})
	if got := len(byCategory(els, model.CategoryCodeBlock)); got != 1 {
		t.Errorf("tilde fences on: code block count = %d, want 1", got)
	}
	if got := len(byCategory(els, model.CategoryHeading)); got != 0 {
		t.Errorf("tilde fences on: heading count = %d, want 0", got)
	}
}

func TestExtractHeadingLevels(t *testing.T) {
	text := strings.Join([]string{
		"# one", "## two", "### three", "#### four", "##### five", "###### six", "####### seven",
	}, "\n")
	_, els := extractText(t, text)

	hs := byCategory(els, model.CategoryHeading)
	if len(hs) != 6 {
		t.Fatalf("heading count = %d, want 6", len(hs))
	}
	for i, h := range hs {
		if h.Level != i+1 {
			t.Errorf("heading %d Level = %d, want %d", i, h.Level, i+1)
		}
	}
}
