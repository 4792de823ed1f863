package extract

import (
	"sort"

	"github.com/tsawler/marknav/linescan"
	"github.com/tsawler/marknav/model"
)

// Config controls extraction.
type Config struct {
	// TildeFences also treats ~~~ runs as code fence delimiters.
	TildeFences bool

	// BlocksOnly skips the inline pass. Useful when only block
	// navigation is needed and inline elements would be wasted work.
	BlocksOnly bool
}

// Extract produces the document's element list: block elements first
// grouped from classified lines, inline elements scanned from line
// text, the whole list sorted by position. IDs are list positions and
// each element's Parent names the innermost block containing it, so
// the result is self-contained.
func Extract(doc *model.Document, cfg Config) []model.Element {
	lines := linescan.Scan(doc, linescan.Config{TildeFences: cfg.TildeFences})

	els := extractBlocks(doc, lines)
	if !cfg.BlocksOnly {
		els = append(els, extractInline(doc, lines)...)
	}

	sortElements(els)
	for i := range els {
		els[i].ID = model.ElementID(i)
		els[i].Parent = model.NoParent
	}
	assignParents(els)
	return els
}

// sortElements orders by start offset, longer spans first among equal
// starts so containers precede their contents. The sort is stable:
// elements sharing both endpoints keep extraction order, which puts a
// line's Checkbox before its ListItem and makes the item the innermost
// of the two.
func sortElements(els []model.Element) {
	sort.SliceStable(els, func(i, j int) bool {
		if els[i].Span.Start != els[j].Span.Start {
			return els[i].Span.Start < els[j].Span.Start
		}
		return els[i].Span.End > els[j].Span.End
	})
}

// assignParents resolves each element's innermost enclosing block with
// one sweep and a stack of open blocks. Inline elements never parent
// anything; an element contained by no block keeps NoParent.
func assignParents(els []model.Element) {
	var stack []int
	for i := range els {
		start := els[i].Span.Start
		for len(stack) > 0 && start >= els[stack[len(stack)-1]].Span.End {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			els[i].Parent = els[stack[len(stack)-1]].ID
		}
		if els[i].Category.IsBlock() {
			stack = append(stack, i)
		}
	}
}
