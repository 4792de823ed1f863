package extract

import (
	"strings"

	"github.com/tsawler/marknav/linescan"
	"github.com/tsawler/marknav/model"
	"github.com/tsawler/marknav/tables"
)

// extractBlocks walks the classified lines once and emits every block
// element. Spans cover line content without terminators, so a heading
// over "# Title" ends at the "e".
func extractBlocks(doc *model.Document, lines []linescan.Line) []model.Element {
	var els []model.Element
	i := 0
	for i < len(lines) {
		switch lines[i].Kind {
		case linescan.KindHeading:
			els = append(els, model.Element{
				Category: model.CategoryHeading,
				Span:     lines[i].Content,
				Level:    lines[i].Level,
			})
			i++
		case linescan.KindFence:
			i = emitCode(doc, lines, i, &els)
		case linescan.KindTableRow:
			i = emitTable(doc, lines, i, &els)
		case linescan.KindBlockquote:
			i = emitQuote(lines, i, &els)
		case linescan.KindSeparator:
			els = append(els, model.Element{
				Category: model.CategorySeparator,
				Span:     lines[i].Content,
			})
			i++
		case linescan.KindListItem:
			i = emitList(lines, i, &els)
		default:
			i++
		}
	}
	return els
}

// emitCode consumes a fenced block. The classifier already paired the
// fences, so everything up to the next fence line is body; a missing
// closer runs the block to the end of the document.
func emitCode(doc *model.Document, lines []linescan.Line, i int, els *[]model.Element) int {
	open := lines[i]
	infoStart := open.Content.Start + open.Indent + open.FenceLen
	info := strings.TrimSpace(doc.Slice(model.Span{Start: infoStart, End: open.Content.End}))

	j := i + 1
	for j < len(lines) && lines[j].Kind == linescan.KindCode {
		j++
	}
	end := lines[len(lines)-1].Content.End
	if j < len(lines) && lines[j].Kind == linescan.KindFence {
		end = lines[j].Content.End
		j++
	}
	*els = append(*els, model.Element{
		Category: model.CategoryCodeBlock,
		Span:     model.Span{Start: open.Content.Start, End: end},
		Meta:     model.Meta{Fence: info},
	})
	return j
}

// emitTable opens a table only when the pipe row is confirmed by a
// separator row directly beneath it; an orphan pipe row yields nothing
// and stays prose. A confirmed table extends through the contiguous
// run of pipe rows that follows.
func emitTable(doc *model.Document, lines []linescan.Line, i int, els *[]model.Element) int {
	if i+1 >= len(lines) || lines[i+1].Kind != linescan.KindTableRow {
		return i + 1
	}
	header := tables.ParseRow(doc.Slice(lines[i].Content), lines[i].Content.Start)
	sep := tables.ParseRow(doc.Slice(lines[i+1].Content), lines[i+1].Content.Start)
	if len(header) == 0 || !tables.IsDelimiterRow(sep) {
		return i + 1
	}

	j := i + 2
	for j < len(lines) && lines[j].Kind == linescan.KindTableRow {
		j++
	}
	*els = append(*els, model.Element{
		Category: model.CategoryTable,
		Span:     model.Span{Start: lines[i].Content.Start, End: lines[j-1].Content.End},
		Meta:     model.Meta{Columns: len(header), DataRows: j - i - 2},
	})
	return j
}

func emitQuote(lines []linescan.Line, i int, els *[]model.Element) int {
	depth := 0
	j := i
	for j < len(lines) && lines[j].Kind == linescan.KindBlockquote {
		if lines[j].Depth > depth {
			depth = lines[j].Depth
		}
		j++
	}
	*els = append(*els, model.Element{
		Category: model.CategoryBlockquote,
		Span:     model.Span{Start: lines[i].Content.Start, End: lines[j-1].Content.End},
		Meta:     model.Meta{Depth: depth},
	})
	return j
}

// emitList consumes one list region: marker lines at any indentation
// plus plain continuation lines indented at least as far as the first
// marker. The List element opens at the first line with a real item
// marker and closes after the last item or continuation. A checkbox
// whose marker hugs the bracket ("-[x]") emits its Checkbox element
// but is not an item, so it neither opens nor extends the list.
func emitList(lines []linescan.Line, i int, els *[]model.Element) int {
	base := lines[i].Indent
	open := -1
	last := i
	j := i
	for ; j < len(lines); j++ {
		ln := lines[j]
		if ln.Kind == linescan.KindListItem {
			// The List opens before the line's Checkbox so that even
			// when all three share one span, the stable sort keeps the
			// List outermost and the Checkbox parents to it.
			if ln.ListItem && open < 0 {
				base = ln.Indent
				*els = append(*els, model.Element{
					Category: model.CategoryList,
					Span:     model.Span{Start: ln.Content.Start},
					Meta:     model.Meta{Ordered: ln.Ordered},
				})
				open = len(*els) - 1
			}
			if ln.Checkbox {
				*els = append(*els, model.Element{
					Category: model.CategoryCheckbox,
					Span:     ln.Content,
					Meta:     model.Meta{Checked: ln.Checked},
				})
			}
			if ln.ListItem {
				*els = append(*els, model.Element{
					Category: model.CategoryListItem,
					Span:     ln.Content,
					Meta:     model.Meta{Ordered: ln.Ordered},
				})
				last = j
			}
			continue
		}
		if open >= 0 && ln.Kind == linescan.KindPlain && ln.Indent >= base {
			last = j
			continue
		}
		break
	}
	if open >= 0 {
		(*els)[open].Span.End = lines[last].Content.End
	}
	return j
}
