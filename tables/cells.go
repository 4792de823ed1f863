package tables

import (
	"unicode"

	"github.com/tsawler/marknav/model"
)

// HeaderRow is the row coordinate of the header cells. Data rows are
// numbered from zero, so the header sits above them at -1.
const HeaderRow = -1

// Cell is one cell of a table row. Span covers everything between the
// enclosing pipes, Content the same range with surrounding whitespace
// trimmed. Both are absolute rune offsets into the document. For an
// empty cell, Content collapses to a zero-width span at Span.Start.
type Cell struct {
	Span    model.Span
	Content model.Span
	Text    string
	Row     int
	Col     int
}

// ParseRow splits one line of a table into cells. Cells are the runs
// between consecutive unescaped pipes; text before the first pipe or
// after the last is not a cell. A pipe preceded by a backslash does
// not split. base is the absolute rune offset of text's first rune.
//
// A line with fewer than two unescaped pipes yields no cells.
func ParseRow(text string, base int) []Cell {
	var pipes []int
	prev := rune(0)
	idx := 0
	for _, r := range text {
		if r == '|' && prev != '\\' {
			pipes = append(pipes, idx)
		}
		prev = r
		idx++
	}
	if len(pipes) < 2 {
		return nil
	}

	runes := []rune(text)
	cells := make([]Cell, 0, len(pipes)-1)
	for i := 0; i+1 < len(pipes); i++ {
		start := pipes[i] + 1
		end := pipes[i+1]
		cell := runes[start:end]

		lead := 0
		for lead < len(cell) && unicode.IsSpace(cell[lead]) {
			lead++
		}
		trail := len(cell)
		for trail > lead && unicode.IsSpace(cell[trail-1]) {
			trail--
		}

		c := Cell{
			Span: model.Span{Start: base + start, End: base + end},
			Col:  len(cells),
		}
		if trail <= lead {
			c.Content = model.Span{Start: base + start, End: base + start}
		} else {
			c.Content = model.Span{Start: base + start + lead, End: base + start + trail}
			c.Text = string(cell[lead:trail])
		}
		cells = append(cells, c)
	}
	return cells
}

// IsDelimiterRow reports whether the cells form a header separator
// row: every cell is a run of dashes with an optional colon at either
// end.
func IsDelimiterRow(cells []Cell) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !isDelimiterCell(c.Text) {
			return false
		}
	}
	return true
}

func isDelimiterCell(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	i, j := 0, len(runes)
	if runes[i] == ':' {
		i++
	}
	if j > i && runes[j-1] == ':' {
		j--
	}
	if j <= i {
		return false
	}
	for ; i < j; i++ {
		if runes[i] != '-' {
			return false
		}
	}
	return true
}

// colHit finds the column whose cell span contains offset. Cell ends
// are inclusive here so a cursor sitting on a pipe belongs to the cell
// ending there. When no cell matches, the first column is assumed.
func colHit(cells []Cell, offset int) int {
	for i, c := range cells {
		if offset >= c.Span.Start && offset <= c.Span.End {
			return i
		}
	}
	return 0
}
