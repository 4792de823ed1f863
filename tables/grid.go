package tables

import (
	"errors"
	"fmt"

	"github.com/tsawler/marknav/model"
)

// Grid is the resolved cell structure of one table. The first row of
// the table span is the header, an immediately following separator row
// of dashes or colons is recorded but carries no cells of its own, and
// every remaining row is a data row. The header fixes the column
// count: short data rows are padded with empty cells at the end of
// their line, and cells beyond the header width are merged into the
// last column.
type Grid struct {
	span model.Span

	header     []Cell
	headerLine model.Span // full line, terminator included

	sepCells []Cell // used for column hit tests only
	sepLine  model.Span
	sepSeen  bool

	rows     [][]Cell
	rowLines []model.Span
}

// Resolve builds the grid for the table occupying span. The span is
// expected to cover whole lines, the way table elements are extracted.
// Rows are read from the document line table, so escaped pipes and
// ragged rows resolve the same way here as everywhere else.
func Resolve(doc *model.Document, span model.Span) (*Grid, error) {
	g := &Grid{span: span}
	for i := doc.LineIndex(span.Start); i < doc.LineCount(); i++ {
		line := doc.LineSpan(i)
		if line.Start >= span.End {
			break
		}
		content := doc.LineContentSpan(i)
		cells := ParseRow(doc.Slice(content), content.Start)

		switch {
		case g.header == nil:
			if len(cells) == 0 {
				return nil, fmt.Errorf("tables: no cells in header row at line %d", i)
			}
			for c := range cells {
				cells[c].Row = HeaderRow
			}
			g.header = cells
			g.headerLine = line
		case !g.sepSeen && len(g.rows) == 0 && IsDelimiterRow(cells):
			g.sepCells = cells
			g.sepLine = line
			g.sepSeen = true
		default:
			g.addRow(doc, cells, content, line)
		}
	}
	if g.header == nil {
		return nil, errors.New("tables: table span has no rows")
	}
	return g, nil
}

// addRow normalizes cells to the header width and appends them as the
// next data row.
func (g *Grid) addRow(doc *model.Document, cells []Cell, content, line model.Span) {
	cols := len(g.header)
	row := len(g.rows)

	if len(cells) > cols {
		merged := cells[cols-1]
		merged.Span.End = cells[len(cells)-1].Span.End
		merged.Content, merged.Text = trimSpan(doc, merged.Span)
		cells = append(cells[:cols-1], merged)
	}
	for len(cells) < cols {
		at := content.End
		cells = append(cells, Cell{
			Span:    model.Span{Start: at, End: at},
			Content: model.Span{Start: at, End: at},
		})
	}
	for c := range cells {
		cells[c].Row = row
		cells[c].Col = c
	}

	g.rows = append(g.rows, cells)
	g.rowLines = append(g.rowLines, line)
}

// trimSpan shrinks span to its non-whitespace core and returns the
// trimmed span with the text it covers.
func trimSpan(doc *model.Document, span model.Span) (model.Span, string) {
	runes := doc.Runes()
	start, end := span.Start, span.End
	for start < end && isSpace(runes[start]) {
		start++
	}
	for end > start && isSpace(runes[end-1]) {
		end--
	}
	if start >= end {
		return model.Span{Start: span.Start, End: span.Start}, ""
	}
	trimmed := model.Span{Start: start, End: end}
	return trimmed, doc.Slice(trimmed)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Span returns the table span the grid was resolved from.
func (g *Grid) Span() model.Span { return g.span }

// Cols returns the column count, fixed by the header row.
func (g *Grid) Cols() int { return len(g.header) }

// Rows returns the number of data rows. The header is not counted.
func (g *Grid) Rows() int { return len(g.rows) }

// Header returns the header cells.
func (g *Grid) Header() []Cell { return g.header }

// Row returns the cells of data row i.
func (g *Grid) Row(i int) []Cell {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// CellAt returns the cell at the given coordinates. Row [HeaderRow]
// addresses the header. Every data row has exactly Cols() cells, so
// the lookup is total over row < Rows(), col < Cols().
func (g *Grid) CellAt(row, col int) (Cell, bool) {
	cells := g.cellsFor(row)
	if col < 0 || col >= len(cells) {
		return Cell{}, false
	}
	return cells[col], true
}

func (g *Grid) cellsFor(row int) []Cell {
	if row == HeaderRow {
		return g.header
	}
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	return g.rows[row]
}

// Locate maps a document offset to grid coordinates. Offsets on the
// header or separator line report [HeaderRow]; the separator line
// borrows its column from its own dash cells since it has no content
// to land on. Offsets outside the grid's lines report ok false.
func (g *Grid) Locate(offset int) (row, col int, ok bool) {
	switch {
	case g.headerLine.Contains(offset):
		return HeaderRow, colHit(g.header, offset), true
	case g.sepSeen && g.sepLine.Contains(offset):
		col := colHit(g.sepCells, offset)
		if col >= len(g.header) {
			col = len(g.header) - 1
		}
		return HeaderRow, col, true
	}
	for i, line := range g.rowLines {
		if line.Contains(offset) {
			return i, colHit(g.rows[i], offset), true
		}
	}
	return 0, 0, false
}

// Move resolves one cell movement from the given coordinates. Left and
// Right stay within the row and report false past its first or last
// column, never wrapping to an adjacent row. Up and Down keep the
// column, clamping it when the target row is narrower, and report
// false past the header or the last data row.
func (g *Grid) Move(row, col int, dir model.Direction) (Cell, bool) {
	switch dir {
	case model.Left:
		return g.CellAt(row, col-1)
	case model.Right:
		return g.CellAt(row, col+1)
	case model.Up:
		switch {
		case row == HeaderRow:
			return Cell{}, false
		case row == 0:
			return g.CellAt(HeaderRow, g.clampCol(HeaderRow, col))
		default:
			return g.CellAt(row-1, g.clampCol(row-1, col))
		}
	case model.Down:
		next := row + 1
		if row == HeaderRow {
			next = 0
		}
		if next >= len(g.rows) {
			return Cell{}, false
		}
		return g.CellAt(next, g.clampCol(next, col))
	}
	return Cell{}, false
}

func (g *Grid) clampCol(row, col int) int {
	if n := len(g.cellsFor(row)); col >= n {
		return n - 1
	}
	return col
}
