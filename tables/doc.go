// Package tables resolves pipe tables into navigable cell grids.
//
// A table element's span covers a header row, usually a separator row
// of dashes or colons, and any number of data rows. [Resolve] turns
// that span into a [Grid]: a 2-D coordinate space over the data rows,
// with the header kept alongside at row [HeaderRow]. The separator row
// carries no content and gets no coordinates of its own; a cursor
// sitting on it reports the header row.
//
// # Cells
//
// Rows are split on unescaped pipes by [ParseRow]. A cell is the run
// between two consecutive pipes, so text before the first pipe or
// after a trailing unclosed pipe never becomes a cell. Each [Cell]
// records both its full span and the trimmed span of its content; cell
// movement lands the cursor on the content, not the padding.
//
// # Ragged rows
//
// The header row fixes the column count. A data row with fewer cells
// is padded with empty cells sitting at the end of its line, and a row
// with more cells has the extras merged into its last column, so
// [Grid.CellAt] is total over the grid's dimensions either way.
//
// # Movement
//
// [Grid.Move] resolves a single step. Horizontal movement stays inside
// the current row and stops at its edges rather than wrapping.
// Vertical movement keeps the column, clamping it when the target row
// is narrower, and stops above the header and below the last data row.
// An exhausted direction reports ok false; deciding what to tell the
// user is the caller's business.
package tables
