package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/tsawler/marknav"
	"github.com/tsawler/marknav/model"
	"github.com/tsawler/marknav/tables"
)

var (
	listCat   = flag.String("list", "", "print every element of the named `category`")
	nextCat   = flag.String("next", "", "jump forward to the nearest element of the named `category`")
	prevCat   = flag.String("prev", "", "jump backward to the nearest element of the named `category`")
	gridMode  = flag.Bool("grid", false, "print the table under the cursor as an aligned grid")
	fromPos   = flag.Int("from", 0, "cursor position as a rune offset")
	headLevel = flag.Int("level", 0, "restrict heading jumps to one level, 1 through 6")
	verbose   = flag.Bool("v", false, "enable debug logging")
)

func usage() {
	fmt.Fprintf(os.Stderr, `mdnav - navigate the structure of a markdown file

Usage:
  mdnav -list <category> <file.md>
  mdnav -next <category> [-level N] [-from N] <file.md>
  mdnav -prev <category> [-level N] [-from N] <file.md>
  mdnav -grid -from N <file.md>

Categories:
  %s

Offsets are rune positions, not byte positions.
`, strings.Join(categoryNames(), ", "))
}

func main() {
	flag.Usage = usage
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	snap, err := marknav.Open(flag.Arg(0))
	if err != nil {
		logger.Fatal("cannot open document", "error", err)
	}
	logger.Debug("document loaded",
		"file", flag.Arg(0),
		"runes", utf8.RuneCountInString(snap.Text),
		"revision", snap.Revision[:12])

	nav := marknav.New()

	switch {
	case *listCat != "":
		err = runList(nav, snap, *listCat)
	case *nextCat != "":
		err = runJump(nav, snap, *nextCat, model.Next)
	case *prevCat != "":
		err = runJump(nav, snap, *prevCat, model.Previous)
	case *gridMode:
		err = runGrid(nav, snap)
	default:
		usage()
		os.Exit(2)
	}

	switch {
	case err == nil:
	case errors.Is(err, marknav.ErrNoMatch):
		logger.Warn("no match", "error", err)
		os.Exit(1)
	default:
		logger.Fatal("command failed", "error", err)
	}
}

// runList prints one line per element: start offset, category, and the
// first line of the element's text.
func runList(nav *marknav.Navigator, snap marknav.Snapshot, name string) error {
	cat, err := model.ParseCategory(name)
	if err != nil {
		return err
	}
	els, err := nav.Elements(snap, cat)
	if err != nil {
		return err
	}
	runes := []rune(snap.Text)
	for _, el := range els {
		fmt.Printf("%6d  %-12s  %s\n", el.Span.Start, label(el), firstLine(runes, el.Span))
	}
	return nil
}

// runJump prints the landing offset and the line it falls on.
func runJump(nav *marknav.Navigator, snap marknav.Snapshot, name string, dir model.Direction) error {
	cat, err := model.ParseCategory(name)
	if err != nil {
		return err
	}
	offset, err := nav.Navigate(snap, *fromPos, marknav.Request{
		Kind:      marknav.CategoryJump,
		Category:  cat,
		Direction: dir,
		Level:     *headLevel,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%d\t%s\n", offset, lineAt([]rune(snap.Text), offset))
	return nil
}

// runGrid resolves the table under the cursor and dumps it with the
// cursor cell marked.
func runGrid(nav *marknav.Navigator, snap marknav.Snapshot) error {
	g, row, col, err := nav.Grid(snap, *fromPos)
	if err != nil {
		return err
	}
	fmt.Printf("table %v: %d columns, %d data rows, cursor at (%d, %d)\n",
		g.Span(), g.Cols(), g.Rows(), row, col)
	fmt.Print(renderGrid(g, row, col))
	return nil
}

// renderGrid lays the header and data rows out with every column padded
// to a shared display width. Widths come from go-runewidth, so CJK text
// and emoji keep the columns aligned. The cursor cell is marked with >.
func renderGrid(g *tables.Grid, curRow, curCol int) string {
	widths := make([]int, g.Cols())
	measure := func(cells []tables.Cell) {
		for i, c := range cells {
			if i < len(widths) {
				if w := runewidth.StringWidth(c.Text); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	measure(g.Header())
	for r := 0; r < g.Rows(); r++ {
		measure(g.Row(r))
	}

	var sb strings.Builder
	writeRow := func(cells []tables.Cell, row int) {
		sb.WriteString("|")
		for i := 0; i < g.Cols(); i++ {
			text := ""
			if i < len(cells) {
				text = cells[i].Text
			}
			mark := " "
			if row == curRow && i == curCol {
				mark = ">"
			}
			sb.WriteString(mark)
			sb.WriteString(text)
			sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(text)+1))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}

	writeRow(g.Header(), tables.HeaderRow)
	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")
	for r := 0; r < g.Rows(); r++ {
		writeRow(g.Row(r), r)
	}
	return sb.String()
}

func label(el model.Element) string {
	if el.Category == model.CategoryHeading {
		return fmt.Sprintf("%s/%d", el.Category, el.Level)
	}
	return el.Category.String()
}

// firstLine returns the first line of the span's text, truncated to a
// terminal-friendly width.
func firstLine(runes []rune, span model.Span) string {
	end := span.Start
	for end < span.End && runes[end] != '\n' {
		end++
	}
	return runewidth.Truncate(string(runes[span.Start:end]), 72, "...")
}

// lineAt returns the whole line containing offset.
func lineAt(runes []rune, offset int) string {
	start := offset
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return string(runes[start:end])
}

func categoryNames() []string {
	cats := model.Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, strings.ToLower(c.String()))
	}
	return names
}
