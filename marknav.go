// Package marknav locates Markdown structure for editor-style hosts: it
// parses a text snapshot into categorized, position-indexed elements and
// answers "nearest heading", "end of this block" and "cell to the right"
// style queries with rune offsets the host can move its cursor to.
//
// Basic usage:
//
//	snap, err := marknav.Open("notes.md")
//	if err != nil {
//	    // handle error
//	}
//	nav := marknav.New()
//	offset, err := nav.Navigate(snap, cursor, marknav.Request{
//	    Kind:      marknav.CategoryJump,
//	    Category:  model.CategoryHeading,
//	    Direction: model.Next,
//	})
//
// A host editing a live buffer builds the Snapshot itself, bumping
// Revision whenever the text changes:
//
//	snap := marknav.Snapshot{Text: buffer, Revision: fmt.Sprint(editCount)}
//
// The Navigator keeps the parsed structure for one revision and reuses
// it until the revision changes, so repeated queries against an
// unchanged buffer cost a pair of binary searches, not a reparse.
//
// For element lists and table geometry the lower-level index and tables
// packages are also available.
package marknav

import (
	"fmt"
	"io"

	"github.com/tsawler/marknav/reader"
)

// Snapshot is one immutable view of a document: the full text and a
// revision token that changes if and only if the text does. Two
// snapshots with equal revisions are assumed to carry equal text.
type Snapshot struct {
	Text     string
	Revision string
}

// Open reads the named file into a Snapshot. The bytes are decoded per
// their byte order mark (UTF-16 converted, UTF-8 passed through) and
// the revision is the hash of the decoded text.
//
// Example:
//
//	snap, err := marknav.Open("notes.md")
func Open(path string) (Snapshot, error) {
	text, err := reader.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Text: text, Revision: reader.Hash(text)}, nil
}

// FromReader decodes everything from r into a Snapshot. This is useful
// for stdin or any other non-file source.
//
// Example:
//
//	snap, err := marknav.FromReader(os.Stdin)
func FromReader(r io.Reader) (Snapshot, error) {
	text, err := reader.Decode(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Snapshot{Text: text, Revision: reader.Hash(text)}, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	snap := marknav.Must(marknav.Open("notes.md"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
