package marknav

import "errors"

// Sentinel errors returned by [Navigator.Navigate] and friends. They
// are always wrapped with the offending values, so match them with
// errors.Is.
var (
	// ErrNoMatch reports that no element satisfies the request: nothing
	// of the category lies in that direction, no block encloses the
	// cursor, or a cell move ran off the edge of its table. It is the
	// ordinary outcome of navigating from a document's first or last
	// element.
	ErrNoMatch = errors.New("no match")

	// ErrInvalidOffset reports a cursor outside [0, rune length].
	ErrInvalidOffset = errors.New("offset out of range")

	// ErrUnresolvableGrid reports a cell move with no table under the
	// cursor.
	ErrUnresolvableGrid = errors.New("no table at offset")
)
