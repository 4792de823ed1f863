package marknav

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/tsawler/marknav/extract"
	"github.com/tsawler/marknav/index"
	"github.com/tsawler/marknav/model"
	"github.com/tsawler/marknav/tables"
)

// RequestKind selects the navigation family.
type RequestKind int

const (
	// CategoryJump moves to the nearest element of Request.Category in
	// Request.Direction (Next or Previous).
	CategoryJump RequestKind = iota
	// BlockBoundary moves to an edge of the block enclosing the cursor.
	BlockBoundary
	// CellMove moves between table cells (Left, Right, Up or Down).
	CellMove
)

// Boundary selects which edge of the enclosing block a [BlockBoundary]
// request lands on.
type Boundary int

const (
	BlockStart Boundary = iota
	BlockEnd
)

// Request describes one navigation. Kind decides which other fields
// matter: CategoryJump reads Category, Level and Direction;
// BlockBoundary reads Boundary; CellMove reads Direction.
type Request struct {
	Kind      RequestKind
	Category  model.Category
	Level     int // headings only; 0 matches any level
	Direction model.Direction
	Boundary  Boundary
}

// Navigator resolves navigation requests against document snapshots.
// It keeps the parsed structure of the most recent revision, so one
// Navigator should serve one open document. Methods are safe for
// concurrent use.
type Navigator struct {
	opts Options

	mu    sync.Mutex
	cache *cacheSlot
}

// cacheSlot is everything derived from one revision's text. It is
// built completely before being published and never mutated afterward,
// except for the grid map, which grows under the Navigator's lock.
type cacheSlot struct {
	revision string
	doc      *model.Document
	idx      *index.Index
	grids    map[model.ElementID]*tables.Grid
}

// New returns a Navigator with [DefaultOptions].
func New() *Navigator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions returns a Navigator with the given options.
func NewWithOptions(opts Options) *Navigator {
	return &Navigator{opts: opts}
}

// Navigate resolves one request against a snapshot and returns the rune
// offset to move the cursor to. The cursor must lie in [0, rune length]
// of the snapshot text ([ErrInvalidOffset]); a request that nothing in
// the document satisfies returns [ErrNoMatch]; a cell move outside any
// table returns [ErrUnresolvableGrid].
func (n *Navigator) Navigate(snap Snapshot, cursor int, req Request) (int, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}
	if length := utf8.RuneCountInString(snap.Text); cursor < 0 || cursor > length {
		return 0, fmt.Errorf("cursor %d outside [0, %d]: %w", cursor, length, ErrInvalidOffset)
	}

	s := n.slot(snap)
	switch req.Kind {
	case CategoryJump:
		return n.jump(s, cursor, req)
	case BlockBoundary:
		return n.boundary(s, cursor, req)
	default:
		return n.cellMove(s, cursor, req)
	}
}

// Elements returns the snapshot's elements of one category, ordered by
// span start.
func (n *Navigator) Elements(snap Snapshot, cat model.Category) ([]model.Element, error) {
	if cat == model.CategoryUnknown {
		return nil, fmt.Errorf("elements of unknown category: %w", ErrNoMatch)
	}
	return n.slot(snap).idx.Category(cat), nil
}

// Grid returns the resolved grid of the table under the cursor together
// with the cursor's current cell coordinates.
func (n *Navigator) Grid(snap Snapshot, cursor int) (*tables.Grid, int, int, error) {
	if length := utf8.RuneCountInString(snap.Text); cursor < 0 || cursor > length {
		return nil, 0, 0, fmt.Errorf("cursor %d outside [0, %d]: %w", cursor, length, ErrInvalidOffset)
	}
	s := n.slot(snap)
	g, err := n.gridAt(s, cursor)
	if err != nil {
		return nil, 0, 0, err
	}
	row, col, ok := g.Locate(cursor)
	if !ok {
		return nil, 0, 0, fmt.Errorf("offset %d between table rows: %w", cursor, ErrUnresolvableGrid)
	}
	return g, row, col, nil
}

func validateRequest(req Request) error {
	switch req.Kind {
	case CategoryJump:
		if req.Direction != model.Next && req.Direction != model.Previous {
			return fmt.Errorf("category jump needs direction Next or Previous, got %v", req.Direction)
		}
		if req.Category == model.CategoryUnknown {
			return fmt.Errorf("category jump needs a category")
		}
		if req.Level != 0 && req.Category != model.CategoryHeading {
			return fmt.Errorf("level applies to headings, not %v", req.Category)
		}
		if req.Level < 0 || req.Level > 6 {
			return fmt.Errorf("heading level %d outside [0, 6]", req.Level)
		}
	case BlockBoundary:
		if req.Boundary != BlockStart && req.Boundary != BlockEnd {
			return fmt.Errorf("unknown boundary %d", req.Boundary)
		}
	case CellMove:
		switch req.Direction {
		case model.Left, model.Right, model.Up, model.Down:
		default:
			return fmt.Errorf("cell move needs direction Left, Right, Up or Down, got %v", req.Direction)
		}
	default:
		return fmt.Errorf("unknown request kind %d", req.Kind)
	}
	return nil
}

// slot returns the cache entry for the snapshot's revision, building it
// when the revision is new. The build happens outside the lock and the
// finished slot is published whole, so concurrent callers either see
// the previous revision or the complete new one.
func (n *Navigator) slot(snap Snapshot) *cacheSlot {
	n.mu.Lock()
	if n.cache != nil && n.cache.revision == snap.Revision {
		s := n.cache
		n.mu.Unlock()
		return s
	}
	n.mu.Unlock()

	doc := model.NewDocument(snap.Text, snap.Revision)
	els := extract.Extract(doc, extract.Config{
		TildeFences: n.opts.TildeFences,
		BlocksOnly:  !n.opts.Inline,
	})
	s := &cacheSlot{
		revision: snap.Revision,
		doc:      doc,
		idx:      index.Build(snap.Revision, els),
		grids:    make(map[model.ElementID]*tables.Grid),
	}

	n.mu.Lock()
	n.cache = s
	n.mu.Unlock()
	return s
}

func (n *Navigator) jump(s *cacheSlot, cursor int, req Request) (int, error) {
	var el model.Element
	var ok bool
	if req.Category == model.CategoryHeading && req.Level != 0 {
		el, ok = s.idx.QueryHeading(req.Level, cursor, req.Direction)
	} else {
		el, ok = s.idx.Query(req.Category, cursor, req.Direction)
	}
	if !ok {
		return 0, fmt.Errorf("no %v toward %v from offset %d: %w", req.Category, req.Direction, cursor, ErrNoMatch)
	}
	return el.Span.Start, nil
}

func (n *Navigator) boundary(s *cacheSlot, cursor int, req Request) (int, error) {
	el, ok := s.idx.EnclosingBlock(cursor)
	if !ok {
		return 0, fmt.Errorf("no block around offset %d: %w", cursor, ErrNoMatch)
	}
	if req.Boundary == BlockEnd {
		return el.Span.End, nil
	}
	return el.Span.Start, nil
}

func (n *Navigator) cellMove(s *cacheSlot, cursor int, req Request) (int, error) {
	g, err := n.gridAt(s, cursor)
	if err != nil {
		return 0, err
	}
	row, col, ok := g.Locate(cursor)
	if !ok {
		return 0, fmt.Errorf("offset %d between table rows: %w", cursor, ErrUnresolvableGrid)
	}
	cell, ok := g.Move(row, col, req.Direction)
	if !ok {
		return 0, fmt.Errorf("edge of table moving %v from row %d col %d: %w", req.Direction, row, col, ErrNoMatch)
	}
	return cell.Content.Start, nil
}

// gridAt finds the table enclosing the cursor and returns its grid,
// resolving and caching it on first use. Grids live exactly as long as
// the slot they hang off, so a new revision drops them all.
func (n *Navigator) gridAt(s *cacheSlot, cursor int) (*tables.Grid, error) {
	el, ok := s.idx.EnclosingBlock(cursor)
	if !ok || el.Category != model.CategoryTable {
		return nil, fmt.Errorf("offset %d is not inside a table: %w", cursor, ErrUnresolvableGrid)
	}

	n.mu.Lock()
	g, ok := s.grids[el.ID]
	n.mu.Unlock()
	if ok {
		return g, nil
	}

	g, err := tables.Resolve(s.doc, el.Span)
	if err != nil {
		return nil, fmt.Errorf("offset %d: %v: %w", cursor, err, ErrUnresolvableGrid)
	}
	n.mu.Lock()
	s.grids[el.ID] = g
	n.mu.Unlock()
	return g, nil
}
