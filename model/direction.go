package model

// Direction identifies which way a navigation request moves from the
// cursor. Next and Previous apply to linear jumps through the document;
// Left, Right, Up and Down apply to table cell movement.
type Direction int

const (
	Next Direction = iota
	Previous
	Left
	Right
	Up
	Down
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Next:
		return "Next"
	case Previous:
		return "Previous"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}
