// Package grid defines core types and sentinel errors for immutable
// cost grids: coordinates, cardinal directions, and construction errors.
package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCostRange indicates a negative cell cost.
	ErrCostRange = errors.New("grid: cell costs must be non-negative")
	// ErrBadDigit indicates ParseDigits met a character outside '0'..'9'.
	ErrBadDigit = errors.New("grid: rows must contain only digit characters")
)

// Coord is a grid position. (0,0) is the top-left corner; X grows to the
// right, Y grows downwards. Coord is comparable and may key maps.
type Coord struct {
	X, Y int
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	// Up decreases Y by one.
	Up Direction = iota
	// Down increases Y by one.
	Down
	// Left decreases X by one.
	Left
	// Right increases X by one.
	Right
)

// Directions lists all four cardinal directions in a fixed order.
// Treat it as a constant table; never mutate it.
var Directions = [4]Direction{Up, Down, Left, Right}

// deltas maps each Direction to its (dx, dy) step, indexed by the
// Direction value itself.
var deltas = [4][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// opposites maps each Direction to its 180° reverse.
var opposites = [4]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

// Opposite returns the 180° reverse of d.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Step returns the coordinate one cell away from c in direction d.
// The result may lie outside any particular grid; check with InBounds.
// Complexity: O(1).
func (d Direction) Step(c Coord) Coord {
	return Coord{X: c.X + deltas[d][0], Y: c.Y + deltas[d][1]}
}

// String returns the direction name ("Up", "Down", "Left", "Right").
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Direction(?)"
	}
}
