package grid

// Grid is an immutable rectangular matrix of non-negative cell entry
// costs. Once built it is never mutated, so a single Grid may back any
// number of concurrent read-only searches without locking.
type Grid struct {
	width, height int
	cells         [][]int
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs. The input is deep-copied to guarantee immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCostRange if any cost is negative.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, c := range row {
			if c < 0 {
				return nil, ErrCostRange
			}
		}
	}
	// Deep copy to prevent external mutation.
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CostAt returns the cost of entering cell c and true, or 0 and false
// when c is out of bounds. The comma-ok form lets tight search loops
// fold the bounds check into the lookup.
// Complexity: O(1).
func (g *Grid) CostAt(c Coord) (int64, bool) {
	if !g.InBounds(c) {
		return 0, false
	}

	return int64(g.cells[c.Y][c.X]), true
}

// Rows returns a deep copy of the cost matrix, row-major. Mutating the
// returned slices never affects the Grid.
// Complexity: O(W×H).
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = make([]int, g.width)
		copy(out[y], g.cells[y])
	}

	return out
}
