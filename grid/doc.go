// Package grid models an immutable rectangular 2D matrix of non-negative
// cell entry costs, together with the coordinate and direction primitives
// every grid routing algorithm needs.
//
// What:
//
//   - Grid wraps a rectangular [][]int of entry costs, deep-copied at
//     construction so callers cannot mutate it afterwards.
//   - Coord is an (X, Y) position; (0,0) is the top-left corner, X grows
//     rightwards, Y grows downwards.
//   - Direction enumerates the four cardinal moves with deterministic
//     opposites and coordinate deltas.
//   - ParseDigits builds a Grid from raw digit lines — one row per line,
//     one digit per column, no separators.
//
// Why:
//
//   - Route planning: the cost to *enter* a cell is the cell's value.
//   - Terrain analysis: digit heat-maps, toll maps, wear maps.
//   - As the read-only substrate for concurrent searches: a Grid is safe
//     to share across goroutines because nothing can mutate it.
//
// Complexity:
//
//   - NewGrid / ParseDigits: O(W×H) time and memory (one deep copy).
//   - InBounds / CostAt:     O(1).
//
// Errors (sentinel):
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCostRange: a cell cost is negative.
//   - ErrBadDigit: ParseDigits met a non-digit character.
package grid
