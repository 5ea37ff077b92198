// Package streak provides an exact minimum-cost path search over weighted
// 2D grids under run-length ("streak") movement constraints: a route must
// travel at least MinStreak and at most MaxStreak cells in a straight line
// before it may turn or stop, and may never reverse 180°.
//
// Overview:
//
//   - A plain shortest-path search over raw positions cannot express these
//     rules, because legality of a move depends on recent movement history.
//     The engine therefore runs Dijkstra over an *expanded* state graph
//     whose nodes are (position, last direction, current run length)
//     triples — folding the history into the node makes the constraints
//     purely local, and a classic uniform-cost search becomes exact again.
//   - Costs are costs of entering a cell; the start cell is never charged.
//   - The search seeds one virtual state per axis at the start (run 0,
//     oriented down and right), so the first step moves down or right and
//     subsequent turns are governed only by the streak rules. Routes that
//     would have to open upwards or leftwards are therefore reported as
//     unreachable; orient the grid so the route opens down/right.
//   - A route may stop on the target only once its final straight run has
//     reached MinStreak; reaching the target mid-run is not terminal and
//     the search continues past it.
//
// When to use:
//
//   - Vehicle or agent routing with turning-radius or momentum rules
//     ("must travel N cells before turning", "may not go straight longer
//     than M cells").
//   - Any digit-grid route-planning problem where movement history
//     constrains the next move.
//
// Key features:
//
//   - Functional options tune the constraints without changing the API.
//   - WithMinStreak / WithMaxStreak: run-length window, default [1, ∞).
//   - ShortestPathMany: a batch entry point that fans independent queries
//     out across goroutines over one shared immutable Grid.
//
// Performance and complexity:
//
//	Let W×H be the grid size and S = MaxStreak.
//	- States: O(W×H × 4 × S); edges: ≤ 3 per state.
//	- Time:  O(W×H×S × log(W×H×S)) with the binary-heap frontier
//	  under the lazy decrease-key strategy.
//	- Space: O(W×H×S) for the best-cost map and the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      a nil *grid.Grid was passed.
//   - ErrStreakBounds: MinStreak < 1 or MinStreak > MaxStreak.
//   - ErrOutOfBounds:  start or end lies outside the grid.
//   - ErrNoPath:       no route satisfies the constraints. This is the
//     one routine, expected outcome — handle it as data, not as a fault.
//
// API reference:
//
//	func ShortestPath(
//	    g *grid.Grid,
//	    start, end grid.Coord,
//	    opts ...Option,
//	) (int64, error)
//
//	func ShortestPathMany(
//	    ctx context.Context,
//	    g *grid.Grid,
//	    queries []Query,
//	    opts ...Option,
//	) ([]int64, error)
//
// Determinism:
//
//   - For fixed inputs the returned cost is always the same. Ties in the
//     frontier are broken arbitrarily; tie order affects neither
//     correctness nor the optimal value, only traversal order.
//
// Thread safety:
//
//   - Each call owns its private best-cost map and frontier; the Grid is
//     read-only. Any number of searches may run concurrently over the
//     same Grid without locking.
//
// See also:
//
//   - grid.Grid, grid.ParseDigits: building the cost matrix.
package streak
