// Package streak implements Dijkstra's algorithm over the expanded
// (position × direction × run-length) state graph of a cost grid.
//
// Notes on implementation choices:
//
//   - The frontier is a binary min-heap under the "lazy decrease-key"
//     strategy: improvements push duplicates, stale entries are skipped
//     when popped (the best-cost map is authoritative).
//   - The goal test runs at pop time, not at push time. A popped state is
//     final by the uniform-cost loop invariant, so the first popped state
//     sitting on the target with a long-enough run carries the optimum.
//   - Two virtual seed states (down- and right-oriented, run 0) make the
//     first move unconstrained by any prior direction. A run-0 seed can
//     never pass the "run ≥ MinStreak before turning" test, so each seed
//     commits to its own axis.
package streak

import (
	"container/heap"

	"github.com/katalvlaran/gridroute/grid"
)

// ShortestPath returns the minimal total cost of a route from start to
// end on g that obeys the configured streak constraints. The cost of a
// route is the sum of the entry costs of every cell it enters; the start
// cell is never charged.
//
// Returns:
//
//   - the minimal cost, or
//   - ErrNilGrid / ErrStreakBounds / ErrOutOfBounds for invalid input, or
//   - ErrNoPath when no route satisfies the constraints (routine outcome).
//
// The two seed states orient the search down and right, so the first step
// always moves down or right; see the package documentation.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. 1 ≤ MinStreak ≤ MaxStreak (ErrStreakBounds).
//  3. start and end must be inside the grid (ErrOutOfBounds).
//
// Complexity: O(W×H×S log(W×H×S)) time, O(W×H×S) space, S = MaxStreak.
func ShortestPath(g *grid.Grid, start, end grid.Coord, opts ...Option) (int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid and coordinates.
	if err := validateQuery(g, start, end, cfg); err != nil {
		return 0, err
	}

	// 3) Run the search proper.
	return search(g, start, end, cfg)
}

// validateQuery performs the full precondition ladder shared by the
// single-query and batch entry points.
func validateQuery(g *grid.Grid, start, end grid.Coord, cfg Options) error {
	if g == nil {
		return ErrNilGrid
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return ErrOutOfBounds
	}

	return nil
}

// search assumes validated inputs and executes one uniform-cost search.
// It owns all mutable state for the call; g is only ever read.
func search(g *grid.Grid, start, end grid.Coord, cfg Options) (int64, error) {
	r := &runner{
		g:    g,
		opts: cfg,
		end:  end,
		best: make(map[state]int64),
		pq:   make(statePQ, 0, 2),
	}
	r.init(start)

	return r.process()
}

// state is the expanded graph node: where we are, the direction of the
// last step, and how many consecutive steps were taken in it (1-based;
// 0 only for the two virtual seeds). It is comparable and keys the
// best-cost map.
type state struct {
	pos grid.Coord
	dir grid.Direction
	run int
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g    *grid.Grid      // the input grid; read-only within the search
	opts Options         // validated configuration
	end  grid.Coord      // target coordinate
	best map[state]int64 // state → minimal accumulated cost known so far
	pq   statePQ         // min-heap frontier, lazy decrease-key
}

// init seeds the frontier with the two virtual start states, one per
// axis, both at cost 0 with run 0.
func (r *runner) init(start grid.Coord) {
	heap.Init(&r.pq)
	for _, dir := range [2]grid.Direction{grid.Down, grid.Right} {
		s := state{pos: start, dir: dir, run: 0}
		r.best[s] = 0
		heap.Push(&r.pq, &stateItem{st: s, cost: 0})
	}
}

// process is the uniform-cost main loop: pop the cheapest frontier
// entry, test the goal, expand the legal neighbor states.
//
// Loop termination conditions:
//
//   - A state on the target with run ≥ MinStreak is popped: its cost is
//     the global optimum (every remaining frontier entry costs at least
//     as much), return it.
//   - The frontier empties: no feasible route exists, return ErrNoPath.
func (r *runner) process() (int64, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest frontier entry.
		item := heap.Pop(&r.pq).(*stateItem)

		// 2) Skip stale entries: a strictly cheaper route to this exact
		//    state was already recorded and expanded.
		if known, ok := r.best[item.st]; ok && known < item.cost {
			continue
		}

		// 3) Goal test. Stopping is legal only once the final straight
		//    run has reached MinStreak; otherwise keep searching past
		//    the target.
		if item.st.pos == r.end && item.st.run >= r.opts.MinStreak {
			return item.cost, nil
		}

		// 4) Expand the legal single-step successors.
		r.expand(item.st, item.cost)
	}

	return 0, ErrNoPath
}

// expand relaxes every legal move out of cur: all four directions minus
// the 180° reverse, bounded by the grid and by the streak window.
// Assumes cost is the final (popped) cost of cur.
func (r *runner) expand(cur state, cost int64) {
	for _, dir := range grid.Directions {
		// Never reverse, regardless of run length.
		if dir == cur.dir.Opposite() {
			continue
		}

		// Bounds check and entry cost in one lookup.
		next := dir.Step(cur.pos)
		entry, ok := r.g.CostAt(next)
		if !ok {
			continue
		}

		// Continuing lengthens the run up to MaxStreak; turning resets
		// it to 1 but is only legal once the current run has reached
		// MinStreak. Seeds (run 0) therefore always continue their axis.
		run := 1
		if dir == cur.dir {
			run = cur.run + 1
			if run > r.opts.MaxStreak {
				continue
			}
		} else if cur.run < r.opts.MinStreak {
			continue
		}

		// Insert/push only on strict improvement over the best map.
		ns := state{pos: next, dir: dir, run: run}
		nc := cost + entry
		if known, seen := r.best[ns]; seen && known <= nc {
			continue
		}
		r.best[ns] = nc
		heap.Push(&r.pq, &stateItem{st: ns, cost: nc})
	}
}

// stateItem pairs an expanded state with its accumulated cost for
// ordering in the frontier.
type stateItem struct {
	st   state
	cost int64
}

// statePQ is a min-heap of *stateItem ordered by cost ascending. Ties
// are broken arbitrarily; tie order is irrelevant to the optimum.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
