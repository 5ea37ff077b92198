// Package gridroute finds minimum-cost routes across weighted 2D grids
// when plain shortest paths are not enough: every route must also obey
// run-length ("streak") constraints on consecutive moves in the same
// direction.
//
// 🚀 What is gridroute?
//
//	A small, focused library built from two packages:
//		• grid/   — immutable digit-cost matrices, coordinates & directions
//		• streak/ — Dijkstra over the (position × direction × run) state
//		            space, honoring minimum and maximum run lengths
//
// ✨ Why choose gridroute?
//
//   - Exact answers – uniform-cost search over the expanded state graph,
//     provably optimal for non-negative cell costs
//   - Beginner-friendly – minimal API, functional options, sentinel errors
//   - Pure Go core – container/heap frontier, no cgo
//   - Batch-ready – run many independent queries concurrently over one
//     shared immutable Grid
//
// Quick ASCII example (costs are digits, route must go at least 1 and at
// most 3 cells straight before turning):
//
//	2 4 1
//	3 2 1
//	3 2 1
//
//	streak.ShortestPath(g, grid.Coord{0, 0}, grid.Coord{2, 2},
//	    streak.WithMinStreak(1), streak.WithMaxStreak(3))
//
// Dive into the streak package documentation for the full state-space
// model, complexity notes and error contract.
//
//	go get github.com/katalvlaran/gridroute
package gridroute
