package streak_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/streak"
)

// benchGrid builds a deterministic random n×n digit grid for benchmarks.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = 1 + rng.Intn(9)
		}
		values[y] = row
	}
	g, err := grid.NewGrid(values)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkShortestPath_NarrowWindow measures the engine on a 200×200
// grid under a tight [1,3] window (small run dimension, many turns).
func BenchmarkShortestPath_NarrowWindow(b *testing.B) {
	g := benchGrid(b, 200)
	start := grid.Coord{X: 0, Y: 0}
	end := grid.Coord{X: 199, Y: 199}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := streak.ShortestPath(g, start, end,
			streak.WithMinStreak(1), streak.WithMaxStreak(3)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPath_WideWindow measures the engine on the same grid
// under a [4,10] window (larger run dimension, fewer legal turns).
func BenchmarkShortestPath_WideWindow(b *testing.B) {
	g := benchGrid(b, 200)
	start := grid.Coord{X: 0, Y: 0}
	end := grid.Coord{X: 199, Y: 199}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := streak.ShortestPath(g, start, end,
			streak.WithMinStreak(4), streak.WithMaxStreak(10)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPathMany measures batch fan-out of 16 identical
// queries over a shared 100×100 grid.
func BenchmarkShortestPathMany(b *testing.B) {
	g := benchGrid(b, 100)
	queries := make([]streak.Query, 16)
	for i := range queries {
		queries[i] = streak.Query{
			Start: grid.Coord{X: 0, Y: 0},
			End:   grid.Coord{X: 99, Y: 99},
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := streak.ShortestPathMany(context.Background(), g, queries,
			streak.WithMinStreak(4), streak.WithMaxStreak(10)); err != nil {
			b.Fatal(err)
		}
	}
}
