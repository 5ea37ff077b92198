// Package grid_test provides runnable examples for the grid package.
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// ExampleParseDigits parses a small digit block and inspects it.
func ExampleParseDigits() {
	// 1) One row per line, one digit per column, no separators.
	g, err := grid.ParseDigits("241\n321\n325\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Dimensions and a couple of entry costs.
	fmt.Printf("size=%dx%d\n", g.Width(), g.Height())
	c, _ := g.CostAt(grid.Coord{X: 2, Y: 2})
	fmt.Printf("cost(2,2)=%d\n", c)
	// Output:
	// size=3x3
	// cost(2,2)=5
}

// ExampleDirection_Step walks one cell in each direction from (1,1).
func ExampleDirection_Step() {
	c := grid.Coord{X: 1, Y: 1}
	for _, d := range grid.Directions {
		fmt.Println(d, d.Step(c))
	}
	// Output:
	// Up {1 0}
	// Down {1 2}
	// Left {0 1}
	// Right {2 1}
}
