package grid

import (
	"fmt"
	"strings"
)

// ParseDigits builds a Grid from raw digit lines: one row per line, one
// digit ('0'..'9') per column, no separators. A trailing newline and
// Windows line endings are tolerated; interior blank lines are not.
//
// Returns ErrEmptyGrid for empty input, ErrNonRectangular for ragged
// rows, and ErrBadDigit (wrapped with position context) for any other
// character.
// Complexity: O(len(input)).
func ParseDigits(input string) (*Grid, error) {
	// Normalize line endings, then drop a single trailing newline so that
	// "12\n34\n" and "12\n34" parse identically.
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil, ErrEmptyGrid
	}

	lines := strings.Split(input, "\n")
	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrBadDigit, ch, y, x)
			}
			row[x] = int(ch - '0')
		}
		values[y] = row
	}

	// NewGrid re-validates shape and performs the defensive deep copy.
	return NewGrid(values)
}
