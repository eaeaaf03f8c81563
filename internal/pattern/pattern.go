// Package pattern produces initial generations: random fills, centered
// seed shapes from a small library, and Perlin noise fields.
package pattern

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"sparse-life/internal/grid"
	"sparse-life/internal/life"
)

// Sentinel errors for seeding operations.
var (
	// ErrPatternTooLarge indicates a seed matrix wider or taller than the
	// board it should be centered on.
	ErrPatternTooLarge = errors.New("pattern: matrix exceeds grid dimensions")
	// ErrUnknownPattern indicates an identifier with no library entry.
	ErrUnknownPattern = errors.New("pattern: unknown pattern id")
)

// Matrix is a binary seed shape. Nonzero entries mark living cells. Rows
// may differ in length; the widest one decides the shape's width.
type Matrix [][]int

// Rows returns the height of the shape.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the width of the widest row.
func (m Matrix) Cols() int {
	w := 0
	for _, row := range m {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Centered places m in the middle of the board and returns the living
// cells it marks. The shape's top-left corner lands at column
// (cols-w)/2 and row (rows-h)/2, which reduces to exact centering when
// the parities match.
func Centered(board grid.Grid, m Matrix) (life.Generation, error) {
	h, w := m.Rows(), m.Cols()
	if w > board.Cols || h > board.Rows {
		return nil, fmt.Errorf("%w: %dx%d shape on a %dx%d board",
			ErrPatternTooLarge, w, h, board.Cols, board.Rows)
	}
	left := (board.Cols - w) / 2
	top := (board.Rows - h) / 2

	gen := make(life.Generation)
	for r, row := range m {
		for c, v := range row {
			if v != 0 {
				gen.Add(grid.Cell{Col: left + c, Row: top + r})
			}
		}
	}
	return gen, nil
}

// Random fills the board with a random population. The fill percentage
// is drawn uniformly from [minPct, maxPct), or is minPct when the range
// is empty; that share of the board is then drawn cell by cell, row
// before column. Draws can collide, so the realized population may
// undershoot the percentage; collisions are not retried.
func Random(board grid.Grid, minPct, maxPct int, rng *rand.Rand) life.Generation {
	pct := minPct
	if maxPct > minPct {
		pct = minPct + rng.IntN(maxPct-minPct)
	}
	n := board.CellCount() * pct / 100

	gen := make(life.Generation, n)
	for i := 0; i < n; i++ {
		row := rng.IntN(board.Rows)
		col := rng.IntN(board.Cols)
		gen.Add(grid.Cell{Col: col, Row: row})
	}
	return gen
}
