package pattern

import (
	"github.com/aquilax/go-perlin"

	"sparse-life/internal/grid"
	"sparse-life/internal/life"
)

// Perlin field shape. Three octaves with persistence 2 give features a
// few cells wide before scaling.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Noise seeds the board from a Perlin field: every cell whose noise
// value exceeds threshold starts alive. Scale stretches the field, so
// larger values grow larger blobs; values at or below zero fall back to
// one. Samples are taken at cell centers because the field is zero on
// integer lattice points. The same seed always produces the same field.
func Noise(board grid.Grid, scale, threshold float64, seed int64) life.Generation {
	if scale <= 0 {
		scale = 1
	}
	field := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	gen := make(life.Generation)
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			x := (float64(col) + 0.5) / scale
			y := (float64(row) + 0.5) / scale
			if field.Noise2D(x, y) > threshold {
				gen.Add(grid.Cell{Col: col, Row: row})
			}
		}
	}
	return gen
}
