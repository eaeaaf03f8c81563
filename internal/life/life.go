// Package life implements a sparse Game of Life: the board state is the
// set of living cells, so advancing a generation costs time proportional
// to the population rather than the board area.
package life

import "sparse-life/internal/grid"

// Rules holds the thresholds that drive one generation step. A living
// cell survives when its living-neighbor count falls inside
// [SurviveMin, SurviveMax]; a candidate cell is born when its count
// equals Birth exactly.
type Rules struct {
	SurviveMin int
	SurviveMax int
	Birth      int
}

// StandardRules returns Conway's canonical thresholds: survive on two or
// three neighbors, birth on exactly three.
func StandardRules() Rules {
	return Rules{SurviveMin: 2, SurviveMax: 3, Birth: 3}
}

// Advance computes the next generation from cur. It is a pure function:
// cur is never modified and the result never aliases it.
//
// The step runs in two passes. The first scans every living cell,
// keeping the ones whose living-neighbor count falls inside the survival
// range and collecting the union of all their neighbors as birth
// candidates. The second recounts each candidate's living neighbors and
// adds the candidate when the count hits the birth threshold exactly.
// Candidates that fall outside the board (possible on one-wide bounded
// axes) are discarded, so the result only ever holds in-range cells.
//
// Neighbor counts use the raw neighbor sequence, so a coordinate that
// appears twice under degenerate wrapping counts twice.
func Advance(g grid.Grid, r Rules, cur Generation) Generation {
	next := make(Generation, len(cur))
	candidates := make(Generation, len(cur)*2)
	buf := make([]grid.Cell, 0, 8)

	for c := range cur {
		buf = g.AppendNeighbors(buf[:0], c)
		living := 0
		for _, n := range buf {
			if cur.Has(n) {
				living++
			}
			candidates.Add(n)
		}
		if living >= r.SurviveMin && living <= r.SurviveMax {
			next.Add(c)
		}
	}

	for c := range candidates {
		if !g.Contains(c) {
			continue
		}
		buf = g.AppendNeighbors(buf[:0], c)
		living := 0
		for _, n := range buf {
			if cur.Has(n) {
				living++
			}
		}
		if living == r.Birth {
			next.Add(c)
		}
	}
	return next
}
