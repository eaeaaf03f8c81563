package life

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"sparse-life/internal/grid"
)

// Generation is the set of living cells at one point in time. The zero
// value is not usable; construct with NewGeneration or make.
type Generation map[grid.Cell]struct{}

// NewGeneration returns a set holding the given cells.
func NewGeneration(cells ...grid.Cell) Generation {
	gen := make(Generation, len(cells))
	for _, c := range cells {
		gen.Add(c)
	}
	return gen
}

// Add marks c as living.
func (gen Generation) Add(c grid.Cell) { gen[c] = struct{}{} }

// Remove marks c as dead.
func (gen Generation) Remove(c grid.Cell) { delete(gen, c) }

// Has reports whether c is living.
func (gen Generation) Has(c grid.Cell) bool {
	_, ok := gen[c]
	return ok
}

// Len returns the population.
func (gen Generation) Len() int { return len(gen) }

// Clone returns an independent copy of the set.
func (gen Generation) Clone() Generation {
	out := make(Generation, len(gen))
	for c := range gen {
		out[c] = struct{}{}
	}
	return out
}

// Cells returns the living cells sorted by row, then column.
func (gen Generation) Cells() []grid.Cell {
	cells := make([]grid.Cell, 0, len(gen))
	for c := range gen {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// Fingerprint hashes the set into a value that two generations share
// exactly when they hold the same cells. Useful for cycle detection.
func (gen Generation) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [16]byte
	for _, c := range gen.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(int64(c.Col)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Row)))
		h.Write(buf[:])
	}
	return h.Sum64()
}
