package grid

import "fmt"

// Cell identifies one board position as a (column, row) pair. It is a
// plain value type, so it compares by value and can key a map.
type Cell struct {
	Col int
	Row int
}

// Edge selects how neighbor lookup treats the board boundary.
type Edge uint8

const (
	// Bounded boards stop at their edges; boundary cells have a reduced
	// neighborhood.
	Bounded Edge = iota
	// Toroidal boards wrap around, so every cell keeps a full
	// neighborhood.
	Toroidal
)

// String returns the configuration spelling of the edge policy.
func (e Edge) String() string {
	if e == Toroidal {
		return "toroidal"
	}
	return "bounded"
}

// ParseEdge maps a configuration value onto an edge policy.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "bounded":
		return Bounded, nil
	case "toroidal":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown edge policy %q", s)
}

// Grid describes a fixed board: its dimensions and edge policy. It holds
// no cell state and all of its methods are pure.
type Grid struct {
	Cols int
	Rows int
	Edge Edge
}

// New returns a grid with the given dimensions and edge policy.
func New(cols, rows int, edge Edge) Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return Grid{Cols: cols, Rows: rows, Edge: edge}
}

// Contains reports whether the cell lies inside the declared bounds.
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// CellCount returns the total number of cells on the board.
func (g Grid) CellCount() int { return g.Cols * g.Rows }

// Neighbors returns the Moore neighborhood of c in a deterministic order.
// Bounded boards drop offsets that would leave the grid, so boundary cells
// yield fewer than eight neighbors; toroidal boards rewrite those offsets
// to wrap, yielding all eight. Boards with a one- or two-wide axis can
// repeat coordinates under wrapping; the sequence reports them as-is.
func (g Grid) Neighbors(c Cell) []Cell {
	return g.AppendNeighbors(make([]Cell, 0, 8), c)
}

// AppendNeighbors appends the neighbors of c to dst and returns the
// extended slice. It is the allocation-free form of Neighbors.
func (g Grid) AppendNeighbors(dst []Cell, c Cell) []Cell {
	var colBuf, rowBuf [3]int
	dcols := axisOffsets(&colBuf, c.Col, g.Cols, g.Edge)
	drows := axisOffsets(&rowBuf, c.Row, g.Rows, g.Edge)
	for _, dc := range dcols {
		for _, dr := range drows {
			if dc == 0 && dr == 0 {
				continue
			}
			dst = append(dst, Cell{Col: c.Col + dc, Row: c.Row + dr})
		}
	}
	return dst
}

// axisOffsets adapts the candidate offsets {-1, 0, +1} for one axis. On
// the last index the +1 offset wraps to the opposite edge (toroidal) or is
// dropped (bounded); on index 0 the -1 offset is adjusted the same way.
// The last-index branch wins when both apply (one-wide axis).
func axisOffsets(buf *[3]int, idx, size int, edge Edge) []int {
	buf[0], buf[1], buf[2] = -1, 0, 1
	offs := buf[:]
	switch {
	case idx == size-1:
		if edge == Toroidal {
			offs[2] = -(size - 1)
		} else {
			offs = offs[:2]
		}
	case idx == 0:
		if edge == Toroidal {
			offs[0] = size - 1
		} else {
			offs = offs[1:]
		}
	}
	return offs
}
