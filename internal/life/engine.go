package life

import "sparse-life/internal/grid"

// Engine owns the current generation and advances it on a fixed board
// under a fixed rule set. It is single-threaded: callers replace or edit
// the generation only between Step calls.
type Engine struct {
	board grid.Grid
	rules Rules
	cur   Generation
	steps uint64
}

// NewEngine returns an engine with an empty generation.
func NewEngine(board grid.Grid, rules Rules) *Engine {
	return &Engine{
		board: board,
		rules: rules,
		cur:   make(Generation),
	}
}

// Board returns the engine's grid.
func (e *Engine) Board() grid.Grid { return e.board }

// Rules returns the engine's thresholds.
func (e *Engine) Rules() Rules { return e.rules }

// Step advances the simulation by one generation.
func (e *Engine) Step() {
	e.cur = Advance(e.board, e.rules, e.cur)
	e.steps++
}

// Steps returns how many generations have been advanced since the last
// SetGeneration or Clear.
func (e *Engine) Steps() uint64 { return e.steps }

// Population returns the number of living cells.
func (e *Engine) Population() int { return len(e.cur) }

// Has reports whether c is currently living.
func (e *Engine) Has(c grid.Cell) bool { return e.cur.Has(c) }

// Toggle flips the state of c and reports whether it is living
// afterwards. Cells outside the board are ignored.
func (e *Engine) Toggle(c grid.Cell) bool {
	if !e.board.Contains(c) {
		return false
	}
	if e.cur.Has(c) {
		e.cur.Remove(c)
		return false
	}
	e.cur.Add(c)
	return true
}

// Clear kills every cell and resets the step counter.
func (e *Engine) Clear() {
	e.cur = make(Generation)
	e.steps = 0
}

// SetGeneration replaces the current generation and resets the step
// counter. The engine keeps its own copy; cells outside the board are
// dropped so the stored set stays in range.
func (e *Engine) SetGeneration(gen Generation) {
	cur := make(Generation, len(gen))
	for c := range gen {
		if e.board.Contains(c) {
			cur.Add(c)
		}
	}
	e.cur = cur
	e.steps = 0
}

// Each calls fn for every living cell, in map order.
func (e *Engine) Each(fn func(grid.Cell)) {
	for c := range e.cur {
		fn(c)
	}
}

// Snapshot returns an independent copy of the current generation.
func (e *Engine) Snapshot() Generation { return e.cur.Clone() }

// Fingerprint hashes the current generation for cycle detection.
func (e *Engine) Fingerprint() uint64 { return e.cur.Fingerprint() }
