package pattern

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"sparse-life/internal/grid"
)

func TestCenteredSquareOnEvenBoard(t *testing.T) {
	board := grid.New(10, 10, grid.Bounded)
	m := Matrix{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}

	gen, err := Centered(board, m)
	if err != nil {
		t.Fatalf("Centered failed: %v", err)
	}
	if gen.Len() != 9 {
		t.Fatalf("population = %d, expected 9", gen.Len())
	}
	for row := 3; row <= 5; row++ {
		for col := 3; col <= 5; col++ {
			if !gen.Has(grid.Cell{Col: col, Row: row}) {
				t.Fatalf("expected living cell at (%d,%d)", col, row)
			}
		}
	}
}

func TestCenteredNonSquareShape(t *testing.T) {
	board := grid.New(10, 10, grid.Bounded)
	toad := Matrix{
		{0, 1, 1, 1},
		{1, 1, 1, 0},
	}

	gen, err := Centered(board, toad)
	if err != nil {
		t.Fatalf("Centered failed: %v", err)
	}
	want := map[grid.Cell]bool{
		{Col: 4, Row: 4}: true,
		{Col: 5, Row: 4}: true,
		{Col: 6, Row: 4}: true,
		{Col: 3, Row: 5}: true,
		{Col: 4, Row: 5}: true,
		{Col: 5, Row: 5}: true,
	}
	if gen.Len() != len(want) {
		t.Fatalf("population = %d, expected %d", gen.Len(), len(want))
	}
	for c := range want {
		if !gen.Has(c) {
			t.Fatalf("expected living cell at %v", c)
		}
	}
}

func TestCenteredRaggedRowsUseWidestRow(t *testing.T) {
	board := grid.New(9, 9, grid.Bounded)
	m := Matrix{
		{1},
		{1, 1, 1},
	}

	gen, err := Centered(board, m)
	if err != nil {
		t.Fatalf("Centered failed: %v", err)
	}
	want := map[grid.Cell]bool{
		{Col: 3, Row: 3}: true,
		{Col: 3, Row: 4}: true,
		{Col: 4, Row: 4}: true,
		{Col: 5, Row: 4}: true,
	}
	if gen.Len() != len(want) {
		t.Fatalf("population = %d, expected %d", gen.Len(), len(want))
	}
	for c := range want {
		if !gen.Has(c) {
			t.Fatalf("expected living cell at %v", c)
		}
	}
}

func TestCenteredExactFit(t *testing.T) {
	board := grid.New(2, 2, grid.Bounded)
	gen, err := Centered(board, Matrix{{1, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("Centered failed on an exact fit: %v", err)
	}
	if gen.Len() != 4 {
		t.Fatalf("population = %d, expected 4", gen.Len())
	}
}

func TestCenteredRejectsOversizeShape(t *testing.T) {
	board := grid.New(10, 10, grid.Bounded)

	wide := make(Matrix, 1)
	wide[0] = make([]int, 11)
	if _, err := Centered(board, wide); !errors.Is(err, ErrPatternTooLarge) {
		t.Fatalf("expected ErrPatternTooLarge for a wide shape, got %v", err)
	}

	tall := make(Matrix, 11)
	for i := range tall {
		tall[i] = []int{1}
	}
	if _, err := Centered(board, tall); !errors.Is(err, ErrPatternTooLarge) {
		t.Fatalf("expected ErrPatternTooLarge for a tall shape, got %v", err)
	}
}

func TestRandomZeroPercentIsEmpty(t *testing.T) {
	board := grid.New(20, 20, grid.Bounded)
	rng := rand.New(rand.NewPCG(1, 0))

	gen := Random(board, 0, 0, rng)
	if gen.Len() != 0 {
		t.Fatalf("population = %d, expected 0", gen.Len())
	}
}

func TestRandomFullPercentStaysInBounds(t *testing.T) {
	board := grid.New(6, 6, grid.Bounded)
	rng := rand.New(rand.NewPCG(7, 0))

	gen := Random(board, 100, 100, rng)
	if gen.Len() == 0 {
		t.Fatal("full fill produced no cells")
	}
	if gen.Len() > board.CellCount() {
		t.Fatalf("population = %d exceeds the board", gen.Len())
	}
	for c := range gen {
		if !board.Contains(c) {
			t.Fatalf("random cell %v out of range", c)
		}
	}
}

func TestRandomDeterministicPerSeed(t *testing.T) {
	board := grid.New(30, 20, grid.Bounded)

	a := Random(board, 20, 60, rand.New(rand.NewPCG(99, 0)))
	b := Random(board, 20, 60, rand.New(rand.NewPCG(99, 0)))
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("same seed must reproduce the same population")
	}
}

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()

	ids := lib.IDs()
	if len(ids) != 9 {
		t.Fatalf("builtin library has %d shapes, expected 9", len(ids))
	}
	for i, id := range ids {
		if id != i+1 {
			t.Fatalf("ids = %v, expected 1 through 9", ids)
		}
	}

	block, err := lib.Shape(1)
	if err != nil {
		t.Fatalf("Shape(1) failed: %v", err)
	}
	if block.Rows() != 2 || block.Cols() != 2 {
		t.Fatalf("shape 1 is %dx%d, expected a 2x2 block", block.Cols(), block.Rows())
	}

	for _, id := range []int{0, 10, -1} {
		if _, err := lib.Shape(id); !errors.Is(err, ErrUnknownPattern) {
			t.Fatalf("Shape(%d) = %v, expected ErrUnknownPattern", id, err)
		}
	}
}

func TestLibraryCentered(t *testing.T) {
	lib := DefaultLibrary()
	board := grid.New(40, 30, grid.Bounded)

	for _, id := range lib.IDs() {
		gen, err := lib.Centered(board, id)
		if err != nil {
			t.Fatalf("Centered(%d) failed: %v", id, err)
		}
		if gen.Len() == 0 {
			t.Fatalf("shape %d placed no cells", id)
		}
		for c := range gen {
			if !board.Contains(c) {
				t.Fatalf("shape %d placed %v out of range", id, c)
			}
		}
	}

	if _, err := lib.Centered(board, 42); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestLoadLibraryFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.yml")
	doc := `- patterns:
    1:
      - [1, 0]
      - [0, 1]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	m, err := lib.Shape(1)
	if err != nil {
		t.Fatalf("Shape(1) failed: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 2 || m[0][0] != 1 || m[1][1] != 1 {
		t.Fatalf("loaded shape = %v, expected a 2x2 diagonal", m)
	}

	if _, err := LoadLibrary(filepath.Join(dir, "missing.yml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	broken := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(broken, []byte("patterns: ["), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := LoadLibrary(broken); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestNoiseDeterministicPerSeed(t *testing.T) {
	board := grid.New(16, 12, grid.Bounded)

	a := Noise(board, 4, 0.1, 1234)
	b := Noise(board, 4, 0.1, 1234)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("same seed must reproduce the same field")
	}
}

func TestNoiseThresholdExtremes(t *testing.T) {
	board := grid.New(16, 12, grid.Bounded)

	if gen := Noise(board, 4, 2.0, 5); gen.Len() != 0 {
		t.Fatalf("threshold above the field amplitude left %d cells", gen.Len())
	}
	if gen := Noise(board, 4, -2.0, 5); gen.Len() != board.CellCount() {
		t.Fatalf("threshold below the field amplitude kept %d of %d cells",
			gen.Len(), board.CellCount())
	}
}
