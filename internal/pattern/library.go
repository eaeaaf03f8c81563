package pattern

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"sparse-life/internal/grid"
	"sparse-life/internal/life"
)

//go:embed seed_patterns.yml
var builtinLibrary []byte

// Library maps small integer identifiers to seed shapes.
type Library struct {
	shapes map[int]Matrix
}

// libraryDoc mirrors the file layout: a document list whose first entry
// carries the patterns table.
type libraryDoc struct {
	Patterns map[int]Matrix `yaml:"patterns"`
}

// DefaultLibrary returns the built-in shape set, identifiers 1 through 9.
func DefaultLibrary() *Library {
	lib, err := parseLibrary(builtinLibrary)
	if err != nil {
		panic(fmt.Sprintf("pattern: built-in library is broken: %v", err))
	}
	return lib
}

// LoadLibrary reads a shape library from a YAML file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern library: %w", err)
	}
	lib, err := parseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("parsing pattern library %s: %w", path, err)
	}
	return lib, nil
}

func parseLibrary(data []byte) (*Library, error) {
	var docs []libraryDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 || len(docs[0].Patterns) == 0 {
		return nil, errors.New("no patterns table found")
	}
	return &Library{shapes: docs[0].Patterns}, nil
}

// IDs returns the registered identifiers in ascending order.
func (l *Library) IDs() []int {
	ids := make([]int, 0, len(l.shapes))
	for id := range l.shapes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Shape returns the matrix registered under id.
func (l *Library) Shape(id int) (Matrix, error) {
	m, ok := l.shapes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPattern, id)
	}
	return m, nil
}

// Centered looks up id and centers its shape on the board.
func (l *Library) Centered(board grid.Grid, id int) (life.Generation, error) {
	m, err := l.Shape(id)
	if err != nil {
		return nil, err
	}
	return Centered(board, m)
}
