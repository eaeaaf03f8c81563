// Package config loads viewer and engine settings from a YAML document
// and derives the typed values the rest of the program consumes.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"sparse-life/internal/grid"
	"sparse-life/internal/life"
)

// Config carries every tunable of the simulation and its viewer. The
// yaml keys match config.yml at the repository root; values missing from
// the file keep their defaults.
type Config struct {
	// Window size in pixels. The board dimensions are derived from
	// these: width/cell_size columns by height/cell_size rows.
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`

	// Edge policy: "bounded" or "toroidal".
	Edge string `yaml:"edge"`

	// Rule thresholds. A living cell survives on a living-neighbor
	// count in [survive_min, survive_max]; a dead one is born on
	// exactly birth.
	SurviveMin int `yaml:"survive_min"`
	SurviveMax int `yaml:"survive_max"`
	Birth      int `yaml:"birth"`

	// Random seeding draws a fill percentage from [min_fill_pct,
	// max_fill_pct).
	MinFillPct int `yaml:"min_fill_pct"`
	MaxFillPct int `yaml:"max_fill_pct"`

	// Seed for random fills; zero seeds from the wall clock.
	Seed int64 `yaml:"seed"`

	// Generations per second while running.
	TPS int `yaml:"tps"`

	// Window caption template. {pat} expands to the active pattern
	// name, {paused} to the run state.
	Caption string `yaml:"caption"`

	AliveColor string `yaml:"alive_color"`
	DeadColor  string `yaml:"dead_color"`
	GridColor  string `yaml:"grid_color"`

	// Optional path to a pattern library that replaces the built-in
	// shapes.
	PatternsFile string `yaml:"patterns_file"`

	// Perlin seeding: feature size in cells and the cutoff above which
	// a cell starts alive.
	NoiseScale     float64 `yaml:"noise_scale"`
	NoiseThreshold float64 `yaml:"noise_threshold"`
}

// Default returns the configuration used when no file overrides it: an
// 80x60 toroidal board of 10-pixel cells under Conway's rules.
func Default() Config {
	return Config{
		Width:          800,
		Height:         600,
		CellSize:       10,
		Edge:           "toroidal",
		SurviveMin:     2,
		SurviveMax:     3,
		Birth:          3,
		MinFillPct:     20,
		MaxFillPct:     60,
		Seed:           0,
		TPS:            10,
		Caption:        "Game of Life | pattern: {pat} | {paused}",
		AliveColor:     "#00ff7f",
		DeadColor:      "#101018",
		GridColor:      "#202830",
		NoiseScale:     8,
		NoiseThreshold: 0.1,
	}
}

// LoadFile reads a YAML document at path and overlays it on the
// defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a usable board,
// rule set, and palette.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if c.CellSize > c.Width || c.CellSize > c.Height {
		return fmt.Errorf("cell_size %d does not fit the %dx%d window",
			c.CellSize, c.Width, c.Height)
	}
	if _, err := grid.ParseEdge(c.Edge); err != nil {
		return err
	}
	if c.SurviveMin < 0 || c.Birth < 0 {
		return fmt.Errorf("rule thresholds must be non-negative")
	}
	if c.SurviveMin > c.SurviveMax {
		return fmt.Errorf("survive_min %d exceeds survive_max %d", c.SurviveMin, c.SurviveMax)
	}
	if c.MinFillPct < 0 || c.MaxFillPct > 100 || c.MinFillPct > c.MaxFillPct {
		return fmt.Errorf("fill percentage range %d..%d must lie inside 0..100",
			c.MinFillPct, c.MaxFillPct)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.NoiseScale <= 0 {
		return fmt.Errorf("noise_scale must be positive, got %v", c.NoiseScale)
	}
	for _, f := range []struct{ key, value string }{
		{"alive_color", c.AliveColor},
		{"dead_color", c.DeadColor},
		{"grid_color", c.GridColor},
	} {
		if _, err := ParseHexColor(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}
	return nil
}

// Grid derives the board from the window geometry and edge policy.
func (c Config) Grid() (grid.Grid, error) {
	edge, err := grid.ParseEdge(c.Edge)
	if err != nil {
		return grid.Grid{}, err
	}
	return grid.New(c.Width/c.CellSize, c.Height/c.CellSize, edge), nil
}

// Rules returns the engine thresholds.
func (c Config) Rules() life.Rules {
	return life.Rules{SurviveMin: c.SurviveMin, SurviveMax: c.SurviveMax, Birth: c.Birth}
}

// Palette groups the renderer colors.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
}

// Colors parses the configured hex colors into a palette.
func (c Config) Colors() (Palette, error) {
	var p Palette
	var err error
	if p.Alive, err = ParseHexColor(c.AliveColor); err != nil {
		return Palette{}, fmt.Errorf("alive_color: %w", err)
	}
	if p.Dead, err = ParseHexColor(c.DeadColor); err != nil {
		return Palette{}, fmt.Errorf("dead_color: %w", err)
	}
	if p.Grid, err = ParseHexColor(c.GridColor); err != nil {
		return Palette{}, fmt.Errorf("grid_color: %w", err)
	}
	return p, nil
}

// ParseHexColor parses a #RRGGBB string into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q must look like #RRGGBB", s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q must look like #RRGGBB", s)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, nil
}
