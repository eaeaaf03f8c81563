//go:build ebiten

package app

import (
	"strconv"

	"sparse-life/internal/config"
	"sparse-life/internal/grid"
	"sparse-life/internal/life"
	"sparse-life/internal/pattern"
	"sparse-life/internal/render"
	"sparse-life/internal/ui"
	"sparse-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var patternKeys = [9]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts the life engine to the ebiten.Game interface. It owns the
// pacing, input handling, and caption of the viewer; the engine owns the
// cell state.
type Game struct {
	engine  *life.Engine
	library *pattern.Library
	painter *render.Painter
	overlay *ui.Overlay
	clock   *FixedStep
	rng     *core.RNG

	cfg     config.Config
	palette config.Palette

	paused   bool
	stepOnce bool
	seedName string
	caption  string
}

// New builds the viewer around an engine, a pattern library, and a
// validated configuration.
func New(engine *life.Engine, library *pattern.Library, cfg config.Config) (*Game, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	board := engine.Board()
	g := &Game{
		engine:   engine,
		library:  library,
		painter:  render.NewPainter(board.Cols, board.Rows, cfg.CellSize),
		overlay:  ui.NewOverlay(),
		clock:    NewFixedStep(cfg.TPS),
		rng:      core.NewRNG(cfg.Seed),
		cfg:      cfg,
		palette:  palette,
		paused:   true,
		seedName: "None",
	}
	g.refreshCaption()
	return g, nil
}

// Update processes input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && g.paused {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Clear()
		g.paused = true
		g.seedName = "None"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.reseed(pattern.Random(g.engine.Board(), g.cfg.MinFillPct, g.cfg.MaxFillPct, g.rng.Source()), "Rand")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		field := pattern.Noise(g.engine.Board(), g.cfg.NoiseScale, g.cfg.NoiseThreshold, g.rng.Source().Int64())
		g.reseed(field, "Noise")
	}
	for i, key := range patternKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		id := i + 1
		gen, err := g.library.Centered(g.engine.Board(), id)
		if err != nil {
			// Unknown id or a shape too large for the board: leave
			// the current state alone.
			break
		}
		g.reseed(gen, strconv.Itoa(id))
		break
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.engine.Toggle(grid.Cell{Col: x / g.cfg.CellSize, Row: y / g.cfg.CellSize})
	}

	g.overlay.Update()

	if g.stepOnce {
		g.engine.Step()
		g.stepOnce = false
	} else if !g.paused && g.clock.ShouldStep() {
		g.engine.Step()
	}

	g.refreshCaption()
	return nil
}

// reseed replaces the board state and freezes the simulation so the new
// pattern can be inspected before running.
func (g *Game) reseed(gen life.Generation, name string) {
	g.engine.SetGeneration(gen)
	g.paused = true
	g.seedName = name
}

// Draw renders the board and, when toggled, the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Each, g.palette.Alive, g.palette.Dead, g.palette.Grid)
	g.overlay.Draw(screen, g.status())
}

// Layout reports the fixed window size from the configuration.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) status() ui.Status {
	return ui.Status{
		Pattern:    g.seedName,
		Paused:     g.paused,
		Generation: g.engine.Steps(),
		Population: g.engine.Population(),
		TPS:        g.cfg.TPS,
	}
}

// refreshCaption pushes the caption to the window title when it changed.
func (g *Game) refreshCaption() {
	caption := ui.Caption(g.cfg.Caption, g.status())
	if caption != g.caption {
		g.caption = caption
		ebiten.SetWindowTitle(caption)
	}
}
