//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"sparse-life/internal/app"
	"sparse-life/internal/config"
	"sparse-life/internal/life"
	"sparse-life/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "RNG seed; 0 derives one from the clock")
	tps := flag.Int("tps", 0, "generations per second; overrides the config")
	edge := flag.String("edge", "", "edge policy: bounded or toroidal; overrides the config")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := config.Default()
	if _, err := os.Stat(*configPath); err == nil || explicit["config"] {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if explicit["seed"] {
		cfg.Seed = *seed
	}
	if explicit["tps"] {
		cfg.TPS = *tps
	}
	if explicit["edge"] {
		cfg.Edge = *edge
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	library := pattern.DefaultLibrary()
	if cfg.PatternsFile != "" {
		loaded, err := pattern.LoadLibrary(cfg.PatternsFile)
		if err != nil {
			log.Fatalf("load patterns: %v", err)
		}
		library = loaded
	}

	board, err := cfg.Grid()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	engine := life.NewEngine(board, cfg.Rules())

	game, err := app.New(engine, library, cfg)
	if err != nil {
		log.Fatalf("app: %v", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
