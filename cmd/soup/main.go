package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"sparse-life/internal/grid"
	"sparse-life/internal/life"
	"sparse-life/internal/pattern"
	"sparse-life/pkg/core"
)

type census struct {
	board  grid.Grid
	rules  life.Rules
	minPct int
	maxPct int
	steps  int
	window int
}

type soupResult struct {
	soup     int
	lifespan int
	period   int
	peakPop  int
	peakStep int
	finalPop int
	settled  bool
	died     bool
}

func main() {
	w := flag.Int("w", 80, "board width in cells")
	h := flag.Int("h", 60, "board height in cells")
	edge := flag.String("edge", "toroidal", "edge policy: bounded or toroidal")
	soups := flag.Int("soups", 256, "number of random soups to run")
	steps := flag.Int("steps", 2000, "generation cap per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 0, "base RNG seed; 0 derives one from the clock")
	minPct := flag.Int("min-pct", 20, "lower bound of the starting fill percentage")
	maxPct := flag.Int("max-pct", 60, "upper bound of the starting fill percentage")
	surviveMin := flag.Int("survive-min", 2, "minimum living neighbors for survival")
	surviveMax := flag.Int("survive-max", 3, "maximum living neighbors for survival")
	birth := flag.Int("birth", 3, "exact living neighbors for a birth")
	window := flag.Int("window", 32, "fingerprint history length for cycle detection")
	flag.Parse()

	edgePolicy, err := grid.ParseEdge(*edge)
	if err != nil {
		log.Fatalf("edge: %v", err)
	}

	c := census{
		board:  grid.New(*w, *h, edgePolicy),
		rules:  life.Rules{SurviveMin: *surviveMin, SurviveMax: *surviveMax, Birth: *birth},
		minPct: *minPct,
		maxPct: *maxPct,
		steps:  *steps,
		window: *window,
	}

	base := core.NewRNG(*seed)
	fmt.Printf("Running %d soups on a %dx%d %s board (%d workers, %d step cap, base seed %d)\n",
		*soups, c.board.Cols, c.board.Rows, c.board.Edge, *workers, c.steps, base.Seed())

	jobs := make(chan int)
	results := make(chan soupResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for soup := range jobs {
				results <- runSoup(c, base.Derive(int64(soup)), soup)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for soup := 0; soup < *soups; soup++ {
			jobs <- soup
		}
		close(jobs)
	}()

	start := time.Now()
	var all []soupResult
	longest := soupResult{lifespan: -1}
	for res := range results {
		all = append(all, res)
		if res.lifespan > longest.lifespan {
			longest = res
		}
		if !res.settled && !res.died {
			fmt.Printf("Candidate soup %d still unsettled after %d steps (pop %d, peak %d)\n",
				res.soup, c.steps, res.finalPop, res.peakPop)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].lifespan != all[j].lifespan {
			return all[i].lifespan > all[j].lifespan
		}
		return all[i].peakPop > all[j].peakPop
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 longest-lived soups (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) soup=%-4d lifespan=%-5d %-12s peak=%d@%d final=%d\n",
			i+1, res.soup, res.lifespan, describe(res), res.peakPop, res.peakStep, res.finalPop)
	}

	fmt.Printf("\nBest overall: soup=%d lifespan=%d %s peak=%d@%d final=%d\n",
		longest.soup, longest.lifespan, describe(longest), longest.peakPop, longest.peakStep, longest.finalPop)
}

// runSoup seeds one random soup and advances it until the population dies
// out, the state revisits a fingerprint from the recent history, or the
// step cap is hit.
func runSoup(c census, rng *core.RNG, soup int) soupResult {
	engine := life.NewEngine(c.board, c.rules)
	engine.SetGeneration(pattern.Random(c.board, c.minPct, c.maxPct, rng.Source()))

	res := soupResult{
		soup:     soup,
		lifespan: c.steps,
		peakPop:  engine.Population(),
	}

	history := make([]uint64, 0, c.window)
	history = append(history, engine.Fingerprint())

	for step := 1; step <= c.steps; step++ {
		engine.Step()

		pop := engine.Population()
		if pop > res.peakPop {
			res.peakPop = pop
			res.peakStep = step
		}
		if pop == 0 {
			res.died = true
			res.lifespan = step
			break
		}

		fp := engine.Fingerprint()
		cycle := false
		for i := len(history) - 1; i >= 0; i-- {
			if history[i] == fp {
				res.settled = true
				res.period = len(history) - i
				res.lifespan = step
				cycle = true
				break
			}
		}
		if cycle {
			break
		}
		history = append(history, fp)
		if len(history) > c.window {
			history = history[1:]
		}
	}

	res.finalPop = engine.Population()
	return res
}

func describe(res soupResult) string {
	switch {
	case res.died:
		return "died"
	case res.settled:
		return fmt.Sprintf("period=%d", res.period)
	default:
		return "unsettled"
	}
}
