//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"nematic-mc/internal/app"
	_ "nematic-mc/internal/sims/nematic"
	"nematic-mc/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Ts <= 0 {
		log.Fatalf("reduced temperature must be positive, got %v", cfg.Ts)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(map[string]string{
		"n":    strconv.Itoa(cfg.N),
		"ts":   strconv.FormatFloat(cfg.Ts, 'f', -1, 64),
		"seed": strconv.FormatInt(cfg.Seed, 10),
	})
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.TPS)
	size := sim.Size()

	ebiten.SetWindowTitle("nematic-mc — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
