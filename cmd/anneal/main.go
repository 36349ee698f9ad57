// Command anneal runs a headless Metropolis Monte Carlo simulation of the
// 2D nematic rotor lattice: randomize an N×N lattice, sweep it a fixed
// number of times at one reduced temperature, and report the energy and
// acceptance trajectory.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"nematic-mc/pkg/core"
	"nematic-mc/pkg/lattice"
	"nematic-mc/pkg/nematic"
)

func main() {
	steps := flag.Int("steps", 1000, "number of Monte Carlo sweeps")
	size := flag.Int("size", 50, "lattice side length N")
	temp := flag.Float64("temp", 0.5, "reduced temperature Ts (must be > 0)")
	seed := flag.Int64("seed", 42, "random seed")
	every := flag.Int("every", 100, "report interval in sweeps (0 disables)")
	flag.Parse()

	if *size <= 0 {
		log.Fatalf("lattice size must be positive, got %d", *size)
	}
	if *temp <= 0 {
		log.Fatalf("reduced temperature must be positive, got %v", *temp)
	}
	if *steps < 0 {
		log.Fatalf("sweep count must be non-negative, got %d", *steps)
	}

	rng := core.NewRNG(*seed)
	lat := lattice.New(*size)
	lat.Randomize(rng)

	sites := float64(*size) * float64(*size)
	initial := nematic.LatticeEnergy(lat)
	fmt.Printf("N=%d Ts=%.3f seed=%d sweeps=%d\n", *size, *temp, *seed, *steps)
	fmt.Printf("initial energy %.4f (%.4f per site)\n", initial, initial/sites)

	start := time.Now()
	var ratioSum float64
	for step := 1; step <= *steps; step++ {
		ratio := nematic.MCStep(lat, *temp, rng)
		ratioSum += ratio
		if *every > 0 && step%*every == 0 {
			energy := nematic.LatticeEnergy(lat)
			fmt.Printf("sweep %6d  energy %12.4f  accept %.4f\n", step, energy, ratio)
		}
	}
	elapsed := time.Since(start)

	final := nematic.LatticeEnergy(lat)
	fmt.Printf("final energy %.4f (%.4f per site)\n", final, final/sites)
	if *steps > 0 {
		fmt.Printf("mean acceptance %.4f over %d sweeps\n", ratioSum/float64(*steps), *steps)
	}
	fmt.Printf("elapsed %s (%.1f sweeps/s)\n", elapsed.Round(time.Millisecond),
		float64(*steps)/elapsed.Seconds())
}
