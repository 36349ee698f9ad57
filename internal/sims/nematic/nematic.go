package nematic

import (
	"nematic-mc/pkg/core"
	"nematic-mc/pkg/lattice"
	mc "nematic-mc/pkg/nematic"
)

// World wraps the Metropolis kernel as a workbench simulation. The lattice
// and the generator live here; each Step runs one full Monte Carlo sweep at
// the configured reduced temperature and refreshes the derived statistics.
type World struct {
	cfg Config

	n   int
	lat *lattice.Lattice
	rng *core.RNG

	display []uint8

	energy     float64
	acceptance float64
	sweeps     int
}

// New returns a nematic simulation with the provided side length using
// defaults.
func New(n int) *World {
	cfg := DefaultConfig()
	cfg.Size = n
	return NewWithConfig(cfg)
}

// NewWithConfig returns a nematic World configured from the provided
// options.
func NewWithConfig(cfg Config) *World {
	n := cfg.Size
	if n <= 0 {
		n = 1
	}
	return &World{
		cfg:     cfg,
		n:       n,
		lat:     lattice.New(n),
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, n*n),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "nematic" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.n, H: w.n} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Lattice exposes the underlying angle grid.
func (w *World) Lattice() *lattice.Lattice { return w.lat }

// Energy returns the total reduced energy recorded after the last Reset or
// Step.
func (w *World) Energy() float64 { return w.energy }

// Acceptance returns the acceptance ratio of the last sweep.
func (w *World) Acceptance() float64 { return w.acceptance }

// Sweeps returns the number of sweeps run since the last Reset.
func (w *World) Sweeps() int { return w.sweeps }

// Temperature returns the current reduced temperature.
func (w *World) Temperature() float64 { return w.cfg.Params.Temperature }

// Reset reinitializes every site with a uniformly random orientation using
// deterministic randomness. A zero seed falls back to the config seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	// rand/v2 generators are not reseedable in place, so recreate.
	w.rng = core.NewRNG(effective)
	w.lat.Randomize(w.rng)
	w.energy = mc.LatticeEnergy(w.lat)
	w.acceptance = 0
	w.sweeps = 0
	w.rebuildDisplay()
}

// Step runs one Monte Carlo sweep at the configured temperature.
func (w *World) Step() {
	w.acceptance = mc.MCStep(w.lat, w.cfg.Params.Temperature, w.rng)
	w.energy = mc.LatticeEnergy(w.lat)
	w.sweeps++
	w.rebuildDisplay()
}

func init() {
	core.Register("nematic", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
