package app

import "flag"

// HUDWidth is the pixel width of the statistics panel beside the lattice
// view.
const HUDWidth = 200

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	N  int
	Ts float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "nematic", Scale: 6, TPS: 30, Seed: 42, N: 64, Ts: 0.5}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Monte Carlo sweeps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.N, "n", c.N, "lattice side length")
	fs.Float64Var(&c.Ts, "ts", c.Ts, "reduced temperature (must be > 0)")
}
