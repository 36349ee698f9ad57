package nematic

import "strconv"

// Params holds the tunable model parameters for the nematic sim.
type Params struct {
	// Temperature is the reduced temperature Ts. It scales the proposal
	// width and enters the Boltzmann factor; it must stay positive.
	Temperature float64
}

// Config controls the nematic simulation dimensions and seeding.
type Config struct {
	// Size is the lattice side length N; the grid holds N×N rotors.
	Size int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 64,
		Seed: 1337,
		Params: Params{
			Temperature: 0.5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-domain values keep the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["ts"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Temperature = parsed
		}
	}
	return c
}
