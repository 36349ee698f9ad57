package nematic

import (
	"math"

	"nematic-mc/pkg/core"
	"nematic-mc/pkg/lattice"
)

// MCStep performs one Metropolis Monte Carlo sweep: N² attempted
// single-site perturbations applied strictly in sequence, mutating the
// lattice in place. It returns the fraction of accepted proposals in
// [0, 1].
//
// Target sites are drawn uniformly with replacement, so a site may be
// visited zero or several times in one sweep. The perturbation width is
// 0.1 + ts, wider at higher temperature. An energy-non-increasing move is
// always kept; an uphill move is kept when exp(-ΔE/ts) is at least a fresh
// uniform draw, otherwise the site is restored by subtracting the same
// delta.
//
// Preconditions: ts > 0 and lat non-empty. ts <= 0 makes the Boltzmann
// factor meaningless; validation belongs to the driver.
func MCStep(lat *lattice.Lattice, ts float64, rng *core.RNG) float64 {
	n := lat.N
	total := n * n
	scale := 0.1 + ts

	// The whole batch of proposals is drawn before any mutation, in a
	// fixed order: all target columns, then all target rows, then all
	// angle perturbations. Accept draws are taken lazily, one per uphill
	// move, in proposal order. Reordering any of this changes the
	// trajectory for a given seed.
	xs := make([]int, total)
	for i := range xs {
		xs[i] = rng.IntN(n)
	}
	ys := make([]int, total)
	for i := range ys {
		ys[i] = rng.IntN(n)
	}
	deltas := make([]float64, total)
	for i := range deltas {
		deltas[i] = rng.NormFloat64() * scale
	}

	angles := lat.Angles()
	accepted := 0
	for i := 0; i < total; i++ {
		ix, iy := xs[i], ys[i]
		idx := lat.Index(ix, iy)

		en0 := SiteEnergy(lat, ix, iy)
		angles[idx] += deltas[i]
		en1 := SiteEnergy(lat, ix, iy)

		if en1 <= en0 {
			accepted++
			continue
		}
		boltz := math.Exp(-(en1 - en0) / ts)
		if boltz >= rng.Float64() {
			accepted++
			continue
		}
		angles[idx] -= deltas[i]
	}
	return float64(accepted) / float64(total)
}
