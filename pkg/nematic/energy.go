// Package nematic implements the Metropolis Monte Carlo kernel for a
// two-dimensional Lebwohl–Lasher-type model: planar rotors on a periodic
// square lattice coupled through the anisotropic pair potential
// 0.5*(1 - 3cos²θ), with θ the angle difference between neighbors.
//
// Energies and temperatures are reduced quantities (the coupling ε is 1).
// The kernel operates on trusted inputs: callers are responsible for
// supplying in-range coordinates and a positive temperature.
package nematic

import (
	"math"

	"nematic-mc/pkg/lattice"
)

// bond returns the reduced pair energy for two orientations. Each term lies
// in [-1.0, 0.5] and depends only on the angle difference, so it is even in
// a-b and invariant under a global rotation.
func bond(a, b float64) float64 {
	c := math.Cos(a - b)
	return 0.5 * (1.0 - 3.0*c*c)
}

// SiteEnergy returns the reduced interaction energy of the site at (x, y)
// against its four periodic neighbors. Neighbor indices wrap toroidally
// through lattice.Wrap, whose floored modulo keeps the decremented index
// in [0, N) even at the boundary rows and columns. The sum lies in
// [-4.0, 2.0]. The lattice is not mutated.
func SiteEnergy(lat *lattice.Lattice, x, y int) float64 {
	angles := lat.Angles()
	theta := angles[lat.Index(x, y)]

	// Wrap acts per coordinate, so one call covers both decremented
	// indices and a second both incremented ones.
	xl, yd := lat.Wrap(x-1, y-1)
	xr, yu := lat.Wrap(x+1, y+1)

	en := bond(theta, angles[lat.Index(xl, y)])
	en += bond(theta, angles[lat.Index(xr, y)])
	en += bond(theta, angles[lat.Index(x, yd)])
	en += bond(theta, angles[lat.Index(x, yu)])
	return en
}

// LatticeEnergy returns the total reduced energy: the sum of SiteEnergy
// over every site, accumulated in row-major order for reproducible
// rounding. Every undirected bond contributes twice, once from each
// endpoint, and each contribution carries the 0.5 prefactor; the
// double-counting convention is part of the contract and must not be
// collapsed to a single count per bond.
func LatticeEnergy(lat *lattice.Lattice) float64 {
	en := 0.0
	for y := 0; y < lat.N; y++ {
		for x := 0; x < lat.N; x++ {
			en += SiteEnergy(lat, x, y)
		}
	}
	return en
}
