package nematic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"nematic-mc/pkg/core"
	"nematic-mc/pkg/lattice"
	"nematic-mc/pkg/nematic"
)

// pairEnergy mirrors the model potential for hand-computed expectations.
func pairEnergy(a, b float64) float64 {
	c := math.Cos(a - b)
	return 0.5 * (1.0 - 3.0*c*c)
}

func TestSiteEnergyAlignedLattice(t *testing.T) {
	const n = 8
	lat := lattice.New(n)
	lat.Fill(0.7)

	// Every neighbor difference is zero, so each of the four bond terms is
	// 0.5*(1-3) = -1.0 and every site sums to -4.0.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			require.InDelta(t, -4.0, nematic.SiteEnergy(lat, x, y), 1e-12)
		}
	}
	require.InDelta(t, -4.0*n*n, nematic.LatticeEnergy(lat), 1e-9)
}

func TestSiteEnergyTwoByTwoMixed(t *testing.T) {
	// One rotor perpendicular to the other three. At N=2 each neighbor pair
	// aliases onto the same site twice, so every site sees exactly two
	// distinct neighbors, each counted twice.
	lat := lattice.New(2)
	lat.Set(1, 1, math.Pi/2)

	// (1,0) has both x-neighbors aligned (θ=0, -1.0 each) and both
	// y-neighbors perpendicular (θ=π/2, +0.5 each).
	require.InDelta(t, -1.0, nematic.SiteEnergy(lat, 1, 0), 1e-12)
	require.InDelta(t, -1.0, nematic.SiteEnergy(lat, 0, 1), 1e-12)
	require.InDelta(t, -4.0, nematic.SiteEnergy(lat, 0, 0), 1e-12)
	require.InDelta(t, 2.0, nematic.SiteEnergy(lat, 1, 1), 1e-12)

	require.InDelta(t, -4.0, nematic.LatticeEnergy(lat), 1e-12)
}

func TestLatticeEnergyGlobalRotationInvariance(t *testing.T) {
	lat := lattice.New(10)
	lat.Randomize(core.NewRNG(7))

	base := nematic.LatticeEnergy(lat)
	rotated := lat.Clone()
	angles := rotated.Angles()
	for i := range angles {
		angles[i] += 1.2345
	}

	require.InDelta(t, base, nematic.LatticeEnergy(rotated), 1e-9)
}

func TestLatticeEnergySignFlipSymmetry(t *testing.T) {
	lat := lattice.New(9)
	lat.Randomize(core.NewRNG(11))

	base := nematic.LatticeEnergy(lat)
	flipped := lat.Clone()
	angles := flipped.Angles()
	for i := range angles {
		angles[i] = -angles[i]
	}

	require.InDelta(t, base, nematic.LatticeEnergy(flipped), 1e-9)

	for y := 0; y < lat.N; y++ {
		for x := 0; x < lat.N; x++ {
			require.InDelta(t, nematic.SiteEnergy(lat, x, y), nematic.SiteEnergy(flipped, x, y), 1e-12)
		}
	}
}

func TestSiteEnergyRange(t *testing.T) {
	lat := lattice.New(12)
	lat.Randomize(core.NewRNG(23))

	for y := 0; y < lat.N; y++ {
		for x := 0; x < lat.N; x++ {
			en := nematic.SiteEnergy(lat, x, y)
			require.GreaterOrEqual(t, en, -4.0-1e-12)
			require.LessOrEqual(t, en, 2.0+1e-12)
		}
	}
}

func TestSiteEnergyPeriodicWraparound(t *testing.T) {
	const n = 6
	lat := lattice.New(n)
	lat.Randomize(core.NewRNG(31))

	// The corner site must read the last row and column, not out-of-range
	// or truncated-modulo indices.
	theta := lat.At(0, 0)
	want := pairEnergy(theta, lat.At(n-1, 0)) +
		pairEnergy(theta, lat.At(1, 0)) +
		pairEnergy(theta, lat.At(0, n-1)) +
		pairEnergy(theta, lat.At(0, 1))

	require.InDelta(t, want, nematic.SiteEnergy(lat, 0, 0), 1e-12)
}

func TestSiteEnergyMatchesWrapNeighbors(t *testing.T) {
	// The kernel's neighbor lookup must agree with the lattice's own
	// toroidal Wrap at every site, boundaries included.
	lat := lattice.New(4)
	lat.Randomize(core.NewRNG(61))

	for y := 0; y < lat.N; y++ {
		for x := 0; x < lat.N; x++ {
			theta := lat.At(x, y)
			xl, _ := lat.Wrap(x-1, y)
			xr, _ := lat.Wrap(x+1, y)
			_, yd := lat.Wrap(x, y-1)
			_, yu := lat.Wrap(x, y+1)
			want := pairEnergy(theta, lat.At(xl, y)) +
				pairEnergy(theta, lat.At(xr, y)) +
				pairEnergy(theta, lat.At(x, yd)) +
				pairEnergy(theta, lat.At(x, yu))
			require.InDelta(t, want, nematic.SiteEnergy(lat, x, y), 1e-12, "site (%d,%d)", x, y)
		}
	}
}

func TestSiteEnergyDoesNotMutate(t *testing.T) {
	lat := lattice.New(5)
	lat.Randomize(core.NewRNG(43))
	before := lat.Clone()

	nematic.SiteEnergy(lat, 2, 3)
	nematic.LatticeEnergy(lat)

	require.Equal(t, before.Angles(), lat.Angles())
}
