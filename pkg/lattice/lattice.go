// Package lattice provides the N×N grid of rotor orientation angles shared
// between the Monte Carlo kernel and its drivers. The grid is owned by the
// driver; kernel calls only borrow it for the duration of one call.
package lattice

import (
	"math"

	"nematic-mc/pkg/core"
)

// Lattice stores an N×N grid of orientation angles (radians) in row-major
// order with periodic boundaries. (x, y) addresses column x of row y.
type Lattice struct {
	N    int
	data []float64
}

// New allocates a lattice with the given side length.
func New(n int) *Lattice {
	if n <= 0 {
		n = 1
	}
	return &Lattice{N: n, data: make([]float64, n*n)}
}

// Angles exposes the backing slice so callers can read/write angles directly.
func (l *Lattice) Angles() []float64 { return l.data }

// Index returns the linear slice index for coordinates (x, y).
func (l *Lattice) Index(x, y int) int { return y*l.N + x }

// At returns the angle stored at (x, y).
func (l *Lattice) At(x, y int) float64 { return l.data[l.Index(x, y)] }

// Set stores an angle at (x, y).
func (l *Lattice) Set(x, y int, theta float64) { l.data[l.Index(x, y)] = theta }

// Wrap applies toroidal wrapping to the provided coordinates. The result is
// always in [0, N), even for negative inputs.
func (l *Lattice) Wrap(x, y int) (int, int) {
	x = (x%l.N + l.N) % l.N
	y = (y%l.N + l.N) % l.N
	return x, y
}

// Fill sets every site to the same angle.
func (l *Lattice) Fill(theta float64) {
	for i := range l.data {
		l.data[i] = theta
	}
}

// Randomize assigns every site an independent angle drawn uniformly from
// [0, 2π).
func (l *Lattice) Randomize(rng *core.RNG) {
	for i := range l.data {
		l.data[i] = rng.Float64() * 2 * math.Pi
	}
}

// Clone returns an independent copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	out := &Lattice{N: l.N, data: make([]float64, len(l.data))}
	copy(out.data, l.data)
	return out
}
