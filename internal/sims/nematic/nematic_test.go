package nematic

import (
	"math"
	"slices"
	"testing"

	mc "nematic-mc/pkg/nematic"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 24
	cfg.Seed = 99

	world := NewWithConfig(cfg)
	world.Reset(0)

	initialAngles := append([]float64(nil), world.Lattice().Angles()...)
	initialCells := append([]uint8(nil), world.Cells()...)

	if len(initialAngles) != 24*24 {
		t.Fatalf("world must allocate a 24x24 lattice, got %d slots", len(initialAngles))
	}

	// Mutate state to ensure Reset rebuilds from scratch.
	world.Lattice().Angles()[0] = 42
	world.Cells()[1] = 42
	world.Step()

	world.Reset(0)

	if !slices.Equal(initialAngles, world.Lattice().Angles()) {
		t.Fatal("Reset with config seed not deterministic for lattice angles")
	}
	if !slices.Equal(initialCells, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic for display buffer")
	}
	if world.Sweeps() != 0 {
		t.Fatalf("Reset must clear the sweep counter, got %d", world.Sweeps())
	}

	world.Reset(777)
	seedAngles := append([]float64(nil), world.Lattice().Angles()...)
	world.Reset(777)
	if !slices.Equal(seedAngles, world.Lattice().Angles()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initialAngles, seedAngles) {
		t.Fatal("different seeds should produce different initial lattices")
	}
}

func TestStepUpdatesStatistics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 16
	cfg.Seed = 7

	world := NewWithConfig(cfg)
	world.Reset(0)

	initialEnergy := world.Energy()
	world.Step()

	if world.Sweeps() != 1 {
		t.Fatalf("expected 1 sweep, got %d", world.Sweeps())
	}
	if world.Acceptance() < 0 || world.Acceptance() > 1 {
		t.Fatalf("acceptance out of [0,1]: %v", world.Acceptance())
	}
	if got := mc.LatticeEnergy(world.Lattice()); got != world.Energy() {
		t.Fatalf("recorded energy %v does not match lattice energy %v", world.Energy(), got)
	}
	if world.Energy() == initialEnergy {
		t.Fatal("a sweep on a random lattice should move the energy")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"n": "32", "seed": "5", "ts": "1.25"})
	if c.Size != 32 || c.Seed != 5 || c.Params.Temperature != 1.25 {
		t.Fatalf("unexpected config: %+v", c)
	}

	// Invalid entries keep defaults; a non-positive temperature would make
	// the Boltzmann factor meaningless.
	d := DefaultConfig()
	c = FromMap(map[string]string{"n": "zero", "ts": "-1"})
	if c.Size != d.Size || c.Params.Temperature != d.Params.Temperature {
		t.Fatalf("invalid values must keep defaults, got %+v", c)
	}

	c = FromMap(nil)
	if c != d {
		t.Fatalf("nil map must return defaults, got %+v", c)
	}
}

func TestSetFloatParameterTemperature(t *testing.T) {
	world := New(8)

	if !world.SetFloatParameter("ts", 1.5) {
		t.Fatal("setting a positive temperature should succeed")
	}
	if world.Temperature() != 1.5 {
		t.Fatalf("temperature not applied, got %v", world.Temperature())
	}
	if world.SetFloatParameter("ts", 0) {
		t.Fatal("zero temperature must be refused")
	}
	if world.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must be refused")
	}
	if world.Temperature() != 1.5 {
		t.Fatalf("refused updates must not change the value, got %v", world.Temperature())
	}
}

func TestDisplayEncodesDirector(t *testing.T) {
	world := New(6)
	world.Lattice().Fill(0.4)
	world.rebuildDisplay()
	shades := append([]uint8(nil), world.Cells()...)

	// θ and θ+π describe the same director and must render identically.
	world.Lattice().Fill(0.4 + math.Pi)
	world.rebuildDisplay()

	for i := range shades {
		if d := int(shades[i]) - int(world.Cells()[i]); d < -1 || d > 1 {
			t.Fatalf("director encoding differs by %d at slot %d", d, i)
		}
	}
}
