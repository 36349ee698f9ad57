package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(12345)
	b := NewRNG(12345)

	for i := 0; i < 100; i++ {
		if a.IntN(50) != b.IntN(50) {
			t.Fatalf("IntN diverged at draw %d", i)
		}
		if a.Float64() != b.Float64() {
			t.Fatalf("Float64 diverged at draw %d", i)
		}
		if a.NormFloat64() != b.NormFloat64() {
			t.Fatalf("NormFloat64 diverged at draw %d", i)
		}
	}
}

func TestRNGFloat64Range(t *testing.T) {
	r := NewRNG(6)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}
