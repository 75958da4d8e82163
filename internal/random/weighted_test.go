package random

import (
	"math/rand"
	"testing"
)

func TestNewTableRejectsEmpty(t *testing.T) {
	if _, err := NewTable[int](nil); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestNewTableRejectsNonPositiveWeights(t *testing.T) {
	cases := [][]Choice[string]{
		{{Value: "a", Weight: 0}},
		{{Value: "a", Weight: 10}, {Value: "b", Weight: -1}},
	}
	for _, choices := range cases {
		if _, err := NewTable(choices); err == nil {
			t.Errorf("expected error for weights %v", choices)
		}
	}
}

func TestPickSingleChoice(t *testing.T) {
	table := MustTable([]Choice[string]{{Value: "only", Weight: 7}})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if got := table.Pick(rng); got != "only" {
			t.Fatalf("got %q, want only", got)
		}
	}
}

func TestPickDeterministicForFixedSeed(t *testing.T) {
	choices := []Choice[int]{
		{Value: 1, Weight: 10},
		{Value: 2, Weight: 25},
		{Value: 3, Weight: 65},
	}
	a := MustTable(choices)
	b := MustTable(choices)
	rngA := rand.New(rand.NewSource(42))
	rngB := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		if got, want := a.Pick(rngA), b.Pick(rngB); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestPickDistributionConverges(t *testing.T) {
	table := MustTable([]Choice[int]{
		{Value: 1, Weight: 10},
		{Value: 2, Weight: 90},
	})
	rng := rand.New(rand.NewSource(7))

	const draws = 100000
	ones := 0
	for i := 0; i < draws; i++ {
		if table.Pick(rng) == 1 {
			ones++
		}
	}

	freq := float64(ones) / draws
	if freq < 0.09 || freq > 0.11 {
		t.Fatalf("frequency of value 1 = %.4f, want ~0.10", freq)
	}
}

func TestTotal(t *testing.T) {
	table := MustTable([]Choice[int]{
		{Value: 1, Weight: 3},
		{Value: 2, Weight: 4},
	})
	if table.Total() != 7 {
		t.Fatalf("Total() = %d, want 7", table.Total())
	}
}
