// Package random provides the weighted sampling primitive shared by the
// data seeders. Every skewed draw in the pipeline (booking status, room
// type, nights per stay, review rating) goes through a Table so the
// distribution shape lives in one place.
package random

import (
	"errors"
	"fmt"
	"math/rand"
)

// Choice pairs a candidate value with its positive integer weight.
type Choice[T any] struct {
	Value  T
	Weight int
}

// Table is an immutable discrete distribution over an ordered set of
// choices. Draws are deterministic given a fixed *rand.Rand.
type Table[T any] struct {
	choices []Choice[T]
	total   int
}

// ErrEmptyTable is returned when a table is built without choices.
var ErrEmptyTable = errors.New("weighted table needs at least one choice")

// NewTable validates the weights and builds a sampling table. Every
// weight must be strictly positive; a zero total is rejected here
// instead of producing an undefined draw later.
func NewTable[T any](choices []Choice[T]) (*Table[T], error) {
	if len(choices) == 0 {
		return nil, ErrEmptyTable
	}
	total := 0
	for i, c := range choices {
		if c.Weight <= 0 {
			return nil, fmt.Errorf("weighted table: choice %d has non-positive weight %d", i, c.Weight)
		}
		total += c.Weight
	}
	return &Table[T]{choices: choices, total: total}, nil
}

// MustTable is NewTable for fixed, known-good weight literals.
func MustTable[T any](choices []Choice[T]) *Table[T] {
	t, err := NewTable(choices)
	if err != nil {
		panic(err)
	}
	return t
}

// Pick draws a uniform integer in [1, total] and returns the first
// choice whose cumulative weight reaches it.
func (t *Table[T]) Pick(r *rand.Rand) T {
	n := r.Intn(t.total) + 1
	cumulative := 0
	for _, c := range t.choices {
		cumulative += c.Weight
		if n <= cumulative {
			return c.Value
		}
	}
	// Unreachable: total is the sum of all weights.
	return t.choices[len(t.choices)-1].Value
}

// Total returns the sum of all weights.
func (t *Table[T]) Total() int { return t.total }
