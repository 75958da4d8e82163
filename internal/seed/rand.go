package seed

import (
	"math"
	"math/rand"
)

// randBetween returns a uniform random int in [min, max], both ends
// inclusive.
func randBetween(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

// chance returns true with probability percent/100.
func chance(r *rand.Rand, percent int) bool {
	return randBetween(r, 1, 100) <= percent
}

// round2 rounds to two decimal places, the precision of every money
// column in the schema.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
