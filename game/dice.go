package game

import "golang.org/x/exp/rand"

// Source supplies the randomness for dice rolls.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int
}

// NewSource returns a pseudo-random Source seeded with seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

func rollDie(source Source, sides int) int {
	return source.Intn(sides) + 1
}
