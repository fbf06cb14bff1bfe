package ai

import "math/rand/v2"

// Picker chooses an index in [0, n). Tests swap in a fixed sequence.
type Picker interface {
	IntN(n int) int
}

type randPicker struct{}

func (randPicker) IntN(n int) int { return rand.IntN(n) }

// RandomPicker is a uniform selector over the global math/rand source.
var RandomPicker Picker = randPicker{}

func pick[T any](p Picker, candidates []T) T {
	return candidates[p.IntN(len(candidates))]
}
