// Package dice implements the die-rolling capability for the game.
//
// Randomness is injected into the turn engine through the Roller
// interface so tests and replays can supply deterministic rolls.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Sides is the number of faces on the game die.
const Sides = 6

// Roller produces die rolls in the range [1, Sides].
type Roller interface {
	Roll() int
}

// Source is a seed-deterministic Roller.
//
// Given the same seed, a Source always produces the same sequence of
// rolls, which makes whole games reproducible.
type Source struct {
	rng *rand.Rand
}

// New creates a Source from an explicit seed.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform value in [1, Sides].
func (s *Source) Roll() int {
	return s.rng.Intn(Sides) + 1
}

// Script is a Roller that replays a fixed sequence of rolls, cycling
// back to the start when the sequence is exhausted. Useful in tests.
type Script struct {
	values []int
	next   int
}

// Sequence creates a Script from the given roll values.
func Sequence(values ...int) *Script {
	return &Script{values: values}
}

// Roll returns the next scripted value.
func (s *Script) Roll() int {
	if len(s.values) == 0 {
		return 1
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
