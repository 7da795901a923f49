// Package dice provides the randomness abstraction for the game. A single
// Roller is owned by the session and handed to the combat engine and story
// nodes, so tests can seed it or script it outright.
package dice

import (
	"math/rand"
	"time"
)

// Roller is the randomness provider for combat rolls and skill checks.
type Roller interface {
	// Intn returns a random int in [0, n). Intn(0) returns 0.
	Intn(n int) int
	// Between returns a random int in [lo, hi], inclusive on both ends.
	Between(lo, hi int) int
	// Percent returns a random int in [1, 100].
	Percent() int
	// Chance reports true with probability p, where p is in [0, 1].
	Chance(p float64) bool
}

// Rand is a Roller backed by math/rand, seeded for reproducible runs.
type Rand struct {
	r *rand.Rand
}

// New returns a seeded Rand. A zero seed derives one from the clock.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (d *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return d.r.Intn(n)
}

func (d *Rand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.r.Intn(hi-lo+1)
}

func (d *Rand) Percent() int {
	return d.r.Intn(100) + 1
}

func (d *Rand) Chance(p float64) bool {
	return d.r.Float64() < p
}

// Sequence is a scripted Roller for tests. Each method pops from its own
// queue and returns the scripted value verbatim; an exhausted queue yields
// the zero value (0 or false).
type Sequence struct {
	Ints     []int
	Betweens []int
	Percents []int
	Chances  []bool
}

func (s *Sequence) Intn(_ int) int {
	return popInt(&s.Ints)
}

func (s *Sequence) Between(lo, _ int) int {
	if len(s.Betweens) == 0 {
		return lo
	}
	return popInt(&s.Betweens)
}

func (s *Sequence) Percent() int {
	return popInt(&s.Percents)
}

func (s *Sequence) Chance(_ float64) bool {
	if len(s.Chances) == 0 {
		return false
	}
	v := s.Chances[0]
	s.Chances = s.Chances[1:]
	return v
}

func popInt(q *[]int) int {
	if len(*q) == 0 {
		return 0
	}
	v := (*q)[0]
	*q = (*q)[1:]
	return v
}
