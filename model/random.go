package model

import (
	"math/rand/v2"
	"time"
)

// RandomSource answers independent weighted coin flips
type RandomSource interface {
	BoolWithProbability(p float64) bool
}

// PCGSource is a RandomSource backed by math/rand/v2's PCG generator
type PCGSource struct {
	r *rand.Rand
}

// NewRandomSource returns a deterministic source for a non-zero seed and a time-seeded one for 0
func NewRandomSource(seed int64) *PCGSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PCGSource{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// BoolWithProbability reports true with probability p, clamped to [0, 1]
func (s *PCGSource) BoolWithProbability(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return s.r.Float64() < p
}
