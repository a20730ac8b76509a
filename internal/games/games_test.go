package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// seqRand returns queued values in order, cycling when exhausted.
type seqRand struct {
	vals []int
	next int
}

func (s *seqRand) IntN(n int) int {
	v := s.vals[s.next%len(s.vals)]
	s.next++
	if v >= n {
		panic("seqRand value out of range")
	}
	return v
}

func fixed(vals ...int) *seqRand { return &seqRand{vals: vals} }

func TestPhaseOver(t *testing.T) {
	assert.False(t, PhaseIdle.Over())
	assert.False(t, PhasePlaying.Over())
	assert.False(t, PhaseFeedback.Over())
	for _, p := range []Phase{PhaseWon, PhaseLost, PhaseDraw, PhaseFinished, PhaseFailed} {
		assert.True(t, p.Over(), p.String())
	}
}

func TestNewRandStaysInRange(t *testing.T) {
	rng := NewRand()
	for i := 0; i < 200; i++ {
		v := between(rng, 1, 6)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}
