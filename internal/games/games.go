// Package games holds the rules of every mini-game as plain state machines.
// Nothing here knows about widgets; pages drive these types and render the results.
package games

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotANumber = errors.New("not a valid number")
	ErrOutOfRange = errors.New("number out of range")
	ErrNotPlaying = errors.New("game is not in progress")
)

// Phase is the lifecycle position of a game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
	PhaseDraw
	PhaseFeedback
	PhaseFinished
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseDraw:
		return "draw"
	case PhaseFeedback:
		return "feedback"
	case PhaseFinished:
		return "finished"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Over reports whether the phase is terminal until the next reset.
func (p Phase) Over() bool {
	switch p {
	case PhaseWon, PhaseLost, PhaseDraw, PhaseFinished, PhaseFailed:
		return true
	}
	return false
}

// Rand is the subset of math/rand/v2 the games draw from.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a pseudo-random source seeded from the clock.
func NewRand() Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>7|1))
}

func between(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// parseInRange parses user text as an integer within [lo, hi].
func parseInRange(input string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", input, ErrNotANumber)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d not in %d-%d: %w", n, lo, hi, ErrOutOfRange)
	}
	return n, nil
}

// Hint tells the player which way to move after a miss.
type Hint int

const (
	HintNone Hint = iota
	HintHigher
	HintLower
)

func (h Hint) String() string {
	switch h {
	case HintHigher:
		return "Higher!"
	case HintLower:
		return "Lower!"
	default:
		return ""
	}
}

func hintFor(guess, target int) Hint {
	switch {
	case guess < target:
		return HintHigher
	case guess > target:
		return HintLower
	default:
		return HintNone
	}
}
