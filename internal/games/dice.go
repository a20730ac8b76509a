package games

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const StartingMoney = 100

var (
	ErrNonPositiveBet    = errors.New("bet must be a positive number")
	ErrInsufficientFunds = errors.New("bet exceeds current money")
)

type Side int

const (
	High Side = iota
	Low
)

func (s Side) String() string {
	if s == Low {
		return "LOW"
	}
	return "HIGH"
}

// Covers reports whether a die face falls on this side: high is 4-6, low is 1-3.
func (s Side) Covers(face int) bool {
	if s == Low {
		return face >= 1 && face <= 3
	}
	return face >= 4 && face <= 6
}

// ParseAmount reads a bet typed by the player.
func ParseAmount(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", input, ErrNotANumber)
	}
	return n, nil
}

type Roll struct {
	Bet   int
	Side  Side
	Face  int
	Won   bool
	Money int
	Phase Phase
}

// Dice is the high/low betting game. The session ends once money drops to zero.
type Dice struct {
	rng   Rand
	money int
	phase Phase
}

func NewDice(rng Rand) *Dice {
	d := &Dice{rng: rng}
	d.Reset()
	return d
}

func (d *Dice) Reset() {
	d.money = StartingMoney
	d.phase = PhasePlaying
}

func (d *Dice) PlaceBet(amount int, side Side) (Roll, error) {
	if d.phase != PhasePlaying {
		return Roll{}, ErrNotPlaying
	}
	if amount <= 0 {
		return Roll{}, ErrNonPositiveBet
	}
	if amount > d.money {
		return Roll{}, fmt.Errorf("only %d available: %w", d.money, ErrInsufficientFunds)
	}

	face := between(d.rng, 1, 6)
	won := side.Covers(face)
	if won {
		d.money += amount
	} else {
		d.money -= amount
	}
	if d.money <= 0 {
		d.phase = PhaseLost
	}

	return Roll{
		Bet:   amount,
		Side:  side,
		Face:  face,
		Won:   won,
		Money: d.money,
		Phase: d.phase,
	}, nil
}

func (d *Dice) Money() int { return d.money }
func (d *Dice) Phase() Phase { return d.phase }
