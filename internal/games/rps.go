package games

import (
	"errors"
	"fmt"
)

const RPSWinningScore = 3

var ErrUnknownChoice = errors.New("unknown choice")

type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

var Choices = []Choice{Rock, Paper, Scissors}

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// beats reports whether c defeats other.
func (c Choice) beats(other Choice) bool {
	return (c == Rock && other == Scissors) ||
		(c == Scissors && other == Paper) ||
		(c == Paper && other == Rock)
}

type Outcome int

const (
	Tie Outcome = iota
	PlayerWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case PlayerWins:
		return "player"
	case ComputerWins:
		return "computer"
	default:
		return "unknown"
	}
}

// Decide applies the beats-relation to one round.
func Decide(player, computer Choice) Outcome {
	switch {
	case player == computer:
		return Tie
	case player.beats(computer):
		return PlayerWins
	default:
		return ComputerWins
	}
}

type Round struct {
	Player        Choice
	Computer      Choice
	Outcome       Outcome
	PlayerScore   int
	ComputerScore int
	Phase         Phase
}

// RockPaperScissors is played against a uniformly random computer, first to three.
type RockPaperScissors struct {
	rng           Rand
	playerScore   int
	computerScore int
	phase         Phase
}

func NewRockPaperScissors(rng Rand) *RockPaperScissors {
	g := &RockPaperScissors{rng: rng}
	g.Reset()
	return g
}

func (g *RockPaperScissors) Reset() {
	g.playerScore = 0
	g.computerScore = 0
	g.phase = PhasePlaying
}

func (g *RockPaperScissors) Play(choice Choice) (Round, error) {
	if g.phase != PhasePlaying {
		return Round{}, ErrNotPlaying
	}
	if choice < Rock || choice > Scissors {
		return Round{}, fmt.Errorf("%d: %w", int(choice), ErrUnknownChoice)
	}

	computer := Choices[g.rng.IntN(len(Choices))]
	outcome := Decide(choice, computer)
	switch outcome {
	case PlayerWins:
		g.playerScore++
	case ComputerWins:
		g.computerScore++
	}

	if g.playerScore >= RPSWinningScore {
		g.phase = PhaseWon
	} else if g.computerScore >= RPSWinningScore {
		g.phase = PhaseLost
	}

	return Round{
		Player:        choice,
		Computer:      computer,
		Outcome:       outcome,
		PlayerScore:   g.playerScore,
		ComputerScore: g.computerScore,
		Phase:         g.phase,
	}, nil
}

func (g *RockPaperScissors) Scores() (player, computer int) {
	return g.playerScore, g.computerScore
}

func (g *RockPaperScissors) Phase() Phase { return g.phase }
