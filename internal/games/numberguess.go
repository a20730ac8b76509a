package games

const (
	NumberGuessMin         = 1
	NumberGuessMax         = 10
	NumberGuessMaxAttempts = 10
)

type GuessResult struct {
	Guess        int
	Hint         Hint
	AttemptsLeft int
	Phase        Phase
}

// NumberGuess is the 1-10 guessing game with a fixed number of attempts.
type NumberGuess struct {
	rng          Rand
	target       int
	attemptsLeft int
	phase        Phase
}

func NewNumberGuess(rng Rand) *NumberGuess {
	return &NumberGuess{rng: rng}
}

func (g *NumberGuess) Start() {
	g.target = between(g.rng, NumberGuessMin, NumberGuessMax)
	g.attemptsLeft = NumberGuessMaxAttempts
	g.phase = PhasePlaying
}

// Guess validates the input and consumes one attempt. Invalid input leaves the state untouched.
func (g *NumberGuess) Guess(input string) (GuessResult, error) {
	if g.phase != PhasePlaying {
		return GuessResult{}, ErrNotPlaying
	}

	guess, err := parseInRange(input, NumberGuessMin, NumberGuessMax)
	if err != nil {
		return GuessResult{}, err
	}

	g.attemptsLeft--
	hint := hintFor(guess, g.target)
	switch {
	case hint == HintNone:
		g.phase = PhaseWon
	case g.attemptsLeft <= 0:
		g.phase = PhaseLost
	}

	return GuessResult{
		Guess:        guess,
		Hint:         hint,
		AttemptsLeft: g.attemptsLeft,
		Phase:        g.phase,
	}, nil
}

func (g *NumberGuess) Target() int { return g.target }
func (g *NumberGuess) AttemptsLeft() int { return g.attemptsLeft }
func (g *NumberGuess) Phase() Phase { return g.phase }
