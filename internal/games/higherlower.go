package games

const (
	HigherLowerMin = 1
	HigherLowerMax = 100
)

type HigherLowerResult struct {
	Guess    int
	Hint     Hint
	Attempts int
	Phase    Phase
}

// HigherLower is the 1-100 game. Attempts are only counted; there is no way to lose.
type HigherLower struct {
	rng      Rand
	target   int
	attempts int
	phase    Phase
}

func NewHigherLower(rng Rand) *HigherLower {
	return &HigherLower{rng: rng}
}

func (g *HigherLower) Start() {
	g.target = between(g.rng, HigherLowerMin, HigherLowerMax)
	g.attempts = 0
	g.phase = PhasePlaying
}

func (g *HigherLower) Guess(input string) (HigherLowerResult, error) {
	if g.phase != PhasePlaying {
		return HigherLowerResult{}, ErrNotPlaying
	}

	guess, err := parseInRange(input, HigherLowerMin, HigherLowerMax)
	if err != nil {
		return HigherLowerResult{}, err
	}

	g.attempts++
	hint := hintFor(guess, g.target)
	if hint == HintNone {
		g.phase = PhaseWon
	}

	return HigherLowerResult{
		Guess:    guess,
		Hint:     hint,
		Attempts: g.attempts,
		Phase:    g.phase,
	}, nil
}

func (g *HigherLower) Target() int { return g.target }
func (g *HigherLower) Attempts() int { return g.attempts }
func (g *HigherLower) Phase() Phase { return g.phase }
