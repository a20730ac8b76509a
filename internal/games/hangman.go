package games

import (
	"errors"
	"fmt"
	"strings"
)

const (
	HangmanAttempts = 6
	Alphabet        = "abcdefghijklmnopqrstuvwxyz"

	// WordListSentinel is the single entry a word source returns when it could not be read.
	WordListSentinel = "error"
)

var (
	ErrNoWords    = errors.New("word list unavailable")
	ErrNotALetter = errors.New("not a letter a-z")
)

type LetterResult struct {
	Letter       rune
	Hit          bool
	Repeated     bool
	AttemptsLeft int
	Masked       string
	Phase        Phase
}

// Hangman keeps one secret word, the letters tried so far and the enabled flag of each letter control.
type Hangman struct {
	rng      Rand
	secret   string
	guessed  map[rune]bool
	attempts int
	enabled  [len(Alphabet)]bool
	phase    Phase
}

func NewHangman(rng Rand) *Hangman {
	return &Hangman{rng: rng, guessed: make(map[rune]bool)}
}

// UsableWords reports whether a word source produced something playable.
func UsableWords(words []string) bool {
	if len(words) == 0 {
		return false
	}
	return !(len(words) == 1 && words[0] == WordListSentinel)
}

// Start picks a new secret word. An unusable list puts the game in PhaseFailed with every letter disabled.
func (h *Hangman) Start(words []string) error {
	h.guessed = make(map[rune]bool)
	h.attempts = HangmanAttempts

	if !UsableWords(words) {
		h.secret = WordListSentinel
		h.phase = PhaseFailed
		h.setAllLetters(false)
		return ErrNoWords
	}

	h.secret = strings.ToLower(words[h.rng.IntN(len(words))])
	h.phase = PhasePlaying
	h.setAllLetters(true)
	h.settle()
	return nil
}

// Guess plays one letter. The letter's control is disabled first, so a second
// selection of the same letter changes nothing.
func (h *Hangman) Guess(letter rune) (LetterResult, error) {
	if h.phase == PhaseIdle {
		return LetterResult{}, ErrNotPlaying
	}

	letter = toLowerASCII(letter)
	idx := strings.IndexRune(Alphabet, letter)
	if idx < 0 {
		return LetterResult{}, fmt.Errorf("%q: %w", letter, ErrNotALetter)
	}

	if !h.enabled[idx] || h.guessed[letter] {
		h.enabled[idx] = false
		return h.result(letter, false, true), nil
	}
	h.enabled[idx] = false
	h.guessed[letter] = true

	hit := strings.ContainsRune(h.secret, letter)
	if !hit {
		h.attempts--
	}
	h.settle()

	return h.result(letter, hit, false), nil
}

// Masked renders the secret with unguessed letters as underscores, space separated.
func (h *Hangman) Masked() string {
	if h.secret == "" || h.phase == PhaseFailed {
		return ""
	}
	parts := make([]string, 0, len(h.secret))
	for _, r := range h.secret {
		if h.revealed(r) {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

func (h *Hangman) LetterEnabled(letter rune) bool {
	idx := strings.IndexRune(Alphabet, toLowerASCII(letter))
	return idx >= 0 && h.enabled[idx]
}

func (h *Hangman) Secret() string { return h.secret }
func (h *Hangman) AttemptsLeft() int { return h.attempts }
func (h *Hangman) GuessedCount() int { return len(h.guessed) }
func (h *Hangman) Phase() Phase { return h.phase }

func (h *Hangman) settle() {
	switch {
	case h.solved():
		h.phase = PhaseWon
	case h.attempts <= 0:
		h.phase = PhaseLost
	default:
		return
	}
	h.setAllLetters(false)
}

func (h *Hangman) solved() bool {
	for _, r := range h.secret {
		if !h.revealed(r) {
			return false
		}
	}
	return true
}

// revealed treats anything outside a-z as always visible, since there is no control to guess it.
func (h *Hangman) revealed(r rune) bool {
	if !strings.ContainsRune(Alphabet, r) {
		return true
	}
	return h.guessed[r]
}

func (h *Hangman) setAllLetters(enabled bool) {
	for i := range h.enabled {
		h.enabled[i] = enabled
	}
}

func (h *Hangman) result(letter rune, hit, repeated bool) LetterResult {
	return LetterResult{
		Letter:       letter,
		Hit:          hit,
		Repeated:     repeated,
		AttemptsLeft: h.attempts,
		Masked:       h.Masked(),
		Phase:        h.phase,
	}
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
