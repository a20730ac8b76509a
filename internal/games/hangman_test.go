package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHangman(t *testing.T, word string) *Hangman {
	t.Helper()
	h := NewHangman(fixed(0))
	require.NoError(t, h.Start([]string{word}))
	return h
}

func TestHangmanWin(t *testing.T) {
	h := startHangman(t, "Go")
	assert.Equal(t, "go", h.Secret())
	assert.Equal(t, "_ _", h.Masked())

	res, err := h.Guess('g')
	require.NoError(t, err)
	assert.True(t, res.Hit)
	assert.Equal(t, "g _", res.Masked)

	res, err = h.Guess('O')
	require.NoError(t, err)
	assert.Equal(t, PhaseWon, res.Phase)
	assert.Equal(t, "g o", res.Masked)
	assert.Equal(t, HangmanAttempts, res.AttemptsLeft)

	for _, r := range Alphabet {
		assert.False(t, h.LetterEnabled(r))
	}
}

func TestHangmanLoss(t *testing.T) {
	h := startHangman(t, "zebra")
	for _, r := range "cdfghi" {
		res, err := h.Guess(r)
		require.NoError(t, err)
		assert.False(t, res.Hit)
	}
	assert.Equal(t, PhaseLost, h.Phase())
	assert.Zero(t, h.AttemptsLeft())
	assert.False(t, h.LetterEnabled('z'))
}

func TestHangmanRepeatedLetterIsNoOp(t *testing.T) {
	h := startHangman(t, "apple")

	_, err := h.Guess('x')
	require.NoError(t, err)
	attempts, size := h.AttemptsLeft(), h.GuessedCount()

	res, err := h.Guess('x')
	require.NoError(t, err)
	assert.True(t, res.Repeated)
	assert.Equal(t, attempts, h.AttemptsLeft())
	assert.Equal(t, size, h.GuessedCount())

	_, err = h.Guess('p')
	require.NoError(t, err)
	res, err = h.Guess('P')
	require.NoError(t, err)
	assert.True(t, res.Repeated)
	assert.Equal(t, 2, h.GuessedCount())
}

func TestHangmanSelectionDisablesLetter(t *testing.T) {
	h := startHangman(t, "apple")
	assert.True(t, h.LetterEnabled('q'))
	_, err := h.Guess('q')
	require.NoError(t, err)
	assert.False(t, h.LetterEnabled('q'))
	assert.True(t, h.LetterEnabled('a'))
}

func TestHangmanRejectsNonLetters(t *testing.T) {
	h := startHangman(t, "apple")
	_, err := h.Guess('1')
	assert.ErrorIs(t, err, ErrNotALetter)
	assert.Equal(t, HangmanAttempts, h.AttemptsLeft())
}

func TestHangmanFailsOnSentinelOrEmptyList(t *testing.T) {
	for _, words := range [][]string{{WordListSentinel}, nil, {}} {
		h := NewHangman(fixed(0))
		err := h.Start(words)
		assert.ErrorIs(t, err, ErrNoWords)
		assert.Equal(t, PhaseFailed, h.Phase())
		assert.Empty(t, h.Masked())
		for _, r := range Alphabet {
			assert.False(t, h.LetterEnabled(r))
		}
		res, err := h.Guess('e')
		require.NoError(t, err)
		assert.True(t, res.Repeated)
	}
}

func TestHangmanShowsNonLetters(t *testing.T) {
	h := startHangman(t, "ice-cream")
	assert.Equal(t, "_ _ _ - _ _ _ _ _", h.Masked())
}

func TestHangmanRestartReenablesLetters(t *testing.T) {
	h := NewHangman(fixed(1, 0))
	require.NoError(t, h.Start([]string{"a", "b"}))
	assert.Equal(t, "b", h.Secret())
	_, _ = h.Guess('b')
	assert.Equal(t, PhaseWon, h.Phase())

	require.NoError(t, h.Start([]string{"a", "b"}))
	assert.Equal(t, "a", h.Secret())
	assert.Zero(t, h.GuessedCount())
	assert.True(t, h.LetterEnabled('b'))
}

func TestHangmanGuessBeforeStart(t *testing.T) {
	h := NewHangman(fixed(0))
	_, err := h.Guess('a')
	assert.ErrorIs(t, err, ErrNotPlaying)
}

func TestHangmanWordWithoutLettersIsSolved(t *testing.T) {
	h := NewHangman(fixed(0))
	require.NoError(t, h.Start([]string{"42"}))

	assert.Equal(t, PhaseWon, h.Phase())
	assert.Equal(t, "4 2", h.Masked())
	assert.Equal(t, HangmanAttempts, h.AttemptsLeft())
	assert.False(t, h.LetterEnabled('a'))
}
