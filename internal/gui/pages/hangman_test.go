package pages

import (
	"testing"

	"games-collection/internal/games"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func words(list ...string) WordSource {
	return func() []string { return list }
}

func TestHangmanWin(t *testing.T) {
	test.NewTempApp(t)
	p := NewHangmanPage(&fakeNav{}, words("Go"), constRand(0), quiet)

	assert.Equal(t, "_ _", p.wordDisplay.Text)

	test.Tap(p.letterButtons['g'])
	assert.Equal(t, "g _", p.wordDisplay.Text)
	assert.True(t, p.letterButtons['g'].Disabled())

	test.Tap(p.letterButtons['o'])
	assert.Equal(t, "g o", p.wordDisplay.Text)
	assert.Equal(t, "CONGRATULATIONS! You guessed the word!", p.status.Text())
	for letter, button := range p.letterButtons {
		assert.True(t, button.Disabled(), string(letter))
	}
}

func TestHangmanRepeatedLetterIsNoOp(t *testing.T) {
	test.NewTempApp(t)
	p := NewHangmanPage(&fakeNav{}, words("go"), constRand(0), quiet)

	test.Tap(p.letterButtons['z'])
	assert.Equal(t, "Attempts left: 5", p.status.Text())

	p.checkLetter('z')
	assert.Equal(t, "Attempts left: 5", p.status.Text())
	assert.Equal(t, 1, p.game.GuessedCount())
}

func TestHangmanLoss(t *testing.T) {
	test.NewTempApp(t)
	p := NewHangmanPage(&fakeNav{}, words("go"), constRand(0), quiet)

	for _, letter := range "abcdef" {
		test.Tap(p.letterButtons[letter])
	}

	assert.Equal(t, "GAME OVER! The word was: go", p.status.Text())
	assert.True(t, p.letterButtons['g'].Disabled())
}

func TestHangmanWordWithoutLettersIsWonAtStart(t *testing.T) {
	test.NewTempApp(t)
	p := NewHangmanPage(&fakeNav{}, words("42"), constRand(0), quiet)

	assert.Equal(t, "4 2", p.wordDisplay.Text)
	assert.Equal(t, "CONGRATULATIONS! You guessed the word!", p.status.Text())
	assert.Equal(t, widget.SuccessImportance, p.status.Importance())
	assert.True(t, p.letterButtons['a'].Disabled())

	test.Tap(p.navBar.NewGameButton)
	assert.Equal(t, "CONGRATULATIONS! You guessed the word!", p.status.Text())
}

func TestHangmanFatalWordList(t *testing.T) {
	test.NewTempApp(t)
	p := NewHangmanPage(&fakeNav{}, words(games.WordListSentinel), constRand(0), quiet)

	assert.Equal(t, "FATAL ERROR: Could not load word list.", p.status.Text())
	assert.Equal(t, widget.DangerImportance, p.status.Importance())
	for _, button := range p.letterButtons {
		assert.True(t, button.Disabled())
	}
}
