package pages

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestHigherOrLowerCountsAttempts(t *testing.T) {
	test.NewTempApp(t)
	p := NewHigherOrLowerPage(&fakeNav{}, constRand(41), quiet)

	p.guessEntry.SetText("101")
	test.Tap(p.guessButton)
	assert.Equal(t, "Please enter a number between 1 and 100!", p.gameLog.Last())
	assert.Equal(t, "Attempts: 0", p.status.Text())

	p.guessEntry.SetText("50")
	test.Tap(p.guessButton)
	assert.Equal(t, "Your guess: 50. Lower!", p.gameLog.Last())

	p.guessEntry.SetText("42")
	test.Tap(p.guessButton)
	assert.Equal(t, "Correct! You guessed it (42) in 2 attempts!", p.gameLog.Last())
	assert.Equal(t, "Attempts: 2", p.status.Text())
	assert.True(t, p.guessEntry.Disabled())
}
