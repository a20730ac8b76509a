package pages

import (
	"testing"

	"games-collection/internal/games"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestRockPaperScissorsFirstToThree(t *testing.T) {
	test.NewTempApp(t)
	// Computer always picks scissors.
	p := NewRockPaperScissorsPage(&fakeNav{}, constRand(2), quiet)

	test.Tap(p.choiceButtons[games.Rock])
	assert.Equal(t, "You chose: ROCK | Computer chose: SCISSORS\nYou win this round!", p.result.Text())
	assert.Equal(t, "First to 3 wins!\nScore: You 1 - 0 Computer", p.scoreLabel.Text)

	test.Tap(p.choiceButtons[games.Scissors])
	assert.Equal(t, "You chose: SCISSORS | Computer chose: SCISSORS\nIt's a tie!", p.result.Text())

	test.Tap(p.choiceButtons[games.Rock])
	test.Tap(p.choiceButtons[games.Rock])
	assert.Equal(t, "You won the game! Click 'New Game' to restart.", p.result.Text())
	for _, button := range p.choiceButtons {
		assert.True(t, button.Disabled())
	}

	test.Tap(p.navBar.NewGameButton)
	assert.Equal(t, "First to 3 wins!\nScore: You 0 - 0 Computer", p.scoreLabel.Text)
	assert.False(t, p.choiceButtons[games.Paper].Disabled())
}

func TestRockPaperScissorsComputerWins(t *testing.T) {
	test.NewTempApp(t)
	p := NewRockPaperScissorsPage(&fakeNav{}, constRand(2), quiet)

	for i := 0; i < 3; i++ {
		test.Tap(p.choiceButtons[games.Paper])
	}

	assert.Equal(t, "Computer won the game! Click 'New Game' to restart.", p.result.Text())
	assert.True(t, p.choiceButtons[games.Rock].Disabled())
}
